package request

type SetShareConfigRequest struct {
	URL string `json:"url" binding:"required"`
}
