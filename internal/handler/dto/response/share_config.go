package response

import "spinwheel/internal/usecase/queries"

type ShareConfigResponse struct {
	URL *string `json:"url"`
}

func FromShareConfigView(view *queries.ShareConfigView) *ShareConfigResponse {
	return &ShareConfigResponse{URL: view.URL}
}
