package api

import (
	"errors"
	"net/http"

	reqdto "spinwheel/internal/handler/dto/request"
	resdto "spinwheel/internal/handler/dto/response"
	"spinwheel/internal/pkg/errs"
	"spinwheel/internal/usecase/commands"
	"spinwheel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ShareConfigHandler struct {
	shareConfigCommands commands.ShareConfigCommands
	shareConfigQueries  queries.ShareConfigQueries
}

func NewShareConfigHandler(
	shareConfigCommands commands.ShareConfigCommands,
	shareConfigQueries queries.ShareConfigQueries,
) *ShareConfigHandler {
	return &ShareConfigHandler{
		shareConfigCommands: shareConfigCommands,
		shareConfigQueries:  shareConfigQueries,
	}
}

// @Summary Current share URL
// @Tags share-config
// @Produce json
// @Success 200 {object} resdto.ShareConfigResponse
// @Router /share-config [get]
func (h *ShareConfigHandler) Get(c *gin.Context) {
	view, err := h.shareConfigQueries.Current(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromShareConfigView(view))
}

// @Summary Set share URL
// @Tags share-config
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetShareConfigRequest true "Share URL"
// @Success 200 {object} resdto.ShareConfigResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /share-config [post]
func (h *ShareConfigHandler) Set(c *gin.Context) {
	var req reqdto.SetShareConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	saved, err := h.shareConfigCommands.SetShareURL(c.Request.Context(), req.URL)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ShareConfigResponse{URL: &saved})
}

func (h *ShareConfigHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidShareURL):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Share URL must be absolute http(s)",
		})
	case errors.Is(err, errs.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Service temporarily unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
