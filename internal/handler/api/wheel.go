package api

import (
	"errors"
	"net/http"

	"spinwheel/internal/domain/user"
	resdto "spinwheel/internal/handler/dto/response"
	"spinwheel/internal/handler/middleware"
	"spinwheel/internal/pkg/errs"
	"spinwheel/internal/usecase/commands"
	"spinwheel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WheelHandler struct {
	spinCommands  commands.SpinCommands
	shareCommands commands.ShareCommands
	wheelQueries  queries.WheelQueries
	spinQueries   queries.SpinQueries
}

func NewWheelHandler(
	spinCommands commands.SpinCommands,
	shareCommands commands.ShareCommands,
	wheelQueries queries.WheelQueries,
	spinQueries queries.SpinQueries,
) *WheelHandler {
	return &WheelHandler{
		spinCommands:  spinCommands,
		shareCommands: shareCommands,
		wheelQueries:  wheelQueries,
		spinQueries:   spinQueries,
	}
}

// @Summary Wheel status
// @Description Current vouchers on the wheel plus the caller's remaining entitlement
// @Tags wheel
// @Produce json
// @Success 200 {object} resdto.WheelStatusResponse
// @Router /wheel [get]
func (h *WheelHandler) Status(c *gin.Context) {
	var principal *user.Principal
	if p, ok := middleware.GetPrincipal(c); ok {
		principal = &p
	}

	view, err := h.wheelQueries.Status(c.Request.Context(), principal)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWheelStatusView(view))
}

// @Summary Spin the wheel
// @Description Consume one entitlement and allocate a voucher
// @Tags wheel
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SpinResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /wheel/spin [post]
func (h *WheelHandler) Spin(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	outcome, err := h.spinCommands.Spin(c.Request.Context(), principal, c.ClientIP())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpinOutcome(outcome))
}

// @Summary Record a share
// @Description Record today's share and unlock the bonus spin
// @Tags wheel
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ShareResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /wheel/share [post]
func (h *WheelHandler) Share(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	outcome, err := h.shareCommands.RecordShare(c.Request.Context(), principal, c.ClientIP())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromShareOutcome(outcome))
}

// @Summary Spin history
// @Description The caller's most recent spins, newest first
// @Tags wheel
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SpinHistoryItemResponse
// @Failure 401 {object} map[string]string
// @Router /wheel/history [get]
func (h *WheelHandler) History(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.spinQueries.History(c.Request.Context(), principal)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response := make([]*resdto.SpinHistoryItemResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromSpinHistoryItem(item)
	}

	c.JSON(http.StatusOK, response)
}

func (h *WheelHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
	case errors.Is(err, errs.ErrMissingPhone):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Account has no phone number",
		})
	case errors.Is(err, errs.ErrEntitlementExhausted):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No spins left today",
		})
	case errors.Is(err, errs.ErrNoRewardAvailable):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No rewards available right now",
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
