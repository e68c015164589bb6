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
	"github.com/google/uuid"
)

type VoucherAdminHandler struct {
	voucherCommands commands.VoucherCommands
	voucherQueries  queries.VoucherQueries
}

func NewVoucherAdminHandler(
	voucherCommands commands.VoucherCommands,
	voucherQueries queries.VoucherQueries,
) *VoucherAdminHandler {
	return &VoucherAdminHandler{
		voucherCommands: voucherCommands,
		voucherQueries:  voucherQueries,
	}
}

// @Summary List vouchers
// @Description All vouchers including inactive ones, with caps and counters. With ?code=, looks up the single voucher by code.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param code query string false "Exact voucher code (case-insensitive)"
// @Success 200 {array} resdto.VoucherResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/vouchers [get]
func (h *VoucherAdminHandler) List(c *gin.Context) {
	if code := c.Query("code"); code != "" {
		view, err := h.voucherQueries.GetByCode(c.Request.Context(), code)
		if err != nil {
			h.writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, []*resdto.VoucherResponse{resdto.FromVoucherView(view)})
		return
	}

	views, err := h.voucherQueries.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response := make([]*resdto.VoucherResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromVoucherView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get voucher
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Success 200 {object} resdto.VoucherResponse
// @Failure 404 {object} map[string]string
// @Router /admin/vouchers/{id} [get]
func (h *VoucherAdminHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	view, err := h.voucherQueries.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVoucherView(view))
}

// @Summary Create voucher
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVoucherRequest true "Voucher definition"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/vouchers [post]
func (h *VoucherAdminHandler) Create(c *gin.Context) {
	var req reqdto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.voucherCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update voucher
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Param request body reqdto.UpdateVoucherRequest true "Voucher definition"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/vouchers/{id} [put]
func (h *VoucherAdminHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.voucherCommands.Update(c.Request.Context(), id, req.ToParams()); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete voucher
// @Description Removes the voucher; past spins keep their stored result label
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/vouchers/{id} [delete]
func (h *VoucherAdminHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.voucherCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Activate or deactivate voucher
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Param request body reqdto.SetVoucherActiveRequest true "Desired state"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/vouchers/{id}/active [patch]
func (h *VoucherAdminHandler) SetActive(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.SetVoucherActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.voucherCommands.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VoucherAdminHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid voucher ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *VoucherAdminHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrVoucherNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Voucher not found",
		})
	case errors.Is(err, errs.ErrDuplicateVoucherCode):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Voucher code already exists",
		})
	case errors.Is(err, errs.ErrInvalidVoucher):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid voucher definition",
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
