package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kreasidigital/erp_ledger/internal/core/ports/services"
	"github.com/kreasidigital/erp_ledger/internal/dto"
	"github.com/kreasidigital/erp_ledger/internal/middleware"
)

// voucherHandler drives the voucher request approval workflow over HTTP.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := &voucherHandler{voucherService: voucherService}

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:id", h.getVoucher)
		vouchers.POST("/:id/submit", h.submitVoucher)
		vouchers.POST("/:id/approve", h.approveVoucher)
		vouchers.POST("/:id/reject", h.rejectVoucher)
		vouchers.POST("/:id/cancel", h.cancelVoucher)
	}
}

func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create voucher")
		return
	}

	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	voucher, err := h.voucherService.GetVoucher(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := paginationParams(c)

	vouchers, err := h.voucherService.ListVouchers(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list vouchers")
		return
	}

	responses := make([]dto.VoucherResponse, len(vouchers))
	for i := range vouchers {
		responses[i] = dto.ToVoucherResponse(&vouchers[i])
	}
	c.JSON(http.StatusOK, gin.H{"vouchers": responses})
}

func (h *voucherHandler) submitVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	voucher, err := h.voucherService.SubmitVoucher(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to submit voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) approveVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// Body is optional: approving without one just records the decision.
	var req dto.ApproveVoucherRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for ApproveVoucher", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	voucher, err := h.voucherService.ApproveVoucher(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to approve voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) rejectVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RejectVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rejection reason is required"})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	voucher, err := h.voucherService.RejectVoucher(c.Request.Context(), c.Param("id"), req.Reason, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to reject voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) cancelVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	voucher, err := h.voucherService.CancelVoucher(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to cancel voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}
