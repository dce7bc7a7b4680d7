package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kreasidigital/erp_ledger/internal/core/ports/services"
	"github.com/kreasidigital/erp_ledger/internal/dto"
	"github.com/kreasidigital/erp_ledger/internal/middleware"
)

// purchaseHandler drives the procurement chain over HTTP: order requests,
// purchase orders, receipts and supplier invoices.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
	postingService  portssvc.PostingSvcFacade
}

type approveRequest struct {
	Notes string `json:"notes"`
}

func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade, postingService portssvc.PostingSvcFacade) {
	h := &purchaseHandler{purchaseService: purchaseService, postingService: postingService}

	requests := rg.Group("/purchase/requests")
	{
		requests.POST("", h.createOrderRequest)
		requests.GET("/:id", h.getOrderRequest)
		requests.POST("/:id/submit", h.submitOrderRequest)
		requests.POST("/:id/approve", h.approveOrderRequest)
		requests.POST("/:id/reject", h.rejectOrderRequest)
		requests.POST("/:id/cancel", h.cancelOrderRequest)
	}

	rg.GET("/purchase/orders/:id", h.getPurchaseOrder)

	receipts := rg.Group("/purchase/receipts")
	{
		receipts.POST("", h.createPurchaseReceipt)
		receipts.GET("/:id", h.getPurchaseReceipt)
	}

	invoices := rg.Group("/purchase/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("/:id", h.getInvoice)
		invoices.POST("/:id/post", h.postInvoice)
	}
}

func (h *purchaseHandler) createOrderRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOrderRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOrderRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	request, err := h.purchaseService.CreateOrderRequest(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create order request")
		return
	}

	c.JSON(http.StatusCreated, request)
}

func (h *purchaseHandler) getOrderRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	request, err := h.purchaseService.GetOrderRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve order request")
		return
	}

	c.JSON(http.StatusOK, request)
}

func (h *purchaseHandler) submitOrderRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	request, err := h.purchaseService.SubmitOrderRequest(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to submit order request")
		return
	}

	c.JSON(http.StatusOK, request)
}

func (h *purchaseHandler) approveOrderRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req approveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for ApproveOrderRequest", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	request, err := h.purchaseService.ApproveOrderRequest(c.Request.Context(), c.Param("id"), req.Notes, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to approve order request")
		return
	}

	c.JSON(http.StatusOK, request)
}

func (h *purchaseHandler) rejectOrderRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RejectOrderRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rejection reason is required"})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	request, err := h.purchaseService.RejectOrderRequest(c.Request.Context(), c.Param("id"), req.Reason, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to reject order request")
		return
	}

	c.JSON(http.StatusOK, request)
}

func (h *purchaseHandler) cancelOrderRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	request, err := h.purchaseService.CancelOrderRequest(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to cancel order request")
		return
	}

	c.JSON(http.StatusOK, request)
}

func (h *purchaseHandler) getPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	order, err := h.purchaseService.GetPurchaseOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve purchase order")
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *purchaseHandler) createPurchaseReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchaseReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	receipt, err := h.purchaseService.CreatePurchaseReceipt(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create purchase receipt")
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

func (h *purchaseHandler) getPurchaseReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	receipt, err := h.purchaseService.GetPurchaseReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve purchase receipt")
		return
	}

	c.JSON(http.StatusOK, receipt)
}

func (h *purchaseHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	invoice, err := h.purchaseService.CreateInvoiceFromReceipt(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create invoice")
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

func (h *purchaseHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoice, err := h.purchaseService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve invoice")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

func (h *purchaseHandler) postInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	result, err := h.postingService.PostInvoice(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to post invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostingResponse(result))
}
