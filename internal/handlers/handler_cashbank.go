package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kreasidigital/erp_ledger/internal/core/ports/services"
	"github.com/kreasidigital/erp_ledger/internal/dto"
	"github.com/kreasidigital/erp_ledger/internal/middleware"
)

// cashBankHandler handles cash/bank transactions and transfers, including
// posting them to the ledger.
type cashBankHandler struct {
	cashBankService portssvc.CashBankSvcFacade
	postingService  portssvc.PostingSvcFacade
}

func registerCashBankRoutes(rg *gin.RouterGroup, cashBankService portssvc.CashBankSvcFacade, postingService portssvc.PostingSvcFacade) {
	h := &cashBankHandler{cashBankService: cashBankService, postingService: postingService}

	transactions := rg.Group("/cashbank/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.POST("/:id/post", h.postTransaction)
	}

	transfers := rg.Group("/cashbank/transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.GET("/:id", h.getTransfer)
		transfers.POST("/:id/post", h.postTransfer)
	}
}

func (h *cashBankHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCashBankTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	trx, err := h.cashBankService.CreateTransaction(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, trx)
}

func (h *cashBankHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	trx, err := h.cashBankService.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, trx)
}

func (h *cashBankHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := paginationParams(c)

	transactions, err := h.cashBankService.ListTransactions(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

func (h *cashBankHandler) postTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	result, err := h.postingService.PostCashBankTransaction(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to post transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostingResponse(result))
}

func (h *cashBankHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCashBankTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	trf, err := h.cashBankService.CreateTransfer(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create transfer")
		return
	}

	c.JSON(http.StatusCreated, trf)
}

func (h *cashBankHandler) getTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	trf, err := h.cashBankService.GetTransfer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transfer")
		return
	}

	c.JSON(http.StatusOK, trf)
}

func (h *cashBankHandler) postTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	result, err := h.postingService.PostCashBankTransfer(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to post transfer")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostingResponse(result))
}
