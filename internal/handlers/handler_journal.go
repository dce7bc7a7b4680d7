package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	portssvc "github.com/kreasidigital/erp_ledger/internal/core/ports/services"
	"github.com/kreasidigital/erp_ledger/internal/dto"
	"github.com/kreasidigital/erp_ledger/internal/middleware"
)

// journalHandler exposes read access to posted entries and management of
// bank reconciliation batches.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	reconService   portssvc.ReconciliationSvcFacade
}

func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, reconService portssvc.ReconciliationSvcFacade) {
	h := &journalHandler{journalService: journalService, reconService: reconService}

	rg.GET("/accounts/:id/entries", h.listAccountEntries)
	rg.GET("/accounts/:id/reconciliations", h.listAccountReconciliations)
	rg.GET("/journal/:kind/:id", h.getSourceEntries)

	recons := rg.Group("/reconciliations")
	{
		recons.GET("/:id", h.getReconciliation)
		recons.GET("/:id/entries", h.listReconciliationEntries)
		recons.POST("/:id/close", h.closeReconciliation)
		recons.POST("/:id/reopen", h.reopenReconciliation)
	}
}

func (h *journalHandler) listAccountEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := paginationParams(c)

	entries, err := h.journalService.ListEntriesByAccount(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": dto.ToEntryResponses(entries)})
}

func (h *journalHandler) getSourceEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	source := domain.SourceRef{Kind: domain.SourceKind(c.Param("kind")), ID: c.Param("id")}
	entries, err := h.journalService.GetEntriesBySource(c.Request.Context(), source)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve entries")
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": dto.ToEntryResponses(entries)})
}

func (h *journalHandler) listAccountReconciliations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	recons, err := h.reconService.ListReconciliations(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list reconciliations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reconciliations": recons})
}

func (h *journalHandler) getReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	recon, err := h.reconService.GetReconciliation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve reconciliation")
		return
	}

	c.JSON(http.StatusOK, recon)
}

func (h *journalHandler) listReconciliationEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.reconService.ListReconciliationEntries(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list reconciliation entries")
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": dto.ToEntryResponses(entries)})
}

func (h *journalHandler) closeReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.reconService.CloseReconciliation(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to close reconciliation")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *journalHandler) reopenReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.reconService.ReopenReconciliation(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to reopen reconciliation")
		return
	}

	c.Status(http.StatusNoContent)
}
