package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kreasidigital/erp_ledger/internal/core/ports/services"
	"github.com/kreasidigital/erp_ledger/internal/middleware"
)

// reportingHandler serves financial statements.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	rg.GET("/reports/balance-sheet", h.balanceSheet)
}

func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf := time.Now()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "asOf must be formatted as YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	var branchID *string
	if raw := c.Query("branchID"); raw != "" {
		branchID = &raw
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf, branchID)
	if err != nil {
		respondError(c, logger, err, "Failed to build balance sheet")
		return
	}

	c.JSON(http.StatusOK, report)
}
