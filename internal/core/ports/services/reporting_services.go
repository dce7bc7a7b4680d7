package services

import (
	"context"
	"time"

	"github.com/kreasidigital/erp_ledger/internal/core/domain"
)

// ReportingSvcFacade generates financial statements from the ledger.
type ReportingSvcFacade interface {
	BalanceSheet(ctx context.Context, asOf time.Time, branchID *string) (*domain.BalanceSheetReport, error)
}
