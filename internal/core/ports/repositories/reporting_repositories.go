package repositories

import (
	"context"
	"time"

	"github.com/kreasidigital/erp_ledger/internal/core/domain"
)

// ReportingRepositoryFacade aggregates journal entries for reports.
type ReportingRepositoryFacade interface {
	// GetAccountTotals returns gross debit and credit sums per account for
	// entries dated on or before asOf, optionally restricted to one branch.
	// Accounts without entries are included with zero sums.
	GetAccountTotals(ctx context.Context, asOf time.Time, branchID *string) ([]domain.AccountTotals, error)
}
