package repositories

import (
	"context"

	"github.com/kreasidigital/erp_ledger/internal/core/domain"
)

// AccountRepositoryFacade defines persistence operations for the chart of
// accounts.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.ChartOfAccount) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.ChartOfAccount, error)
	FindAccountByCode(ctx context.Context, code string) (*domain.ChartOfAccount, error)
	// FindAccountsByIDs returns the accounts keyed by id. Missing ids are
	// simply absent from the map; callers decide whether that is an error.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.ChartOfAccount, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.ChartOfAccount, error)
	UpdateAccount(ctx context.Context, account domain.ChartOfAccount) error
}
