package services

import (
	"context"

	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	"github.com/kreasidigital/erp_ledger/internal/dto"
)

// AccountSvcFacade exposes chart-of-accounts operations.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.ChartOfAccount, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.ChartOfAccount, error)
	GetAccountByCode(ctx context.Context, code string) (*domain.ChartOfAccount, error)
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.ChartOfAccount, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.ChartOfAccount, error)
	DeactivateAccount(ctx context.Context, accountID string, userID string) error
}
