package repositories

import (
	"context"

	"github.com/kreasidigital/erp_ledger/internal/core/domain"
)

// ReconciliationRepositoryFacade manages bank reconciliation batches. The
// find-or-create path is exercised inside the posting transaction by the
// journal repository; the close/reopen operations run standalone.
type ReconciliationRepositoryFacade interface {
	FindReconciliationByID(ctx context.Context, reconID string) (*domain.BankReconciliation, error)
	FindOpenByAccount(ctx context.Context, accountID string) (*domain.BankReconciliation, error)
	ListReconciliations(ctx context.Context, accountID string) ([]domain.BankReconciliation, error)
	CloseReconciliation(ctx context.Context, reconID string, userID string) error
	ReopenReconciliation(ctx context.Context, reconID string, userID string) error
}
