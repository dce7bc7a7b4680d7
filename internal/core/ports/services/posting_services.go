package services

import (
	"context"
	"time"

	"github.com/kreasidigital/erp_ledger/internal/core/domain"
)

// PostingSvcFacade converts postable documents into balanced journal
// entries. Each call is atomic: either all entries are written and the
// document is marked posted, or nothing changes. Re-posting an already
// posted document is rejected, never duplicated.
type PostingSvcFacade interface {
	PostCashBankTransaction(ctx context.Context, transactionID string, userID string) (*domain.PostingResult, error)
	PostCashBankTransfer(ctx context.Context, transferID string, userID string) (*domain.PostingResult, error)
	PostInvoice(ctx context.Context, invoiceID string, userID string) (*domain.PostingResult, error)
}

// JournalSvcFacade exposes read access to posted journal entries.
type JournalSvcFacade interface {
	GetEntriesBySource(ctx context.Context, source domain.SourceRef) ([]domain.JournalEntry, error)
	ListEntriesByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.JournalEntry, error)
}

// ReconciliationSvcFacade manages bank reconciliation batches outside the
// posting path.
type ReconciliationSvcFacade interface {
	GetReconciliation(ctx context.Context, reconID string) (*domain.BankReconciliation, error)
	ListReconciliations(ctx context.Context, accountID string) ([]domain.BankReconciliation, error)
	ListReconciliationEntries(ctx context.Context, reconID string) ([]domain.JournalEntry, error)
	CloseReconciliation(ctx context.Context, reconID string, userID string) error
	ReopenReconciliation(ctx context.Context, reconID string, userID string) error
}

// SequenceSvcFacade issues sequential document numbers of the form
// <PREFIX>-<YYYYMMDD>-<NNNN>.
type SequenceSvcFacade interface {
	NextNumber(ctx context.Context, prefix string, date time.Time) (string, error)
}
