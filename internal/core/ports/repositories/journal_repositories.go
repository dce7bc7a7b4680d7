package repositories

import (
	"context"
	"time"

	"github.com/kreasidigital/erp_ledger/internal/core/domain"
)

// PostedDocument tells the journal repository which source document row to
// flip to posted together with the entry write. The repository resolves
// the Kind to a table through an explicit lookup, never through dynamic
// type names. FromStatus is the status the caller observed; the flip only
// applies while the row still holds it, so two concurrent postings cannot
// both commit.
type PostedDocument struct {
	Source     domain.SourceRef
	FromStatus domain.DocumentStatus
	Status     domain.DocumentStatus
	UpdatedBy  string
	UpdatedAt  time.Time
}

// JournalRepositoryFacade defines read operations over journal entries.
type JournalRepositoryFacade interface {
	FindEntriesBySource(ctx context.Context, source domain.SourceRef) ([]domain.JournalEntry, error)
	HasEntriesForSource(ctx context.Context, source domain.SourceRef) (bool, error)
	ListEntriesByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.JournalEntry, error)
	ListEntriesByReconciliation(ctx context.Context, reconID string) ([]domain.JournalEntry, error)
}

// JournalRepositoryWithTx adds the atomic posting write: all entries, the
// bank reconciliation attachment for cash/bank legs and the source
// document's status transition are committed in a single database
// transaction, or not at all. The returned entries carry the assigned
// bank reconciliation ids.
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	SavePostedEntries(ctx context.Context, entries []domain.JournalEntry, accounts map[string]domain.ChartOfAccount, doc PostedDocument) ([]domain.JournalEntry, error)
}
