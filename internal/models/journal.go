package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the database representation of a ledger line. Exactly
// one of Debit and Credit is non-zero.
type JournalEntry struct {
	EntryID     string          `json:"entryID"` // Primary Key (UUID)
	AccountID   string          `json:"accountID"`
	Date        time.Time       `json:"date"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	JournalType string          `json:"journalType"`
	SourceKind  string          `json:"sourceKind"`
	SourceID    string          `json:"sourceID"`
	BranchID    *string         `json:"branchID"`
	BankReconID *string         `json:"bankReconID"`
	AuditFields
}

// BankReconciliation is the database representation of a reconciliation
// batch. A partial unique index keeps at most one open batch per account.
type BankReconciliation struct {
	ReconID   string     `json:"reconID"` // Primary Key (UUID)
	AccountID string     `json:"accountID"`
	Status    string     `json:"status"`
	ClosedAt  *time.Time `json:"closedAt"`
	AuditFields
}
