package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide indicates whether a journal entry carries its amount on the
// debit or the credit column.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// JournalType tags entries with the business flow that produced them.
type JournalType string

const (
	JournalCashBank JournalType = "cashbank"
	JournalTransfer JournalType = "transfer"
	JournalPurchase JournalType = "purchase"
	JournalSales    JournalType = "sales"
	JournalVoucher  JournalType = "voucher"
)

// SourceKind is the closed set of document kinds that may own journal
// entries. New document types must be added here and in the posting
// repository's document table lookup.
type SourceKind string

const (
	SourceCashBankTransaction SourceKind = "cashbank_transaction"
	SourceCashBankTransfer    SourceKind = "cashbank_transfer"
	SourceOrderRequest        SourceKind = "order_request"
	SourcePurchaseOrder       SourceKind = "purchase_order"
	SourcePurchaseReceipt     SourceKind = "purchase_receipt"
	SourceInvoice             SourceKind = "invoice"
	SourceVoucherRequest      SourceKind = "voucher_request"
)

// SourceRef links a journal entry back to the document that produced it.
type SourceRef struct {
	Kind SourceKind `json:"kind"`
	ID   string     `json:"id"`
}

// JournalEntry is a single immutable ledger line. Exactly one of Debit and
// Credit is non-zero. Entries are created once at posting time; the only
// later mutation is attaching a bank reconciliation batch id.
type JournalEntry struct {
	EntryID     string          `json:"entryID"`
	AccountID   string          `json:"accountID"`
	Date        time.Time       `json:"date"`
	Reference   string          `json:"reference"`   // Source document number
	Description string          `json:"description"` // Nullable free text
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	JournalType JournalType     `json:"journalType"`
	Source      SourceRef       `json:"source"`
	BranchID    *string         `json:"branchID"`
	BankReconID *string         `json:"bankReconID"` // Set for cash/bank account legs
	AuditFields
}

// Side reports which column carries the entry's amount.
func (e JournalEntry) Side() EntrySide {
	if e.Debit.IsPositive() {
		return Debit
	}
	return Credit
}

// Amount returns the non-zero column value.
func (e JournalEntry) Amount() decimal.Decimal {
	if e.Debit.IsPositive() {
		return e.Debit
	}
	return e.Credit
}
