package domain

// AccountType defines the fundamental accounting type of a ledger account.
type AccountType string

const (
	Asset       AccountType = "ASSET"
	ContraAsset AccountType = "CONTRA_ASSET"
	Liability   AccountType = "LIABILITY"
	Equity      AccountType = "EQUITY"
	Revenue     AccountType = "REVENUE"
	Expense     AccountType = "EXPENSE"
)

// NormalBalance is the side on which an account type naturally increases.
type NormalBalance string

const (
	DebitNormal  NormalBalance = "DEBIT"
	CreditNormal NormalBalance = "CREDIT"
)

// NormalBalance returns the polarity for the account type. It is fully
// determined by the type; accounts carry no independent polarity field.
func (t AccountType) NormalBalance() NormalBalance {
	switch t {
	case Asset, Expense:
		return DebitNormal
	case ContraAsset, Liability, Equity, Revenue:
		return CreditNormal
	}
	return DebitNormal
}

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, ContraAsset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// ChartOfAccount represents a single ledger account in the account catalog.
// Accounts form a hierarchy via ParentID; children participate in report
// rollups but inherit no fields.
type ChartOfAccount struct {
	AccountID  string      `json:"accountID"`  // Primary Key (UUID)
	Code       string      `json:"code"`       // Unique hierarchical key, e.g. "1110.01"
	Name       string      `json:"name"`       // User-facing account name
	Type       AccountType `json:"type"`       // ASSET, LIABILITY, etc.
	ParentID   *string     `json:"parentID"`   // Nullable self-reference
	IsCurrent  bool        `json:"isCurrent"`  // Current vs non-current classification for reports
	IsCashBank bool        `json:"isCashBank"` // Cash/bank accounts feed bank reconciliation
	IsActive   bool        `json:"isActive"`
	AuditFields
}
