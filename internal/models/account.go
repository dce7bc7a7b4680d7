package models

// ChartOfAccount is the database representation of a ledger account.
type ChartOfAccount struct {
	AccountID  string  `json:"accountID"` // Primary Key (UUID)
	Code       string  `json:"code"`      // Unique hierarchical key
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	ParentID   *string `json:"parentID"` // Nullable self-reference
	IsCurrent  bool    `json:"isCurrent"`
	IsCashBank bool    `json:"isCashBank"`
	IsActive   bool    `json:"isActive"`
	AuditFields
}
