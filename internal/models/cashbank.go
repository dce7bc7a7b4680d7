package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashBankTransactionDetail is a breakdown line row.
type CashBankTransactionDetail struct {
	DetailID      string          `json:"detailID"` // Primary Key (UUID)
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	Amount        decimal.Decimal `json:"amount"` // May be negative
	Description   string          `json:"description"`
}

// CashBankTransaction is the database representation of a cash receipt or
// disbursement document.
type CashBankTransaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Number        string          `json:"number"`
	Date          time.Time       `json:"date"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	AccountID     string          `json:"accountID"`
	OffsetID      *string         `json:"offsetID"`
	BranchID      *string         `json:"branchID"`
	Status        string          `json:"status"`
	VoucherID     *string         `json:"voucherID"`
	AuditFields
}

// CashBankTransfer is the database representation of a transfer document.
type CashBankTransfer struct {
	TransferID   string          `json:"transferID"` // Primary Key (UUID)
	Number       string          `json:"number"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	OtherCosts   decimal.Decimal `json:"otherCosts"`
	FromID       string          `json:"fromID"`
	ToID         string          `json:"toID"`
	FeeAccountID *string         `json:"feeAccountID"`
	Description  string          `json:"description"`
	BranchID     *string         `json:"branchID"`
	Status       string          `json:"status"`
	AuditFields
}
