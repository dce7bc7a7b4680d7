package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDetailRequest is one breakdown line of a cash/bank
// transaction. Negative amounts are allowed (tax reductions).
type TransactionDetailRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// CreateCashBankTransactionRequest defines the payload for creating a
// draft cash/bank transaction. Either OffsetID or Details must be set.
type CreateCashBankTransactionRequest struct {
	Date        time.Time                  `json:"date" binding:"required"`
	Type        string                     `json:"type" binding:"required,oneof=cash_in cash_out bank_in bank_out"`
	Amount      decimal.Decimal            `json:"amount" binding:"required"`
	Description string                     `json:"description"`
	AccountID   string                     `json:"accountID" binding:"required"`
	OffsetID    *string                    `json:"offsetID"`
	BranchID    *string                    `json:"branchID"`
	Details     []TransactionDetailRequest `json:"details"`
}

// CreateCashBankTransferRequest defines the payload for creating a draft
// transfer between two cash/bank accounts.
type CreateCashBankTransferRequest struct {
	Date         time.Time       `json:"date" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	OtherCosts   decimal.Decimal `json:"otherCosts"`
	FromID       string          `json:"fromID" binding:"required"`
	ToID         string          `json:"toID" binding:"required"`
	FeeAccountID *string         `json:"feeAccountID"`
	Description  string          `json:"description"`
	BranchID     *string         `json:"branchID"`
}
