package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherRequest is the database representation of a payment voucher.
type VoucherRequest struct {
	VoucherID     string          `json:"voucherID"`     // Primary Key (UUID)
	VoucherNumber string          `json:"voucherNumber"` // VR-YYYYMMDD-NNNN
	VoucherDate   time.Time       `json:"voucherDate"`
	Amount        decimal.Decimal `json:"amount"`
	RelatedParty  string          `json:"relatedParty"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	TransactionID *string         `json:"transactionID"`
	BranchID      *string         `json:"branchID"`
	ApprovedBy    *string         `json:"approvedBy"`
	ApprovedAt    *time.Time      `json:"approvedAt"`
	ApprovalNotes string          `json:"approvalNotes"`
	AuditFields
}
