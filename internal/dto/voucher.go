package dto

import (
	"time"

	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVoucherRequest defines the payload for creating a draft voucher.
type CreateVoucherRequest struct {
	VoucherDate  time.Time       `json:"voucherDate" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	RelatedParty string          `json:"relatedParty" binding:"required"`
	Description  string          `json:"description"`
	BranchID     *string         `json:"branchID"`
}

// ApproveVoucherRequest carries optional approval notes plus the
// auto-transaction settings used when the approver wants a cash/bank
// transaction created from the voucher in the same step.
type ApproveVoucherRequest struct {
	ApprovalNotes         string  `json:"approvalNotes"`
	AutoCreateTransaction bool    `json:"autoCreateTransaction"`
	TransactionType       string  `json:"transactionType" binding:"omitempty,oneof=cash_in cash_out bank_in bank_out"`
	AccountID             *string `json:"accountID"` // Cash/bank COA for the auto transaction
	OffsetID              *string `json:"offsetID"`  // Counter COA for the auto transaction
	AutoPost              bool    `json:"autoPost"`
}

// RejectRequest carries the mandatory rejection reason.
type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// VoucherResponse is the external representation of a voucher request.
type VoucherResponse struct {
	VoucherID     string          `json:"voucherID"`
	VoucherNumber string          `json:"voucherNumber"`
	VoucherDate   time.Time       `json:"voucherDate"`
	Amount        decimal.Decimal `json:"amount"`
	RelatedParty  string          `json:"relatedParty"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	ApprovedBy    *string         `json:"approvedBy"`
	ApprovedAt    *time.Time      `json:"approvedAt"`
	ApprovalNotes string          `json:"approvalNotes"`
	TransactionID *string         `json:"transactionID"`
}

// ToVoucherResponse converts a domain voucher to its response DTO.
func ToVoucherResponse(v *domain.VoucherRequest) VoucherResponse {
	return VoucherResponse{
		VoucherID:     v.VoucherID,
		VoucherNumber: v.VoucherNumber,
		VoucherDate:   v.VoucherDate,
		Amount:        v.Amount,
		RelatedParty:  v.RelatedParty,
		Description:   v.Description,
		Status:        string(v.Status),
		ApprovedBy:    v.ApprovedBy,
		ApprovedAt:    v.ApprovedAt,
		ApprovalNotes: v.ApprovalNotes,
		TransactionID: v.TransactionID,
	}
}
