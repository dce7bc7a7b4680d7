package mapping

import (
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	"github.com/kreasidigital/erp_ledger/internal/models"
)

// ToModelVoucher converts a domain voucher request to its model form
func ToModelVoucher(d domain.VoucherRequest) models.VoucherRequest {
	return models.VoucherRequest{
		VoucherID:     d.VoucherID,
		VoucherNumber: d.VoucherNumber,
		VoucherDate:   d.VoucherDate,
		Amount:        d.Amount,
		RelatedParty:  d.RelatedParty,
		Description:   d.Description,
		Status:        string(d.Status),
		TransactionID: d.TransactionID,
		BranchID:      d.BranchID,
		ApprovedBy:    d.ApprovedBy,
		ApprovedAt:    d.ApprovedAt,
		ApprovalNotes: d.ApprovalNotes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model voucher request to its domain form
func ToDomainVoucher(m models.VoucherRequest) domain.VoucherRequest {
	return domain.VoucherRequest{
		VoucherID:     m.VoucherID,
		VoucherNumber: m.VoucherNumber,
		VoucherDate:   m.VoucherDate,
		Amount:        m.Amount,
		RelatedParty:  m.RelatedParty,
		Description:   m.Description,
		Status:        domain.DocumentStatus(m.Status),
		TransactionID: m.TransactionID,
		BranchID:      m.BranchID,
		ApprovalFields: domain.ApprovalFields{
			ApprovedBy:    m.ApprovedBy,
			ApprovedAt:    m.ApprovedAt,
			ApprovalNotes: m.ApprovalNotes,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVoucherSlice converts a slice of model vouchers to domain vouchers
func ToDomainVoucherSlice(ms []models.VoucherRequest) []domain.VoucherRequest {
	ds := make([]domain.VoucherRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVoucher(m)
	}
	return ds
}
