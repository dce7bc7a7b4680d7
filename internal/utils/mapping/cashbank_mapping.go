package mapping

import (
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	"github.com/kreasidigital/erp_ledger/internal/models"
)

// ToModelCashBankTransaction converts a domain transaction to its model form
func ToModelCashBankTransaction(d domain.CashBankTransaction) models.CashBankTransaction {
	return models.CashBankTransaction{
		TransactionID: d.TransactionID,
		Number:        d.Number,
		Date:          d.Date,
		Type:          string(d.Type),
		Amount:        d.Amount,
		Description:   d.Description,
		AccountID:     d.AccountID,
		OffsetID:      d.OffsetID,
		BranchID:      d.BranchID,
		Status:        string(d.Status),
		VoucherID:     d.VoucherID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashBankTransaction converts a model transaction and its detail
// rows to the domain form
func ToDomainCashBankTransaction(m models.CashBankTransaction, details []models.CashBankTransactionDetail) domain.CashBankTransaction {
	domainDetails := make([]domain.CashBankTransactionDetail, len(details))
	for i, d := range details {
		domainDetails[i] = domain.CashBankTransactionDetail{
			DetailID:      d.DetailID,
			TransactionID: d.TransactionID,
			AccountID:     d.AccountID,
			Amount:        d.Amount,
			Description:   d.Description,
		}
	}
	return domain.CashBankTransaction{
		TransactionID: m.TransactionID,
		Number:        m.Number,
		Date:          m.Date,
		Type:          domain.CashBankTransactionType(m.Type),
		Amount:        m.Amount,
		Description:   m.Description,
		AccountID:     m.AccountID,
		OffsetID:      m.OffsetID,
		BranchID:      m.BranchID,
		Status:        domain.DocumentStatus(m.Status),
		VoucherID:     m.VoucherID,
		Details:       domainDetails,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCashBankTransfer converts a domain transfer to its model form
func ToModelCashBankTransfer(d domain.CashBankTransfer) models.CashBankTransfer {
	return models.CashBankTransfer{
		TransferID:   d.TransferID,
		Number:       d.Number,
		Date:         d.Date,
		Amount:       d.Amount,
		OtherCosts:   d.OtherCosts,
		FromID:       d.FromID,
		ToID:         d.ToID,
		FeeAccountID: d.FeeAccountID,
		Description:  d.Description,
		BranchID:     d.BranchID,
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashBankTransfer converts a model transfer to its domain form
func ToDomainCashBankTransfer(m models.CashBankTransfer) domain.CashBankTransfer {
	return domain.CashBankTransfer{
		TransferID:   m.TransferID,
		Number:       m.Number,
		Date:         m.Date,
		Amount:       m.Amount,
		OtherCosts:   m.OtherCosts,
		FromID:       m.FromID,
		ToID:         m.ToID,
		FeeAccountID: m.FeeAccountID,
		Description:  m.Description,
		BranchID:     m.BranchID,
		Status:       domain.DocumentStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
