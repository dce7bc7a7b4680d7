package mapping

import (
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	"github.com/kreasidigital/erp_ledger/internal/models"
)

// ToModelAccount converts a domain ChartOfAccount to a model ChartOfAccount
func ToModelAccount(d domain.ChartOfAccount) models.ChartOfAccount {
	return models.ChartOfAccount{
		AccountID:   d.AccountID,
		Code:        d.Code,
		Name:        d.Name,
		Type:        string(d.Type),
		ParentID:    d.ParentID,
		IsCurrent:   d.IsCurrent,
		IsCashBank:  d.IsCashBank,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model ChartOfAccount to a domain ChartOfAccount
func ToDomainAccount(m models.ChartOfAccount) domain.ChartOfAccount {
	return domain.ChartOfAccount{
		AccountID:   m.AccountID,
		Code:        m.Code,
		Name:        m.Name,
		Type:        domain.AccountType(m.Type),
		ParentID:    m.ParentID,
		IsCurrent:   m.IsCurrent,
		IsCashBank:  m.IsCashBank,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
