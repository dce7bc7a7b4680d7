package mapping

import (
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	"github.com/kreasidigital/erp_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		AccountID:   d.AccountID,
		Date:        d.Date,
		Reference:   d.Reference,
		Description: d.Description,
		Debit:       d.Debit,
		Credit:      d.Credit,
		JournalType: string(d.JournalType),
		SourceKind:  string(d.Source.Kind),
		SourceID:    d.Source.ID,
		BranchID:    d.BranchID,
		BankReconID: d.BankReconID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		AccountID:   m.AccountID,
		Date:        m.Date,
		Reference:   m.Reference,
		Description: m.Description,
		Debit:       m.Debit,
		Credit:      m.Credit,
		JournalType: domain.JournalType(m.JournalType),
		Source:      domain.SourceRef{Kind: domain.SourceKind(m.SourceKind), ID: m.SourceID},
		BranchID:    m.BranchID,
		BankReconID: m.BankReconID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalEntrySlice converts a slice of model entries to domain entries
func ToDomainJournalEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntry(m)
	}
	return ds
}

// ToDomainReconciliation converts a model BankReconciliation to its domain form
func ToDomainReconciliation(m models.BankReconciliation) domain.BankReconciliation {
	return domain.BankReconciliation{
		ReconID:     m.ReconID,
		AccountID:   m.AccountID,
		Status:      domain.ReconciliationStatus(m.Status),
		ClosedAt:    m.ClosedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
