package dto

import (
	"time"

	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryResponse is the external representation of a journal entry.
type EntryResponse struct {
	EntryID     string          `json:"entryID"`
	AccountID   string          `json:"accountID"`
	Date        time.Time       `json:"date"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	JournalType string          `json:"journalType"`
	SourceKind  string          `json:"sourceKind"`
	SourceID    string          `json:"sourceID"`
	BankReconID *string         `json:"bankReconID"`
}

// PostingResponse summarizes a posting operation.
type PostingResponse struct {
	SourceKind        string          `json:"sourceKind"`
	SourceID          string          `json:"sourceID"`
	TotalDebit        decimal.Decimal `json:"totalDebit"`
	TotalCredit       decimal.Decimal `json:"totalCredit"`
	Entries           []EntryResponse `json:"entries"`
	ReconciliationIDs []string        `json:"reconciliationIDs"`
}

// ToEntryResponse converts a domain journal entry to its response DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	return EntryResponse{
		EntryID:     e.EntryID,
		AccountID:   e.AccountID,
		Date:        e.Date,
		Reference:   e.Reference,
		Description: e.Description,
		Debit:       e.Debit,
		Credit:      e.Credit,
		JournalType: string(e.JournalType),
		SourceKind:  string(e.Source.Kind),
		SourceID:    e.Source.ID,
		BankReconID: e.BankReconID,
	}
}

// ToEntryResponses converts a slice of domain journal entries.
func ToEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}

// ToPostingResponse converts a domain posting result.
func ToPostingResponse(r *domain.PostingResult) PostingResponse {
	return PostingResponse{
		SourceKind:        string(r.Source.Kind),
		SourceID:          r.Source.ID,
		TotalDebit:        r.TotalDebit,
		TotalCredit:       r.TotalCredit,
		Entries:           ToEntryResponses(r.Entries),
		ReconciliationIDs: r.ReconciliationIDs,
	}
}
