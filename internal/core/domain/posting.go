package domain

import "github.com/shopspring/decimal"

// PostingResult summarizes one successful posting: the entries written
// (with bank reconciliation ids attached where applicable) and the proven
// equal debit/credit totals.
type PostingResult struct {
	Source            SourceRef       `json:"source"`
	Entries           []JournalEntry  `json:"entries"`
	TotalDebit        decimal.Decimal `json:"totalDebit"`
	TotalCredit       decimal.Decimal `json:"totalCredit"`
	ReconciliationIDs []string        `json:"reconciliationIDs"`
}
