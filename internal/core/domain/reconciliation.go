package domain

import "time"

// ReconciliationStatus is the lifecycle of a bank reconciliation batch.
type ReconciliationStatus string

const (
	ReconOpen   ReconciliationStatus = "open"
	ReconClosed ReconciliationStatus = "closed"
)

// BankReconciliation groups posted journal entries against one cash/bank
// account. At most one open batch exists per account; entries accumulate
// into it until it is closed.
type BankReconciliation struct {
	ReconID   string               `json:"reconID"`
	AccountID string               `json:"accountID"`
	Status    ReconciliationStatus `json:"status"`
	ClosedAt  *time.Time           `json:"closedAt"`
	AuditFields
}
