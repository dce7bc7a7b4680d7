package services

import (
	portsrepo "github.com/kreasidigital/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/kreasidigital/erp_ledger/internal/core/ports/services"
)

// NewServiceContainer wires the repository provider into the full service
// graph handed to the HTTP layer.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	sequenceSvc := NewSequenceService(repos.Sequence)
	accountSvc := NewAccountService(repos.Account)
	cashBankSvc := NewCashBankService(repos.CashBank, repos.Account, sequenceSvc)
	postingSvc := NewPostingService(repos.Journal, repos.Account, repos.CashBank, repos.Invoice)
	voucherSvc := NewVoucherService(repos.Voucher, cashBankSvc, postingSvc, sequenceSvc)
	purchaseSvc := NewPurchaseService(repos.Purchase, repos.Invoice, repos.Account, sequenceSvc)
	journalSvc := NewJournalService(repos.Journal)
	reconSvc := NewReconciliationService(repos.Reconciliation, repos.Journal)
	reportingSvc := NewReportingService(repos.Reporting)

	return &portssvc.ServiceContainer{
		Account:        accountSvc,
		CashBank:       cashBankSvc,
		Voucher:        voucherSvc,
		Purchase:       purchaseSvc,
		Posting:        postingSvc,
		Journal:        journalSvc,
		Reconciliation: reconSvc,
		Reporting:      reportingSvc,
		Sequence:       sequenceSvc,
	}
}
