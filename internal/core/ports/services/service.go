package services

// ServiceContainer bundles the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Account        AccountSvcFacade
	CashBank       CashBankSvcFacade
	Voucher        VoucherSvcFacade
	Purchase       PurchaseSvcFacade
	Posting        PostingSvcFacade
	Journal        JournalSvcFacade
	Reconciliation ReconciliationSvcFacade
	Reporting      ReportingSvcFacade
	Sequence       SequenceSvcFacade
}
