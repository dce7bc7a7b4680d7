package repositories

// RepositoryProvider bundles the repository facades handed to the service
// layer.
type RepositoryProvider struct {
	Account        AccountRepositoryFacade
	Journal        JournalRepositoryWithTx
	Reconciliation ReconciliationRepositoryFacade
	CashBank       CashBankRepositoryFacade
	Purchase       PurchaseRepositoryFacade
	Invoice        InvoiceRepositoryFacade
	Voucher        VoucherRepositoryFacade
	Sequence       SequenceRepositoryFacade
	Reporting      ReportingRepositoryFacade
}
