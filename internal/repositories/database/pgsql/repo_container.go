package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/kreasidigital/erp_ledger/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Account:        newPgxAccountRepository(dbPool),
		Journal:        newPgxJournalRepository(dbPool),
		Reconciliation: newPgxReconciliationRepository(dbPool),
		CashBank:       newPgxCashBankRepository(dbPool),
		Purchase:       newPgxPurchaseRepository(dbPool),
		Invoice:        newPgxInvoiceRepository(dbPool),
		Voucher:        newPgxVoucherRepository(dbPool),
		Sequence:       newPgxSequenceRepository(dbPool),
		Reporting:      newReportingRepository(dbPool),
	}
}
