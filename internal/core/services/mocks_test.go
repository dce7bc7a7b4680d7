package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	portsrepo "github.com/kreasidigital/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/kreasidigital/erp_ledger/internal/core/ports/services"
	"github.com/kreasidigital/erp_ledger/internal/dto"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.ChartOfAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.ChartOfAccount, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ChartOfAccount), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit, offset int) ([]domain.ChartOfAccount, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartOfAccount), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.ChartOfAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryWithTx = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntriesBySource(ctx context.Context, source domain.SourceRef) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) HasEntriesForSource(ctx context.Context, source domain.SourceRef) (bool, error) {
	args := m.Called(ctx, source)
	return args.Bool(0), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByReconciliation(ctx context.Context, reconID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, reconID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// SavePostedEntries accepts either a fixed entry slice or a transform
// func, since the entries carry ids generated inside the service.
func (m *MockJournalRepository) SavePostedEntries(ctx context.Context, entries []domain.JournalEntry, accounts map[string]domain.ChartOfAccount, doc portsrepo.PostedDocument) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, entries, accounts, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if transform, ok := args.Get(0).(func([]domain.JournalEntry) []domain.JournalEntry); ok {
		return transform(entries), args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// --- Mock ReconciliationRepository ---

type MockReconciliationRepository struct {
	mock.Mock
}

var _ portsrepo.ReconciliationRepositoryFacade = (*MockReconciliationRepository)(nil)

func (m *MockReconciliationRepository) FindReconciliationByID(ctx context.Context, reconID string) (*domain.BankReconciliation, error) {
	args := m.Called(ctx, reconID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) FindOpenByAccount(ctx context.Context, accountID string) (*domain.BankReconciliation, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) ListReconciliations(ctx context.Context, accountID string) ([]domain.BankReconciliation, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) CloseReconciliation(ctx context.Context, reconID string, userID string) error {
	args := m.Called(ctx, reconID, userID)
	return args.Error(0)
}

func (m *MockReconciliationRepository) ReopenReconciliation(ctx context.Context, reconID string, userID string) error {
	args := m.Called(ctx, reconID, userID)
	return args.Error(0)
}

// --- Mock CashBankRepository ---

type MockCashBankRepository struct {
	mock.Mock
}

var _ portsrepo.CashBankRepositoryFacade = (*MockCashBankRepository)(nil)

func (m *MockCashBankRepository) SaveTransaction(ctx context.Context, trx domain.CashBankTransaction) error {
	args := m.Called(ctx, trx)
	return args.Error(0)
}

func (m *MockCashBankRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.CashBankTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBankTransaction), args.Error(1)
}

func (m *MockCashBankRepository) ListTransactions(ctx context.Context, limit, offset int) ([]domain.CashBankTransaction, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashBankTransaction), args.Error(1)
}

func (m *MockCashBankRepository) SaveTransfer(ctx context.Context, trf domain.CashBankTransfer) error {
	args := m.Called(ctx, trf)
	return args.Error(0)
}

func (m *MockCashBankRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.CashBankTransfer, error) {
	args := m.Called(ctx, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBankTransfer), args.Error(1)
}


// --- Mock PurchaseRepository ---

type MockPurchaseRepository struct {
	mock.Mock
}

var _ portsrepo.PurchaseRepositoryFacade = (*MockPurchaseRepository)(nil)

func (m *MockPurchaseRepository) SaveOrderRequest(ctx context.Context, req domain.OrderRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPurchaseRepository) FindOrderRequestByID(ctx context.Context, requestID string) (*domain.OrderRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderRequest), args.Error(1)
}

func (m *MockPurchaseRepository) UpdateOrderRequestStatus(ctx context.Context, requestID string, update portsrepo.StatusUpdate) error {
	args := m.Called(ctx, requestID, update)
	return args.Error(0)
}

func (m *MockPurchaseRepository) SavePurchaseOrderForRequest(ctx context.Context, order domain.PurchaseOrder, requestID string, update portsrepo.StatusUpdate) error {
	args := m.Called(ctx, order, requestID, update)
	return args.Error(0)
}

func (m *MockPurchaseRepository) SavePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockPurchaseRepository) FindPurchaseOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseRepository) UpdatePurchaseOrderStatus(ctx context.Context, orderID string, update portsrepo.StatusUpdate) error {
	args := m.Called(ctx, orderID, update)
	return args.Error(0)
}

func (m *MockPurchaseRepository) SavePurchaseReceipt(ctx context.Context, receipt domain.PurchaseReceipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockPurchaseRepository) FindPurchaseReceiptByID(ctx context.Context, receiptID string) (*domain.PurchaseReceipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseReceipt), args.Error(1)
}

// --- Mock InvoiceRepository ---

type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

// --- Mock VoucherRepository ---

type MockVoucherRepository struct {
	mock.Mock
}

var _ portsrepo.VoucherRepositoryFacade = (*MockVoucherRepository)(nil)

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.VoucherRequest) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.VoucherRequest, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoucherRequest), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchers(ctx context.Context, limit, offset int) ([]domain.VoucherRequest, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VoucherRequest), args.Error(1)
}

func (m *MockVoucherRepository) UpdateVoucherStatus(ctx context.Context, voucherID string, update portsrepo.StatusUpdate) error {
	args := m.Called(ctx, voucherID, update)
	return args.Error(0)
}

func (m *MockVoucherRepository) LinkVoucherTransaction(ctx context.Context, voucherID, transactionID string, userID string, now time.Time) error {
	args := m.Called(ctx, voucherID, transactionID, userID, now)
	return args.Error(0)
}

func (m *MockVoucherRepository) CountTransactionsForVoucher(ctx context.Context, voucherID string) (int, error) {
	args := m.Called(ctx, voucherID)
	return args.Int(0), args.Error(1)
}

// --- Mock SequenceRepository ---

type MockSequenceRepository struct {
	mock.Mock
}

var _ portsrepo.SequenceRepositoryFacade = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) NextValue(ctx context.Context, prefix, period string) (int64, error) {
	args := m.Called(ctx, prefix, period)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepositoryFacade = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetAccountTotals(ctx context.Context, asOf time.Time, branchID *string) ([]domain.AccountTotals, error) {
	args := m.Called(ctx, asOf, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTotals), args.Error(1)
}

// --- Mock SequenceService ---

type MockSequenceService struct {
	mock.Mock
}

var _ portssvc.SequenceSvcFacade = (*MockSequenceService)(nil)

func (m *MockSequenceService) NextNumber(ctx context.Context, prefix string, date time.Time) (string, error) {
	args := m.Called(ctx, prefix, date)
	return args.String(0), args.Error(1)
}

// --- Mock CashBankService ---

type MockCashBankService struct {
	mock.Mock
}

var _ portssvc.CashBankSvcFacade = (*MockCashBankService)(nil)

func (m *MockCashBankService) CreateTransaction(ctx context.Context, req dto.CreateCashBankTransactionRequest, creatorUserID string) (*domain.CashBankTransaction, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBankTransaction), args.Error(1)
}

func (m *MockCashBankService) GetTransaction(ctx context.Context, transactionID string) (*domain.CashBankTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBankTransaction), args.Error(1)
}

func (m *MockCashBankService) ListTransactions(ctx context.Context, limit, offset int) ([]domain.CashBankTransaction, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashBankTransaction), args.Error(1)
}

func (m *MockCashBankService) CreateTransfer(ctx context.Context, req dto.CreateCashBankTransferRequest, creatorUserID string) (*domain.CashBankTransfer, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBankTransfer), args.Error(1)
}

func (m *MockCashBankService) GetTransfer(ctx context.Context, transferID string) (*domain.CashBankTransfer, error) {
	args := m.Called(ctx, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBankTransfer), args.Error(1)
}

// --- Mock PostingService ---

type MockPostingService struct {
	mock.Mock
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

func (m *MockPostingService) PostCashBankTransaction(ctx context.Context, transactionID string, userID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

func (m *MockPostingService) PostCashBankTransfer(ctx context.Context, transferID string, userID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, transferID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

func (m *MockPostingService) PostInvoice(ctx context.Context, invoiceID string, userID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, invoiceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}
