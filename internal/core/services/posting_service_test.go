package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kreasidigital/erp_ledger/internal/apperrors"
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	portsrepo "github.com/kreasidigital/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/kreasidigital/erp_ledger/internal/core/ports/services"
	"github.com/kreasidigital/erp_ledger/internal/core/services"
)

type PostingServiceTestSuite struct {
	suite.Suite
	mockJournalRepo  *MockJournalRepository
	mockAccountRepo  *MockAccountRepository
	mockCashBankRepo *MockCashBankRepository
	mockInvoiceRepo  *MockInvoiceRepository
	service          portssvc.PostingSvcFacade

	userID         string
	cashAccount    domain.ChartOfAccount
	revenueAccount domain.ChartOfAccount
	expenseAccount domain.ChartOfAccount
	taxAccount     domain.ChartOfAccount
	payableAccount domain.ChartOfAccount
	bankAccount    domain.ChartOfAccount
	feeAccount     domain.ChartOfAccount
}

func (s *PostingServiceTestSuite) SetupTest() {
	s.mockJournalRepo = new(MockJournalRepository)
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockCashBankRepo = new(MockCashBankRepository)
	s.mockInvoiceRepo = new(MockInvoiceRepository)
	s.service = services.NewPostingService(s.mockJournalRepo, s.mockAccountRepo, s.mockCashBankRepo, s.mockInvoiceRepo)

	s.userID = uuid.NewString()
	s.cashAccount = domain.ChartOfAccount{AccountID: uuid.NewString(), Code: "1110.01", Name: "Petty Cash", Type: domain.Asset, IsCurrent: true, IsCashBank: true, IsActive: true}
	s.revenueAccount = domain.ChartOfAccount{AccountID: uuid.NewString(), Code: "4100.01", Name: "Sales", Type: domain.Revenue, IsActive: true}
	s.expenseAccount = domain.ChartOfAccount{AccountID: uuid.NewString(), Code: "6100.01", Name: "Office Supplies", Type: domain.Expense, IsActive: true}
	s.taxAccount = domain.ChartOfAccount{AccountID: uuid.NewString(), Code: "1150.01", Name: "Input Tax", Type: domain.Asset, IsCurrent: true, IsActive: true}
	s.payableAccount = domain.ChartOfAccount{AccountID: uuid.NewString(), Code: "2110.01", Name: "Trade Payables", Type: domain.Liability, IsCurrent: true, IsActive: true}
	s.bankAccount = domain.ChartOfAccount{AccountID: uuid.NewString(), Code: "1120.01", Name: "Operating Bank", Type: domain.Asset, IsCurrent: true, IsCashBank: true, IsActive: true}
	s.feeAccount = domain.ChartOfAccount{AccountID: uuid.NewString(), Code: "6200.01", Name: "Bank Charges", Type: domain.Expense, IsActive: true}
}

func (s *PostingServiceTestSuite) accountsMap(accounts ...domain.ChartOfAccount) map[string]domain.ChartOfAccount {
	m := make(map[string]domain.ChartOfAccount, len(accounts))
	for _, a := range accounts {
		m[a.AccountID] = a
	}
	return m
}

// passthrough echoes the entries the service built, the way the real
// repository returns the saved rows.
func passthrough(entries []domain.JournalEntry) []domain.JournalEntry {
	return entries
}

func (s *PostingServiceTestSuite) TestPostCashBankTransaction_OffsetSuccess() {
	ctx := context.Background()
	reconID := uuid.NewString()

	trx := &domain.CashBankTransaction{
		TransactionID: uuid.NewString(),
		Number:        "CB-20260115-0001",
		Date:          time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Type:          domain.CashIn,
		Amount:        decimal.NewFromInt(500),
		AccountID:     s.cashAccount.AccountID,
		OffsetID:      &s.revenueAccount.AccountID,
		Status:        domain.StatusDraft,
	}
	source := domain.SourceRef{Kind: domain.SourceCashBankTransaction, ID: trx.TransactionID}

	s.mockCashBankRepo.On("FindTransactionByID", ctx, trx.TransactionID).Return(trx, nil).Once()
	s.mockJournalRepo.On("HasEntriesForSource", ctx, source).Return(false, nil).Once()
	s.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{s.cashAccount.AccountID, s.revenueAccount.AccountID}).
		Return(s.accountsMap(s.cashAccount, s.revenueAccount), nil).Once()
	s.mockJournalRepo.On("SavePostedEntries", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(func(entries []domain.JournalEntry) []domain.JournalEntry {
			for i := range entries {
				if entries[i].AccountID == s.cashAccount.AccountID {
					entries[i].BankReconID = &reconID
				}
			}
			return entries
		}, nil).Once()

	result, err := s.service.PostCashBankTransaction(ctx, trx.TransactionID, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Len(result.Entries, 2)
	s.True(result.TotalDebit.Equal(decimal.NewFromInt(500)))
	s.True(result.TotalCredit.Equal(decimal.NewFromInt(500)))
	s.Equal([]string{reconID}, result.ReconciliationIDs)

	for _, e := range result.Entries {
		s.Equal("CB-20260115-0001", e.Reference)
		s.Equal(domain.JournalCashBank, e.JournalType)
		s.Equal(source, e.Source)
		switch e.AccountID {
		case s.cashAccount.AccountID:
			s.True(e.Debit.Equal(decimal.NewFromInt(500)), "inflow debits the cash account")
		case s.revenueAccount.AccountID:
			s.True(e.Credit.Equal(decimal.NewFromInt(500)))
		default:
			s.Failf("unexpected entry", "account %s", e.AccountID)
		}
	}

	s.mockJournalRepo.AssertExpectations(s.T())
	s.mockAccountRepo.AssertExpectations(s.T())
	s.mockCashBankRepo.AssertExpectations(s.T())
}

func (s *PostingServiceTestSuite) TestPostCashBankTransaction_AlreadyPosted() {
	ctx := context.Background()

	trx := &domain.CashBankTransaction{
		TransactionID: uuid.NewString(),
		Number:        "CB-20260115-0002",
		Date:          time.Now(),
		Type:          domain.CashOut,
		Amount:        decimal.NewFromInt(100),
		AccountID:     s.cashAccount.AccountID,
		OffsetID:      &s.expenseAccount.AccountID,
		Status:        domain.StatusDraft,
	}
	source := domain.SourceRef{Kind: domain.SourceCashBankTransaction, ID: trx.TransactionID}

	s.mockCashBankRepo.On("FindTransactionByID", ctx, trx.TransactionID).Return(trx, nil).Once()
	s.mockJournalRepo.On("HasEntriesForSource", ctx, source).Return(true, nil).Once()

	_, err := s.service.PostCashBankTransaction(ctx, trx.TransactionID, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, services.ErrAlreadyPosted)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockJournalRepo.AssertNotCalled(s.T(), "SavePostedEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// A second posting can flip the document between this call's status read
// and its write; the repository refuses the stale flip and rolls back.
func (s *PostingServiceTestSuite) TestPostCashBankTransaction_StaleStatusConflict() {
	ctx := context.Background()

	trx := &domain.CashBankTransaction{
		TransactionID: uuid.NewString(),
		Number:        "CB-20260115-0003",
		Date:          time.Now(),
		Type:          domain.CashIn,
		Amount:        decimal.NewFromInt(500),
		AccountID:     s.cashAccount.AccountID,
		OffsetID:      &s.revenueAccount.AccountID,
		Status:        domain.StatusDraft,
	}
	source := domain.SourceRef{Kind: domain.SourceCashBankTransaction, ID: trx.TransactionID}

	s.mockCashBankRepo.On("FindTransactionByID", ctx, trx.TransactionID).Return(trx, nil).Once()
	s.mockJournalRepo.On("HasEntriesForSource", ctx, source).Return(false, nil).Once()
	s.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(s.accountsMap(s.cashAccount, s.revenueAccount), nil).Once()
	s.mockJournalRepo.On("SavePostedEntries", ctx, mock.Anything, mock.Anything, mock.MatchedBy(func(doc portsrepo.PostedDocument) bool {
		return doc.FromStatus == domain.StatusDraft && doc.Status == domain.StatusPosted
	})).Return(nil, apperrors.NewAppError(409, "cash/bank transaction "+trx.TransactionID+" is no longer draft", apperrors.ErrConflict)).Once()

	_, err := s.service.PostCashBankTransaction(ctx, trx.TransactionID, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockJournalRepo.AssertExpectations(s.T())
}

func (s *PostingServiceTestSuite) TestPostCashBankTransaction_InvalidTransition() {
	ctx := context.Background()

	trx := &domain.CashBankTransaction{
		TransactionID: uuid.NewString(),
		Type:          domain.CashIn,
		Amount:        decimal.NewFromInt(100),
		AccountID:     s.cashAccount.AccountID,
		OffsetID:      &s.revenueAccount.AccountID,
		Status:        domain.StatusPosted,
	}

	s.mockCashBankRepo.On("FindTransactionByID", ctx, trx.TransactionID).Return(trx, nil).Once()

	_, err := s.service.PostCashBankTransaction(ctx, trx.TransactionID, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
	var transitionErr *domain.StateTransitionError
	s.ErrorAs(err, &transitionErr)
	s.Equal(domain.StatusPosted, transitionErr.Current)
}

func (s *PostingServiceTestSuite) TestPostCashBankTransaction_BreakdownMismatch() {
	ctx := context.Background()

	trx := &domain.CashBankTransaction{
		TransactionID: uuid.NewString(),
		Type:          domain.BankOut,
		Amount:        decimal.NewFromInt(900),
		AccountID:     s.bankAccount.AccountID,
		Status:        domain.StatusDraft,
		Details: []domain.CashBankTransactionDetail{
			{DetailID: uuid.NewString(), AccountID: s.expenseAccount.AccountID, Amount: decimal.NewFromInt(1000)},
		},
	}

	s.mockCashBankRepo.On("FindTransactionByID", ctx, trx.TransactionID).Return(trx, nil).Once()

	_, err := s.service.PostCashBankTransaction(ctx, trx.TransactionID, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "does not match transaction amount")
}

func (s *PostingServiceTestSuite) TestPostCashBankTransaction_NegativeDetailFlipsSide() {
	ctx := context.Background()

	// Outflow of 900: gross expense 1000 minus a 100 tax reduction.
	trx := &domain.CashBankTransaction{
		TransactionID: uuid.NewString(),
		Number:        "CB-20260116-0001",
		Date:          time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
		Type:          domain.BankOut,
		Amount:        decimal.NewFromInt(900),
		AccountID:     s.bankAccount.AccountID,
		Status:        domain.StatusDraft,
		Details: []domain.CashBankTransactionDetail{
			{DetailID: uuid.NewString(), AccountID: s.expenseAccount.AccountID, Amount: decimal.NewFromInt(1000)},
			{DetailID: uuid.NewString(), AccountID: s.taxAccount.AccountID, Amount: decimal.NewFromInt(-100)},
		},
	}
	source := domain.SourceRef{Kind: domain.SourceCashBankTransaction, ID: trx.TransactionID}

	s.mockCashBankRepo.On("FindTransactionByID", ctx, trx.TransactionID).Return(trx, nil).Once()
	s.mockJournalRepo.On("HasEntriesForSource", ctx, source).Return(false, nil).Once()
	s.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(s.accountsMap(s.bankAccount, s.expenseAccount, s.taxAccount), nil).Once()
	s.mockJournalRepo.On("SavePostedEntries", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(passthrough, nil).Once()

	result, err := s.service.PostCashBankTransaction(ctx, trx.TransactionID, s.userID)

	s.Require().NoError(err)
	s.Len(result.Entries, 3)
	s.True(result.TotalDebit.Equal(decimal.NewFromInt(1000)))
	s.True(result.TotalCredit.Equal(decimal.NewFromInt(1000)))

	for _, e := range result.Entries {
		switch e.AccountID {
		case s.bankAccount.AccountID:
			s.True(e.Credit.Equal(decimal.NewFromInt(900)), "outflow credits the bank account")
		case s.expenseAccount.AccountID:
			s.True(e.Debit.Equal(decimal.NewFromInt(1000)))
		case s.taxAccount.AccountID:
			s.True(e.Credit.Equal(decimal.NewFromInt(100)), "negative detail posts on the opposite side")
		}
	}
}

func (s *PostingServiceTestSuite) TestPostCashBankTransaction_InactiveAccount() {
	ctx := context.Background()

	inactive := s.revenueAccount
	inactive.IsActive = false

	trx := &domain.CashBankTransaction{
		TransactionID: uuid.NewString(),
		Type:          domain.CashIn,
		Amount:        decimal.NewFromInt(50),
		AccountID:     s.cashAccount.AccountID,
		OffsetID:      &inactive.AccountID,
		Status:        domain.StatusDraft,
	}
	source := domain.SourceRef{Kind: domain.SourceCashBankTransaction, ID: trx.TransactionID}

	s.mockCashBankRepo.On("FindTransactionByID", ctx, trx.TransactionID).Return(trx, nil).Once()
	s.mockJournalRepo.On("HasEntriesForSource", ctx, source).Return(false, nil).Once()
	s.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(s.accountsMap(s.cashAccount, inactive), nil).Once()

	_, err := s.service.PostCashBankTransaction(ctx, trx.TransactionID, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "inactive")
}

func (s *PostingServiceTestSuite) TestPostCashBankTransfer_WithFee() {
	ctx := context.Background()

	trf := &domain.CashBankTransfer{
		TransferID:   uuid.NewString(),
		Number:       "TF-20260120-0001",
		Date:         time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		Amount:       decimal.NewFromInt(1000),
		OtherCosts:   decimal.NewFromInt(10),
		FromID:       s.bankAccount.AccountID,
		ToID:         s.cashAccount.AccountID,
		FeeAccountID: &s.feeAccount.AccountID,
		Status:       domain.StatusDraft,
	}
	source := domain.SourceRef{Kind: domain.SourceCashBankTransfer, ID: trf.TransferID}

	s.mockCashBankRepo.On("FindTransferByID", ctx, trf.TransferID).Return(trf, nil).Once()
	s.mockJournalRepo.On("HasEntriesForSource", ctx, source).Return(false, nil).Once()
	s.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(s.accountsMap(s.bankAccount, s.cashAccount, s.feeAccount), nil).Once()
	s.mockJournalRepo.On("SavePostedEntries", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(passthrough, nil).Once()

	result, err := s.service.PostCashBankTransfer(ctx, trf.TransferID, s.userID)

	s.Require().NoError(err)
	s.Len(result.Entries, 3)
	s.True(result.TotalDebit.Equal(decimal.NewFromInt(1010)))
	s.True(result.TotalCredit.Equal(decimal.NewFromInt(1010)))

	for _, e := range result.Entries {
		s.Equal(domain.JournalTransfer, e.JournalType)
		switch e.AccountID {
		case s.bankAccount.AccountID:
			s.True(e.Credit.Equal(decimal.NewFromInt(1010)), "source is credited amount plus costs")
		case s.cashAccount.AccountID:
			s.True(e.Debit.Equal(decimal.NewFromInt(1000)))
		case s.feeAccount.AccountID:
			s.True(e.Debit.Equal(decimal.NewFromInt(10)))
		}
	}
}

func (s *PostingServiceTestSuite) TestPostCashBankTransfer_CostsWithoutFeeAccount() {
	ctx := context.Background()

	trf := &domain.CashBankTransfer{
		TransferID: uuid.NewString(),
		Amount:     decimal.NewFromInt(1000),
		OtherCosts: decimal.NewFromInt(10),
		FromID:     s.bankAccount.AccountID,
		ToID:       s.cashAccount.AccountID,
		Status:     domain.StatusDraft,
	}

	s.mockCashBankRepo.On("FindTransferByID", ctx, trf.TransferID).Return(trf, nil).Once()

	_, err := s.service.PostCashBankTransfer(ctx, trf.TransferID, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "fee account")
}

func (s *PostingServiceTestSuite) TestPostInvoice_WithTaxLeg() {
	ctx := context.Background()

	inventory := domain.ChartOfAccount{AccountID: uuid.NewString(), Code: "1140.01", Name: "Inventory", Type: domain.Asset, IsCurrent: true, IsActive: true}
	invoice := &domain.Invoice{
		InvoiceID:      uuid.NewString(),
		Number:         "INV-20260201-0001",
		Date:           time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		SupplierName:   "PT Sumber Makmur",
		DPP:            decimal.NewFromInt(1000),
		Tax:            decimal.NewFromInt(110),
		Total:          decimal.NewFromInt(1110),
		InventoryCoaID: inventory.AccountID,
		TaxInputCoaID:  &s.taxAccount.AccountID,
		PayableCoaID:   s.payableAccount.AccountID,
		Status:         domain.StatusDraft,
	}
	source := domain.SourceRef{Kind: domain.SourceInvoice, ID: invoice.InvoiceID}

	s.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	s.mockJournalRepo.On("HasEntriesForSource", ctx, source).Return(false, nil).Once()
	s.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(s.accountsMap(inventory, s.taxAccount, s.payableAccount), nil).Once()
	s.mockJournalRepo.On("SavePostedEntries", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(passthrough, nil).Once()

	result, err := s.service.PostInvoice(ctx, invoice.InvoiceID, s.userID)

	s.Require().NoError(err)
	s.Len(result.Entries, 3)
	s.True(result.TotalDebit.Equal(decimal.NewFromInt(1110)))
	s.True(result.TotalCredit.Equal(decimal.NewFromInt(1110)))

	for _, e := range result.Entries {
		s.Equal(domain.JournalPurchase, e.JournalType)
		switch e.AccountID {
		case inventory.AccountID:
			s.True(e.Debit.Equal(decimal.NewFromInt(1000)))
		case s.taxAccount.AccountID:
			s.True(e.Debit.Equal(decimal.NewFromInt(110)))
		case s.payableAccount.AccountID:
			s.True(e.Credit.Equal(decimal.NewFromInt(1110)))
		}
	}
}

func (s *PostingServiceTestSuite) TestPostInvoice_TaxFoldsIntoInventoryWithoutTaxAccount() {
	ctx := context.Background()

	inventory := domain.ChartOfAccount{AccountID: uuid.NewString(), Code: "1140.01", Name: "Inventory", Type: domain.Asset, IsCurrent: true, IsActive: true}
	invoice := &domain.Invoice{
		InvoiceID:      uuid.NewString(),
		Number:         "INV-20260201-0002",
		Date:           time.Now(),
		SupplierName:   "PT Sumber Makmur",
		DPP:            decimal.NewFromInt(1000),
		Tax:            decimal.NewFromInt(110),
		Total:          decimal.NewFromInt(1110),
		InventoryCoaID: inventory.AccountID,
		PayableCoaID:   s.payableAccount.AccountID,
		Status:         domain.StatusDraft,
	}
	source := domain.SourceRef{Kind: domain.SourceInvoice, ID: invoice.InvoiceID}

	s.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	s.mockJournalRepo.On("HasEntriesForSource", ctx, source).Return(false, nil).Once()
	s.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(s.accountsMap(inventory, s.payableAccount), nil).Once()
	s.mockJournalRepo.On("SavePostedEntries", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(passthrough, nil).Once()

	result, err := s.service.PostInvoice(ctx, invoice.InvoiceID, s.userID)

	s.Require().NoError(err)
	s.Len(result.Entries, 2)
	s.True(result.TotalDebit.Equal(decimal.NewFromInt(1110)))
	s.True(result.TotalCredit.Equal(decimal.NewFromInt(1110)))

	for _, e := range result.Entries {
		if e.AccountID == inventory.AccountID {
			s.True(e.Debit.Equal(decimal.NewFromInt(1110)), "tax folds into the inventory debit")
		}
	}
}

func (s *PostingServiceTestSuite) TestPostInvoice_TotalMismatch() {
	ctx := context.Background()

	invoice := &domain.Invoice{
		InvoiceID:      uuid.NewString(),
		DPP:            decimal.NewFromInt(1000),
		Tax:            decimal.NewFromInt(110),
		Total:          decimal.NewFromInt(1200),
		InventoryCoaID: uuid.NewString(),
		PayableCoaID:   s.payableAccount.AccountID,
		Status:         domain.StatusDraft,
	}

	s.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()

	_, err := s.service.PostInvoice(ctx, invoice.InvoiceID, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "does not equal DPP")
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
