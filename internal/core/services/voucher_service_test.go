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
	"github.com/kreasidigital/erp_ledger/internal/dto"
)

type VoucherServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo *MockVoucherRepository
	mockCashBankSvc *MockCashBankService
	mockPostingSvc  *MockPostingService
	mockSequenceSvc *MockSequenceService
	service         portssvc.VoucherSvcFacade

	userID string
}

func (s *VoucherServiceTestSuite) SetupTest() {
	s.mockVoucherRepo = new(MockVoucherRepository)
	s.mockCashBankSvc = new(MockCashBankService)
	s.mockPostingSvc = new(MockPostingService)
	s.mockSequenceSvc = new(MockSequenceService)
	s.service = services.NewVoucherService(s.mockVoucherRepo, s.mockCashBankSvc, s.mockPostingSvc, s.mockSequenceSvc)

	s.userID = uuid.NewString()
}

func (s *VoucherServiceTestSuite) pendingVoucher() *domain.VoucherRequest {
	return &domain.VoucherRequest{
		VoucherID:     uuid.NewString(),
		VoucherNumber: "VR-20260110-0001",
		VoucherDate:   time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(250000),
		RelatedParty:  "CV Maju Jaya",
		Status:        domain.StatusPending,
	}
}

func (s *VoucherServiceTestSuite) TestCreateVoucher_Success() {
	ctx := context.Background()
	date := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	req := dto.CreateVoucherRequest{
		VoucherDate:  date,
		Amount:       decimal.NewFromInt(250000),
		RelatedParty: "CV Maju Jaya",
		Description:  "Office rent January",
	}

	s.mockSequenceSvc.On("NextNumber", ctx, services.PrefixVoucher, date).Return("VR-20260110-0001", nil).Once()
	s.mockVoucherRepo.On("SaveVoucher", ctx, mock.AnythingOfType("domain.VoucherRequest")).Return(nil).Once()

	voucher, err := s.service.CreateVoucher(ctx, req, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(voucher)
	s.NotEmpty(voucher.VoucherID)
	s.Equal("VR-20260110-0001", voucher.VoucherNumber)
	s.Equal(domain.StatusDraft, voucher.Status)
	s.Equal(s.userID, voucher.CreatedBy)
	s.mockVoucherRepo.AssertExpectations(s.T())
	s.mockSequenceSvc.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestCreateVoucher_NonPositiveAmount() {
	ctx := context.Background()

	_, err := s.service.CreateVoucher(ctx, dto.CreateVoucherRequest{
		VoucherDate:  time.Now(),
		Amount:       decimal.Zero,
		RelatedParty: "CV Maju Jaya",
	}, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockSequenceSvc.AssertNotCalled(s.T(), "NextNumber", mock.Anything, mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestSubmitVoucher_Success() {
	ctx := context.Background()

	draft := s.pendingVoucher()
	draft.Status = domain.StatusDraft
	submitted := *draft
	submitted.Status = domain.StatusPending

	s.mockVoucherRepo.On("FindVoucherByID", ctx, draft.VoucherID).Return(draft, nil).Once()
	s.mockVoucherRepo.On("UpdateVoucherStatus", ctx, draft.VoucherID, mock.MatchedBy(func(u portsrepo.StatusUpdate) bool {
		return u.Status == domain.StatusPending && u.UpdatedBy == s.userID
	})).Return(nil).Once()
	s.mockVoucherRepo.On("FindVoucherByID", ctx, draft.VoucherID).Return(&submitted, nil).Once()

	voucher, err := s.service.SubmitVoucher(ctx, draft.VoucherID, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.StatusPending, voucher.Status)
	s.mockVoucherRepo.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestApproveVoucher_InvalidFromDraft() {
	ctx := context.Background()

	draft := s.pendingVoucher()
	draft.Status = domain.StatusDraft

	s.mockVoucherRepo.On("FindVoucherByID", ctx, draft.VoucherID).Return(draft, nil).Once()

	_, err := s.service.ApproveVoucher(ctx, draft.VoucherID, dto.ApproveVoucherRequest{}, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
	var transitionErr *domain.StateTransitionError
	s.ErrorAs(err, &transitionErr)
	s.mockVoucherRepo.AssertNotCalled(s.T(), "UpdateVoucherStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestApproveVoucher_WithoutAutoTransaction() {
	ctx := context.Background()

	pending := s.pendingVoucher()
	approved := *pending
	approved.Status = domain.StatusApproved

	s.mockVoucherRepo.On("FindVoucherByID", ctx, pending.VoucherID).Return(pending, nil).Once()
	s.mockVoucherRepo.On("UpdateVoucherStatus", ctx, pending.VoucherID, mock.MatchedBy(func(u portsrepo.StatusUpdate) bool {
		return u.Status == domain.StatusApproved && u.ApprovedBy != nil && *u.ApprovedBy == s.userID
	})).Return(nil).Once()
	s.mockVoucherRepo.On("FindVoucherByID", ctx, pending.VoucherID).Return(&approved, nil).Once()

	voucher, err := s.service.ApproveVoucher(ctx, pending.VoucherID, dto.ApproveVoucherRequest{ApprovalNotes: "ok"}, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, voucher.Status)
	s.mockCashBankSvc.AssertNotCalled(s.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestApproveVoucher_AutoCreatesAndPostsTransaction() {
	ctx := context.Background()

	pending := s.pendingVoucher()
	approved := *pending
	approved.Status = domain.StatusApproved

	cashAccountID := uuid.NewString()
	offsetID := uuid.NewString()
	trx := &domain.CashBankTransaction{
		TransactionID: uuid.NewString(),
		Number:        "CB-20260110-0001",
		Amount:        pending.Amount,
	}

	s.mockVoucherRepo.On("CountTransactionsForVoucher", ctx, pending.VoucherID).Return(0, nil).Once()
	s.mockVoucherRepo.On("FindVoucherByID", ctx, pending.VoucherID).Return(pending, nil).Once()
	s.mockVoucherRepo.On("UpdateVoucherStatus", ctx, pending.VoucherID, mock.Anything).Return(nil).Once()
	s.mockVoucherRepo.On("FindVoucherByID", ctx, pending.VoucherID).Return(&approved, nil).Twice()
	s.mockCashBankSvc.On("CreateTransaction", ctx, mock.MatchedBy(func(req dto.CreateCashBankTransactionRequest) bool {
		return req.Type == "bank_out" && req.Amount.Equal(pending.Amount) && req.AccountID == cashAccountID
	}), s.userID).Return(trx, nil).Once()
	s.mockVoucherRepo.On("LinkVoucherTransaction", ctx, pending.VoucherID, trx.TransactionID, s.userID, mock.Anything).Return(nil).Once()
	s.mockPostingSvc.On("PostCashBankTransaction", ctx, trx.TransactionID, s.userID).
		Return(&domain.PostingResult{}, nil).Once()

	voucher, err := s.service.ApproveVoucher(ctx, pending.VoucherID, dto.ApproveVoucherRequest{
		AutoCreateTransaction: true,
		TransactionType:       "bank_out",
		AccountID:             &cashAccountID,
		OffsetID:              &offsetID,
		AutoPost:              true,
	}, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, voucher.Status)
	s.mockVoucherRepo.AssertExpectations(s.T())
	s.mockCashBankSvc.AssertExpectations(s.T())
	s.mockPostingSvc.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestApproveVoucher_AlreadyBacksTransaction() {
	ctx := context.Background()

	pending := s.pendingVoucher()

	cashAccountID := uuid.NewString()
	offsetID := uuid.NewString()

	s.mockVoucherRepo.On("CountTransactionsForVoucher", ctx, pending.VoucherID).Return(1, nil).Once()

	_, err := s.service.ApproveVoucher(ctx, pending.VoucherID, dto.ApproveVoucherRequest{
		AutoCreateTransaction: true,
		TransactionType:       "cash_out",
		AccountID:             &cashAccountID,
		OffsetID:              &offsetID,
	}, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.Contains(err.Error(), "already backs a transaction")
	// The voucher stays pending, so the approval can be retried once the
	// conflict is resolved.
	s.mockVoucherRepo.AssertNotCalled(s.T(), "UpdateVoucherStatus", mock.Anything, mock.Anything, mock.Anything)
	s.mockCashBankSvc.AssertNotCalled(s.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestApproveVoucher_AutoTransactionMissingAccounts() {
	ctx := context.Background()

	pending := s.pendingVoucher()

	_, err := s.service.ApproveVoucher(ctx, pending.VoucherID, dto.ApproveVoucherRequest{
		AutoCreateTransaction: true,
	}, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	// A bad auto-transaction request must not approve the voucher.
	s.mockVoucherRepo.AssertNotCalled(s.T(), "UpdateVoucherStatus", mock.Anything, mock.Anything, mock.Anything)
	s.mockVoucherRepo.AssertNotCalled(s.T(), "FindVoucherByID", mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestRejectVoucher_RequiresReason() {
	ctx := context.Background()

	_, err := s.service.RejectVoucher(ctx, uuid.NewString(), "   ", s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockVoucherRepo.AssertNotCalled(s.T(), "FindVoucherByID", mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestRejectVoucher_StoresReason() {
	ctx := context.Background()

	pending := s.pendingVoucher()
	rejected := *pending
	rejected.Status = domain.StatusRejected
	rejected.ApprovalNotes = "missing receipts"

	s.mockVoucherRepo.On("FindVoucherByID", ctx, pending.VoucherID).Return(pending, nil).Once()
	s.mockVoucherRepo.On("UpdateVoucherStatus", ctx, pending.VoucherID, mock.MatchedBy(func(u portsrepo.StatusUpdate) bool {
		return u.Status == domain.StatusRejected && u.ApprovalNotes == "missing receipts"
	})).Return(nil).Once()
	s.mockVoucherRepo.On("FindVoucherByID", ctx, pending.VoucherID).Return(&rejected, nil).Once()

	voucher, err := s.service.RejectVoucher(ctx, pending.VoucherID, "missing receipts", s.userID)

	s.Require().NoError(err)
	s.Equal(domain.StatusRejected, voucher.Status)
	s.Equal("missing receipts", voucher.ApprovalNotes)
}

func (s *VoucherServiceTestSuite) TestCancelVoucher_FromPending() {
	ctx := context.Background()

	pending := s.pendingVoucher()
	cancelled := *pending
	cancelled.Status = domain.StatusCancelled

	s.mockVoucherRepo.On("FindVoucherByID", ctx, pending.VoucherID).Return(pending, nil).Once()
	s.mockVoucherRepo.On("UpdateVoucherStatus", ctx, pending.VoucherID, mock.MatchedBy(func(u portsrepo.StatusUpdate) bool {
		return u.Status == domain.StatusCancelled
	})).Return(nil).Once()
	s.mockVoucherRepo.On("FindVoucherByID", ctx, pending.VoucherID).Return(&cancelled, nil).Once()

	voucher, err := s.service.CancelVoucher(ctx, pending.VoucherID, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.StatusCancelled, voucher.Status)
}

func TestVoucherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}
