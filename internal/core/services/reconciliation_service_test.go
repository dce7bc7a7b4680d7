package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kreasidigital/erp_ledger/internal/apperrors"
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	portssvc "github.com/kreasidigital/erp_ledger/internal/core/ports/services"
	"github.com/kreasidigital/erp_ledger/internal/core/services"
)

type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockReconRepo   *MockReconciliationRepository
	mockJournalRepo *MockJournalRepository
	service         portssvc.ReconciliationSvcFacade

	userID string
}

func (s *ReconciliationServiceTestSuite) SetupTest() {
	s.mockReconRepo = new(MockReconciliationRepository)
	s.mockJournalRepo = new(MockJournalRepository)
	s.service = services.NewReconciliationService(s.mockReconRepo, s.mockJournalRepo)
	s.userID = uuid.NewString()
}

func (s *ReconciliationServiceTestSuite) TestCloseReconciliation_Success() {
	ctx := context.Background()

	recon := &domain.BankReconciliation{
		ReconID:   uuid.NewString(),
		AccountID: uuid.NewString(),
		Status:    domain.ReconOpen,
	}

	s.mockReconRepo.On("FindReconciliationByID", ctx, recon.ReconID).Return(recon, nil).Once()
	s.mockReconRepo.On("CloseReconciliation", ctx, recon.ReconID, s.userID).Return(nil).Once()

	err := s.service.CloseReconciliation(ctx, recon.ReconID, s.userID)

	s.Require().NoError(err)
	s.mockReconRepo.AssertExpectations(s.T())
}

func (s *ReconciliationServiceTestSuite) TestCloseReconciliation_AlreadyClosed() {
	ctx := context.Background()

	now := time.Now()
	recon := &domain.BankReconciliation{
		ReconID:   uuid.NewString(),
		AccountID: uuid.NewString(),
		Status:    domain.ReconClosed,
		ClosedAt:  &now,
	}

	s.mockReconRepo.On("FindReconciliationByID", ctx, recon.ReconID).Return(recon, nil).Once()

	err := s.service.CloseReconciliation(ctx, recon.ReconID, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.Contains(err.Error(), "already closed")
	s.mockReconRepo.AssertNotCalled(s.T(), "CloseReconciliation", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReconciliationServiceTestSuite) TestReopenReconciliation_Success() {
	ctx := context.Background()

	recon := &domain.BankReconciliation{
		ReconID:   uuid.NewString(),
		AccountID: uuid.NewString(),
		Status:    domain.ReconClosed,
	}

	s.mockReconRepo.On("FindReconciliationByID", ctx, recon.ReconID).Return(recon, nil).Once()
	s.mockReconRepo.On("FindOpenByAccount", ctx, recon.AccountID).Return(nil, apperrors.NewNotFoundError("no open reconciliation")).Once()
	s.mockReconRepo.On("ReopenReconciliation", ctx, recon.ReconID, s.userID).Return(nil).Once()

	err := s.service.ReopenReconciliation(ctx, recon.ReconID, s.userID)

	s.Require().NoError(err)
	s.mockReconRepo.AssertExpectations(s.T())
}

func (s *ReconciliationServiceTestSuite) TestReopenReconciliation_BlockedByOpenBatch() {
	ctx := context.Background()

	accountID := uuid.NewString()
	closed := &domain.BankReconciliation{ReconID: uuid.NewString(), AccountID: accountID, Status: domain.ReconClosed}
	open := &domain.BankReconciliation{ReconID: uuid.NewString(), AccountID: accountID, Status: domain.ReconOpen}

	s.mockReconRepo.On("FindReconciliationByID", ctx, closed.ReconID).Return(closed, nil).Once()
	s.mockReconRepo.On("FindOpenByAccount", ctx, accountID).Return(open, nil).Once()

	err := s.service.ReopenReconciliation(ctx, closed.ReconID, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.Contains(err.Error(), "already has open reconciliation")
	s.mockReconRepo.AssertNotCalled(s.T(), "ReopenReconciliation", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReconciliationServiceTestSuite) TestReopenReconciliation_AlreadyOpen() {
	ctx := context.Background()

	recon := &domain.BankReconciliation{
		ReconID:   uuid.NewString(),
		AccountID: uuid.NewString(),
		Status:    domain.ReconOpen,
	}

	s.mockReconRepo.On("FindReconciliationByID", ctx, recon.ReconID).Return(recon, nil).Once()

	err := s.service.ReopenReconciliation(ctx, recon.ReconID, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *ReconciliationServiceTestSuite) TestListReconciliationEntries_UnknownBatch() {
	ctx := context.Background()

	reconID := uuid.NewString()
	s.mockReconRepo.On("FindReconciliationByID", ctx, reconID).Return(nil, apperrors.NewNotFoundError("reconciliation not found")).Once()

	_, err := s.service.ListReconciliationEntries(ctx, reconID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockJournalRepo.AssertNotCalled(s.T(), "ListEntriesByReconciliation", mock.Anything, mock.Anything)
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
