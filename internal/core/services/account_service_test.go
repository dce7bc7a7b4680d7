package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kreasidigital/erp_ledger/internal/apperrors"
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	portssvc "github.com/kreasidigital/erp_ledger/internal/core/ports/services"
	"github.com/kreasidigital/erp_ledger/internal/core/services"
	"github.com/kreasidigital/erp_ledger/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade

	userID string
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockAccountRepo = new(MockAccountRepository)
	s.service = services.NewAccountService(s.mockAccountRepo)
	s.userID = uuid.NewString()
}

func (s *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()

	req := dto.CreateAccountRequest{
		Code:       "1110.01",
		Name:       "Petty Cash",
		Type:       "ASSET",
		IsCurrent:  true,
		IsCashBank: true,
	}

	s.mockAccountRepo.On("FindAccountByCode", ctx, req.Code).Return(nil, apperrors.NewNotFoundError("account not found")).Once()
	s.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.ChartOfAccount")).Return(nil).Once()

	account, err := s.service.CreateAccount(ctx, req, s.userID)

	s.Require().NoError(err)
	s.NotEmpty(account.AccountID)
	s.Equal(domain.Asset, account.Type)
	s.True(account.IsActive)
	s.True(account.IsCashBank)
	s.Equal(s.userID, account.CreatedBy)
	s.mockAccountRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()

	existing := &domain.ChartOfAccount{AccountID: uuid.NewString(), Code: "1110.01"}
	s.mockAccountRepo.On("FindAccountByCode", ctx, "1110.01").Return(existing, nil).Once()

	_, err := s.service.CreateAccount(ctx, dto.CreateAccountRequest{
		Code: "1110.01",
		Name: "Petty Cash",
		Type: "ASSET",
	}, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.mockAccountRepo.AssertNotCalled(s.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestCreateAccount_MissingParent() {
	ctx := context.Background()

	parentID := uuid.NewString()
	s.mockAccountRepo.On("FindAccountByCode", ctx, "1110.02").Return(nil, apperrors.NewNotFoundError("account not found")).Once()
	s.mockAccountRepo.On("FindAccountByID", ctx, parentID).Return(nil, apperrors.NewNotFoundError("account not found")).Once()

	_, err := s.service.CreateAccount(ctx, dto.CreateAccountRequest{
		Code:     "1110.02",
		Name:     "Cash Register 2",
		Type:     "ASSET",
		ParentID: &parentID,
	}, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "parent account")
}

func (s *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()

	account := &domain.ChartOfAccount{AccountID: uuid.NewString(), Code: "1110.01", IsActive: true}

	s.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	s.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.ChartOfAccount) bool {
		return !a.IsActive && a.LastUpdatedBy == s.userID
	})).Return(nil).Once()

	err := s.service.DeactivateAccount(ctx, account.AccountID, s.userID)

	s.Require().NoError(err)
	s.mockAccountRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestListAccounts_DefaultsLimit() {
	ctx := context.Background()

	s.mockAccountRepo.On("ListAccounts", ctx, 50, 0).Return([]domain.ChartOfAccount{}, nil).Once()

	_, err := s.service.ListAccounts(ctx, 0, -5)

	s.Require().NoError(err)
	s.mockAccountRepo.AssertExpectations(s.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
