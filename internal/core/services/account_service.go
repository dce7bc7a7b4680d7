package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kreasidigital/erp_ledger/internal/apperrors"
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	portsrepo "github.com/kreasidigital/erp_ledger/internal/core/ports/repositories"
	"github.com/kreasidigital/erp_ledger/internal/dto"
	"github.com/kreasidigital/erp_ledger/internal/middleware"
)

// accountService implements chart-of-accounts operations.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates an account service instance.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) *accountService {
	return &accountService{accountRepo: accountRepo}
}

// CreateAccount registers a new ledger account. Codes are unique; the
// parent, when given, must already exist.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.ChartOfAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.accountRepo.FindAccountByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check account code uniqueness", slog.String("code", req.Code), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check account code %s: %w", req.Code, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("account code %s already exists: %w", req.Code, apperrors.ErrDuplicate)
	}

	if req.ParentID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, *req.ParentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("parent account %s not found: %w", *req.ParentID, apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to load parent account %s: %w", *req.ParentID, err)
		}
	}

	account := domain.ChartOfAccount{
		AccountID:   uuid.NewString(),
		Code:        req.Code,
		Name:        req.Name,
		Type:        domain.AccountType(req.Type),
		ParentID:    req.ParentID,
		IsCurrent:   req.IsCurrent,
		IsCashBank:  req.IsCashBank,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(creatorUserID, time.Now()),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("code", req.Code), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save account %s: %w", req.Code, err)
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.ChartOfAccount, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.ChartOfAccount, error) {
	return s.accountRepo.FindAccountByCode(ctx, code)
}

func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.ChartOfAccount, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
}

func (s *accountService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.ChartOfAccount, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

// DeactivateAccount soft-deletes an account. Historical journal entries
// keep referencing it; it only stops accepting new postings.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	account.IsActive = false
	account.LastUpdatedBy = userID
	account.LastUpdatedAt = time.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to deactivate account", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID))
	return nil
}
