package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kreasidigital/erp_ledger/internal/apperrors"
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	portsrepo "github.com/kreasidigital/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/kreasidigital/erp_ledger/internal/core/ports/services"
	"github.com/kreasidigital/erp_ledger/internal/dto"
	"github.com/kreasidigital/erp_ledger/internal/middleware"
)

// cashBankService creates cash/bank documents. It validates account roles
// at creation time so posting failures surface early.
type cashBankService struct {
	cashBankRepo portsrepo.CashBankRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	sequenceSvc  portssvc.SequenceSvcFacade
}

// NewCashBankService creates a cash/bank service instance.
func NewCashBankService(
	cashBankRepo portsrepo.CashBankRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	sequenceSvc portssvc.SequenceSvcFacade,
) *cashBankService {
	return &cashBankService{cashBankRepo: cashBankRepo, accountRepo: accountRepo, sequenceSvc: sequenceSvc}
}

// requireCashBankAccount loads an account and verifies it is an active
// cash/bank account.
func (s *cashBankService) requireCashBankAccount(ctx context.Context, accountID string) (*domain.ChartOfAccount, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("account %s is inactive: %w", account.Code, apperrors.ErrValidation)
	}
	if !account.IsCashBank {
		return nil, fmt.Errorf("account %s is not a cash/bank account: %w", account.Code, apperrors.ErrValidation)
	}
	return account, nil
}

// CreateTransaction creates a draft cash/bank transaction. The breakdown
// details, when given, must sum to the declared amount.
func (s *cashBankService) CreateTransaction(ctx context.Context, req dto.CreateCashBankTransactionRequest, creatorUserID string) (*domain.CashBankTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("transaction amount must be positive: %w", apperrors.ErrValidation)
	}
	if req.OffsetID == nil && len(req.Details) == 0 {
		return nil, fmt.Errorf("transaction needs an offset account or breakdown details: %w", apperrors.ErrValidation)
	}
	if req.OffsetID != nil && len(req.Details) > 0 {
		return nil, fmt.Errorf("transaction cannot have both an offset account and breakdown details: %w", apperrors.ErrValidation)
	}

	if _, err := s.requireCashBankAccount(ctx, req.AccountID); err != nil {
		return nil, err
	}

	transactionID := uuid.NewString()
	details := make([]domain.CashBankTransactionDetail, 0, len(req.Details))
	if len(req.Details) > 0 {
		breakdownTotal := decimal.Zero
		for _, d := range req.Details {
			breakdownTotal = breakdownTotal.Add(d.Amount)
			details = append(details, domain.CashBankTransactionDetail{
				DetailID:      uuid.NewString(),
				TransactionID: transactionID,
				AccountID:     d.AccountID,
				Amount:        d.Amount,
				Description:   d.Description,
			})
		}
		if !breakdownTotal.Equal(req.Amount) {
			return nil, fmt.Errorf("breakdown total %s does not match transaction amount %s: %w",
				breakdownTotal.String(), req.Amount.String(), apperrors.ErrValidation)
		}
	}

	number, err := s.sequenceSvc.NextNumber(ctx, PrefixCashBank, req.Date)
	if err != nil {
		return nil, err
	}

	trx := domain.CashBankTransaction{
		TransactionID: transactionID,
		Number:        number,
		Date:          req.Date,
		Type:          domain.CashBankTransactionType(req.Type),
		Amount:        req.Amount,
		Description:   req.Description,
		AccountID:     req.AccountID,
		OffsetID:      req.OffsetID,
		BranchID:      req.BranchID,
		Status:        domain.StatusDraft,
		Details:       details,
		AuditFields:   domain.NewAuditFields(creatorUserID, time.Now()),
	}

	if err := s.cashBankRepo.SaveTransaction(ctx, trx); err != nil {
		logger.Error("Failed to save cash/bank transaction", slog.String("number", number), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transaction %s: %w", number, err)
	}

	logger.Info("Cash/bank transaction created", slog.String("transaction_id", transactionID), slog.String("number", number))
	return &trx, nil
}

func (s *cashBankService) GetTransaction(ctx context.Context, transactionID string) (*domain.CashBankTransaction, error) {
	return s.cashBankRepo.FindTransactionByID(ctx, transactionID)
}

func (s *cashBankService) ListTransactions(ctx context.Context, limit, offset int) ([]domain.CashBankTransaction, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.cashBankRepo.ListTransactions(ctx, limit, offset)
}

// CreateTransfer creates a draft transfer between two cash/bank accounts.
func (s *cashBankService) CreateTransfer(ctx context.Context, req dto.CreateCashBankTransferRequest, creatorUserID string) (*domain.CashBankTransfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("transfer amount must be positive: %w", apperrors.ErrValidation)
	}
	if req.OtherCosts.IsNegative() {
		return nil, fmt.Errorf("transfer other costs cannot be negative: %w", apperrors.ErrValidation)
	}
	if req.FromID == req.ToID {
		return nil, fmt.Errorf("transfer source and destination must differ: %w", apperrors.ErrValidation)
	}
	if req.OtherCosts.IsPositive() && req.FeeAccountID == nil {
		return nil, fmt.Errorf("transfer with other costs needs a fee account: %w", apperrors.ErrValidation)
	}

	if _, err := s.requireCashBankAccount(ctx, req.FromID); err != nil {
		return nil, err
	}
	if _, err := s.requireCashBankAccount(ctx, req.ToID); err != nil {
		return nil, err
	}

	number, err := s.sequenceSvc.NextNumber(ctx, PrefixTransfer, req.Date)
	if err != nil {
		return nil, err
	}

	trf := domain.CashBankTransfer{
		TransferID:   uuid.NewString(),
		Number:       number,
		Date:         req.Date,
		Amount:       req.Amount,
		OtherCosts:   req.OtherCosts,
		FromID:       req.FromID,
		ToID:         req.ToID,
		FeeAccountID: req.FeeAccountID,
		Description:  req.Description,
		BranchID:     req.BranchID,
		Status:       domain.StatusDraft,
		AuditFields:  domain.NewAuditFields(creatorUserID, time.Now()),
	}

	if err := s.cashBankRepo.SaveTransfer(ctx, trf); err != nil {
		logger.Error("Failed to save cash/bank transfer", slog.String("number", number), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transfer %s: %w", number, err)
	}

	logger.Info("Cash/bank transfer created", slog.String("transfer_id", trf.TransferID), slog.String("number", number))
	return &trf, nil
}

func (s *cashBankService) GetTransfer(ctx context.Context, transferID string) (*domain.CashBankTransfer, error) {
	return s.cashBankRepo.FindTransferByID(ctx, transferID)
}
