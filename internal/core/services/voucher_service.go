package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kreasidigital/erp_ledger/internal/apperrors"
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	portsrepo "github.com/kreasidigital/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/kreasidigital/erp_ledger/internal/core/ports/services"
	"github.com/kreasidigital/erp_ledger/internal/dto"
	"github.com/kreasidigital/erp_ledger/internal/middleware"
)

// voucherService drives the voucher request approval workflow. Approval
// can optionally create a cash/bank transaction from the voucher and post
// it in the same call; a voucher backs at most one transaction.
type voucherService struct {
	voucherRepo portsrepo.VoucherRepositoryFacade
	cashBankSvc portssvc.CashBankSvcFacade
	postingSvc  portssvc.PostingSvcFacade
	sequenceSvc portssvc.SequenceSvcFacade
}

// NewVoucherService creates a voucher service instance.
func NewVoucherService(
	voucherRepo portsrepo.VoucherRepositoryFacade,
	cashBankSvc portssvc.CashBankSvcFacade,
	postingSvc portssvc.PostingSvcFacade,
	sequenceSvc portssvc.SequenceSvcFacade,
) *voucherService {
	return &voucherService{
		voucherRepo: voucherRepo,
		cashBankSvc: cashBankSvc,
		postingSvc:  postingSvc,
		sequenceSvc: sequenceSvc,
	}
}

// CreateVoucher creates a draft voucher with a VR-YYYYMMDD-NNNN number.
func (s *voucherService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, creatorUserID string) (*domain.VoucherRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("voucher amount must be positive: %w", apperrors.ErrValidation)
	}

	number, err := s.sequenceSvc.NextNumber(ctx, PrefixVoucher, req.VoucherDate)
	if err != nil {
		return nil, err
	}

	voucher := domain.VoucherRequest{
		VoucherID:     uuid.NewString(),
		VoucherNumber: number,
		VoucherDate:   req.VoucherDate,
		Amount:        req.Amount,
		RelatedParty:  req.RelatedParty,
		Description:   req.Description,
		Status:        domain.StatusDraft,
		BranchID:      req.BranchID,
		AuditFields:   domain.NewAuditFields(creatorUserID, time.Now()),
	}

	if err := s.voucherRepo.SaveVoucher(ctx, voucher); err != nil {
		logger.Error("Failed to save voucher", slog.String("number", number), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save voucher %s: %w", number, err)
	}

	logger.Info("Voucher created", slog.String("voucher_id", voucher.VoucherID), slog.String("number", number))
	return &voucher, nil
}

func (s *voucherService) GetVoucher(ctx context.Context, voucherID string) (*domain.VoucherRequest, error) {
	return s.voucherRepo.FindVoucherByID(ctx, voucherID)
}

func (s *voucherService) ListVouchers(ctx context.Context, limit, offset int) ([]domain.VoucherRequest, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.voucherRepo.ListVouchers(ctx, limit, offset)
}

// transition resolves and persists a workflow step, then returns the
// refreshed voucher.
func (s *voucherService) transition(ctx context.Context, voucherID string, action domain.ApprovalAction, update portsrepo.StatusUpdate) (*domain.VoucherRequest, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}

	next, err := domain.Transition("voucher", voucher.Status, action)
	if err != nil {
		return nil, err
	}
	update.Status = next

	if err := s.voucherRepo.UpdateVoucherStatus(ctx, voucherID, update); err != nil {
		return nil, fmt.Errorf("failed to update voucher %s status: %w", voucherID, err)
	}
	return s.voucherRepo.FindVoucherByID(ctx, voucherID)
}

func (s *voucherService) SubmitVoucher(ctx context.Context, voucherID string, userID string) (*domain.VoucherRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	voucher, err := s.transition(ctx, voucherID, domain.ActionSubmit, portsrepo.StatusUpdate{
		UpdatedBy: userID,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Voucher submitted", slog.String("voucher_id", voucherID))
	return voucher, nil
}

// ApproveVoucher moves a pending voucher to approved. When the request
// asks for it, a cash/bank transaction is created from the voucher and
// linked both ways in one database write; a voucher that already backs a
// transaction is rejected. AutoPost additionally posts the created
// transaction.
func (s *voucherService) ApproveVoucher(ctx context.Context, voucherID string, req dto.ApproveVoucherRequest, userID string) (*domain.VoucherRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	// Auto-transaction inputs are checked before the status flip; a
	// rejected request leaves the voucher pending.
	if req.AutoCreateTransaction {
		if req.AccountID == nil || req.OffsetID == nil || req.TransactionType == "" {
			return nil, fmt.Errorf("auto transaction needs a type, account and offset account: %w", apperrors.ErrValidation)
		}
		count, err := s.voucherRepo.CountTransactionsForVoucher(ctx, voucherID)
		if err != nil {
			return nil, fmt.Errorf("failed to count transactions for voucher %s: %w", voucherID, err)
		}
		if count > 0 {
			return nil, fmt.Errorf("voucher %s already backs a transaction: %w", voucherID, apperrors.ErrConflict)
		}
	}

	voucher, err := s.transition(ctx, voucherID, domain.ActionApprove, portsrepo.StatusUpdate{
		ApprovedBy:    &userID,
		ApprovedAt:    &now,
		ApprovalNotes: req.ApprovalNotes,
		UpdatedBy:     userID,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Voucher approved", slog.String("voucher_id", voucherID), slog.String("approved_by", userID))

	if !req.AutoCreateTransaction {
		return voucher, nil
	}

	description := voucher.Description
	if description == "" {
		description = strings.TrimSpace("Payment to " + voucher.RelatedParty)
	}
	trx, err := s.cashBankSvc.CreateTransaction(ctx, dto.CreateCashBankTransactionRequest{
		Date:        voucher.VoucherDate,
		Type:        req.TransactionType,
		Amount:      voucher.Amount,
		Description: description,
		AccountID:   *req.AccountID,
		OffsetID:    req.OffsetID,
		BranchID:    voucher.BranchID,
	}, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction for voucher %s: %w", voucher.VoucherNumber, err)
	}

	if err := s.voucherRepo.LinkVoucherTransaction(ctx, voucherID, trx.TransactionID, userID, now); err != nil {
		return nil, fmt.Errorf("failed to link voucher %s to transaction %s: %w", voucherID, trx.TransactionID, err)
	}
	logger.Info("Transaction created from voucher",
		slog.String("voucher_id", voucherID), slog.String("transaction_id", trx.TransactionID))

	if req.AutoPost {
		if _, err := s.postingSvc.PostCashBankTransaction(ctx, trx.TransactionID, userID); err != nil {
			return nil, fmt.Errorf("failed to post transaction %s for voucher %s: %w", trx.TransactionID, voucherID, err)
		}
	}

	return s.voucherRepo.FindVoucherByID(ctx, voucherID)
}

// RejectVoucher moves a pending voucher to rejected. The reason is
// mandatory and stored as the approval notes.
func (s *voucherService) RejectVoucher(ctx context.Context, voucherID string, reason string, userID string) (*domain.VoucherRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("rejection reason is required: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	voucher, err := s.transition(ctx, voucherID, domain.ActionReject, portsrepo.StatusUpdate{
		ApprovedBy:    &userID,
		ApprovedAt:    &now,
		ApprovalNotes: reason,
		UpdatedBy:     userID,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Voucher rejected", slog.String("voucher_id", voucherID), slog.String("rejected_by", userID))
	return voucher, nil
}

func (s *voucherService) CancelVoucher(ctx context.Context, voucherID string, userID string) (*domain.VoucherRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	voucher, err := s.transition(ctx, voucherID, domain.ActionCancel, portsrepo.StatusUpdate{
		UpdatedBy: userID,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Voucher cancelled", slog.String("voucher_id", voucherID))
	return voucher, nil
}
