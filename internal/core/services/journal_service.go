package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kreasidigital/erp_ledger/internal/apperrors"
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	portsrepo "github.com/kreasidigital/erp_ledger/internal/core/ports/repositories"
	"github.com/kreasidigital/erp_ledger/internal/middleware"
)

// journalService exposes read access to the posted ledger.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewJournalService creates a journal service instance.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade) *journalService {
	return &journalService{journalRepo: journalRepo}
}

func (s *journalService) GetEntriesBySource(ctx context.Context, source domain.SourceRef) ([]domain.JournalEntry, error) {
	return s.journalRepo.FindEntriesBySource(ctx, source)
}

func (s *journalService) ListEntriesByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.journalRepo.ListEntriesByAccount(ctx, accountID, limit, offset)
}

// reconciliationService manages bank reconciliation batches. Batches are
// created implicitly by the posting path; this service only reads, closes
// and reopens them.
type reconciliationService struct {
	reconRepo   portsrepo.ReconciliationRepositoryFacade
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewReconciliationService creates a reconciliation service instance.
func NewReconciliationService(
	reconRepo portsrepo.ReconciliationRepositoryFacade,
	journalRepo portsrepo.JournalRepositoryFacade,
) *reconciliationService {
	return &reconciliationService{reconRepo: reconRepo, journalRepo: journalRepo}
}

func (s *reconciliationService) GetReconciliation(ctx context.Context, reconID string) (*domain.BankReconciliation, error) {
	return s.reconRepo.FindReconciliationByID(ctx, reconID)
}

func (s *reconciliationService) ListReconciliations(ctx context.Context, accountID string) ([]domain.BankReconciliation, error) {
	return s.reconRepo.ListReconciliations(ctx, accountID)
}

func (s *reconciliationService) ListReconciliationEntries(ctx context.Context, reconID string) ([]domain.JournalEntry, error) {
	if _, err := s.reconRepo.FindReconciliationByID(ctx, reconID); err != nil {
		return nil, err
	}
	return s.journalRepo.ListEntriesByReconciliation(ctx, reconID)
}

// CloseReconciliation closes an open batch. Subsequent postings against
// the same account start a fresh batch.
func (s *reconciliationService) CloseReconciliation(ctx context.Context, reconID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	recon, err := s.reconRepo.FindReconciliationByID(ctx, reconID)
	if err != nil {
		return err
	}
	if recon.Status == domain.ReconClosed {
		return fmt.Errorf("reconciliation %s is already closed: %w", reconID, apperrors.ErrConflict)
	}

	if err := s.reconRepo.CloseReconciliation(ctx, reconID, userID); err != nil {
		logger.Error("Failed to close reconciliation", slog.String("recon_id", reconID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to close reconciliation %s: %w", reconID, err)
	}

	logger.Info("Reconciliation closed", slog.String("recon_id", reconID), slog.String("account_id", recon.AccountID))
	return nil
}

// ReopenReconciliation reopens a closed batch. Only one open batch may
// exist per account, so reopening fails while another one is open.
func (s *reconciliationService) ReopenReconciliation(ctx context.Context, reconID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	recon, err := s.reconRepo.FindReconciliationByID(ctx, reconID)
	if err != nil {
		return err
	}
	if recon.Status == domain.ReconOpen {
		return fmt.Errorf("reconciliation %s is already open: %w", reconID, apperrors.ErrConflict)
	}

	open, err := s.reconRepo.FindOpenByAccount(ctx, recon.AccountID)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to check open reconciliation for account %s: %w", recon.AccountID, err)
	}
	if open != nil {
		return fmt.Errorf("account %s already has open reconciliation %s: %w", recon.AccountID, open.ReconID, apperrors.ErrConflict)
	}

	if err := s.reconRepo.ReopenReconciliation(ctx, reconID, userID); err != nil {
		logger.Error("Failed to reopen reconciliation", slog.String("recon_id", reconID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to reopen reconciliation %s: %w", reconID, err)
	}

	logger.Info("Reconciliation reopened", slog.String("recon_id", reconID), slog.String("account_id", recon.AccountID))
	return nil
}
