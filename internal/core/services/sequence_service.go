package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/kreasidigital/erp_ledger/internal/core/ports/repositories"
	"github.com/kreasidigital/erp_ledger/internal/middleware"
)

// Document number prefixes, one per sequence family.
const (
	PrefixVoucher         = "VR"
	PrefixCashBank        = "CB"
	PrefixTransfer        = "TF"
	PrefixOrderRequest    = "OR"
	PrefixPurchaseOrder   = "PO"
	PrefixPurchaseReceipt = "GR"
	PrefixInvoice         = "INV"
)

// sequenceService issues gapless per-day document numbers backed by a
// counter row per (prefix, period). The repository serializes concurrent
// callers, so two documents never share a number.
type sequenceService struct {
	sequenceRepo portsrepo.SequenceRepositoryFacade
}

// NewSequenceService creates a sequence service instance.
func NewSequenceService(sequenceRepo portsrepo.SequenceRepositoryFacade) *sequenceService {
	return &sequenceService{sequenceRepo: sequenceRepo}
}

// NextNumber returns the next number of the form <PREFIX>-<YYYYMMDD>-<NNNN>.
// The counter restarts at 1 for each new calendar day.
func (s *sequenceService) NextNumber(ctx context.Context, prefix string, date time.Time) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	period := date.Format("20060102")
	value, err := s.sequenceRepo.NextValue(ctx, prefix, period)
	if err != nil {
		logger.Error("Failed to advance document sequence",
			slog.String("prefix", prefix), slog.String("period", period), slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to advance sequence %s/%s: %w", prefix, period, err)
	}

	return fmt.Sprintf("%s-%s-%04d", prefix, period, value), nil
}
