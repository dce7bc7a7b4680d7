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
	"github.com/kreasidigital/erp_ledger/internal/middleware"
	"github.com/kreasidigital/erp_ledger/internal/utils/accounting"
)

// ErrAlreadyPosted rejects a second posting attempt for a document that
// already owns journal entries.
var ErrAlreadyPosted = fmt.Errorf("document has already been posted: %w", apperrors.ErrConflict)

// postingService converts postable documents into balanced journal entry
// sets and writes them atomically together with the document status flip
// and the bank reconciliation attachment.
type postingService struct {
	journalRepo  portsrepo.JournalRepositoryWithTx
	accountRepo  portsrepo.AccountRepositoryFacade
	cashBankRepo portsrepo.CashBankRepositoryFacade
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
}

// NewPostingService creates a posting service instance.
func NewPostingService(
	journalRepo portsrepo.JournalRepositoryWithTx,
	accountRepo portsrepo.AccountRepositoryFacade,
	cashBankRepo portsrepo.CashBankRepositoryFacade,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
) *postingService {
	return &postingService{
		journalRepo:  journalRepo,
		accountRepo:  accountRepo,
		cashBankRepo: cashBankRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// entrySpec is one leg of a posting before it becomes a JournalEntry.
type entrySpec struct {
	accountID   string
	side        domain.EntrySide
	amount      decimal.Decimal
	description string
}

// buildEntries materializes specs into journal entries sharing one source,
// date, reference and journal type.
func buildEntries(specs []entrySpec, source domain.SourceRef, date time.Time, reference string, journalType domain.JournalType, branchID *string, userID string, now time.Time) []domain.JournalEntry {
	entries := make([]domain.JournalEntry, 0, len(specs))
	for _, spec := range specs {
		debit, credit := accounting.EntryAmounts(spec.side, spec.amount)
		entries = append(entries, domain.JournalEntry{
			EntryID:     uuid.NewString(),
			AccountID:   spec.accountID,
			Date:        date,
			Reference:   reference,
			Description: spec.description,
			Debit:       debit,
			Credit:      credit,
			JournalType: journalType,
			Source:      source,
			BranchID:    branchID,
			AuditFields: domain.NewAuditFields(userID, now),
		})
	}
	return entries
}

// loadPostingAccounts fetches every referenced account and verifies it
// exists and is active. The map is also handed to the repository so it can
// attach cash/bank legs to their open reconciliation batch.
func (s *postingService) loadPostingAccounts(ctx context.Context, entries []domain.JournalEntry) (map[string]domain.ChartOfAccount, error) {
	seen := make(map[string]struct{}, len(entries))
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.AccountID]; ok {
			continue
		}
		seen[e.AccountID] = struct{}{}
		ids = append(ids, e.AccountID)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts for posting: %w", err)
	}
	for _, id := range ids {
		account, ok := accounts[id]
		if !ok {
			return nil, fmt.Errorf("account %s not found: %w", id, apperrors.ErrValidation)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("account %s (%s) is inactive: %w", account.Code, id, apperrors.ErrValidation)
		}
	}
	return accounts, nil
}

// post runs the shared tail of every posting: duplicate check, account
// load, balance validation and the atomic write. fromStatus is the
// document status read at the start of the posting; the repository only
// flips the row while it still holds that status.
func (s *postingService) post(ctx context.Context, entries []domain.JournalEntry, source domain.SourceRef, fromStatus, nextStatus domain.DocumentStatus, userID string, now time.Time) (*domain.PostingResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	posted, err := s.journalRepo.HasEntriesForSource(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing entries for %s %s: %w", source.Kind, source.ID, err)
	}
	if posted {
		return nil, fmt.Errorf("%s %s: %w", source.Kind, source.ID, ErrAlreadyPosted)
	}

	accounts, err := s.loadPostingAccounts(ctx, entries)
	if err != nil {
		return nil, err
	}

	if err := accounting.ValidateEntriesBalance(entries); err != nil {
		logger.Error("Posting produced unbalanced entries",
			slog.String("source_kind", string(source.Kind)), slog.String("source_id", source.ID),
			slog.String("error", err.Error()))
		return nil, err
	}

	saved, err := s.journalRepo.SavePostedEntries(ctx, entries, accounts, portsrepo.PostedDocument{
		Source:     source,
		FromStatus: fromStatus,
		Status:     nextStatus,
		UpdatedBy:  userID,
		UpdatedAt:  now,
	})
	if err != nil {
		logger.Error("Failed to persist posting",
			slog.String("source_kind", string(source.Kind)), slog.String("source_id", source.ID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to persist posting for %s %s: %w", source.Kind, source.ID, err)
	}

	result := &domain.PostingResult{Source: source, Entries: saved}
	reconSeen := make(map[string]struct{})
	for _, e := range saved {
		result.TotalDebit = result.TotalDebit.Add(e.Debit)
		result.TotalCredit = result.TotalCredit.Add(e.Credit)
		if e.BankReconID != nil {
			if _, ok := reconSeen[*e.BankReconID]; !ok {
				reconSeen[*e.BankReconID] = struct{}{}
				result.ReconciliationIDs = append(result.ReconciliationIDs, *e.BankReconID)
			}
		}
	}

	logger.Info("Document posted",
		slog.String("source_kind", string(source.Kind)), slog.String("source_id", source.ID),
		slog.Int("entries", len(saved)), slog.String("total", result.TotalDebit.String()))
	return result, nil
}

// PostCashBankTransaction posts a cash/bank transaction: the primary
// cash/bank account on the flow side, the offset account or the breakdown
// details on the counter side. Negative detail amounts flip their leg.
func (s *postingService) PostCashBankTransaction(ctx context.Context, transactionID string, userID string) (*domain.PostingResult, error) {
	trx, err := s.cashBankRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	source := domain.SourceRef{Kind: domain.SourceCashBankTransaction, ID: trx.TransactionID}
	nextStatus, err := domain.Transition("cash/bank transaction", trx.Status, domain.ActionPost)
	if err != nil {
		return nil, err
	}

	if !trx.Amount.IsPositive() {
		return nil, fmt.Errorf("transaction amount must be positive: %w", apperrors.ErrValidation)
	}

	mainSide, counterSide := domain.Credit, domain.Debit
	if trx.Type.IsInflow() {
		mainSide, counterSide = domain.Debit, domain.Credit
	}

	specs := []entrySpec{{accountID: trx.AccountID, side: mainSide, amount: trx.Amount, description: trx.Description}}

	switch {
	case len(trx.Details) > 0:
		breakdownTotal := decimal.Zero
		for _, d := range trx.Details {
			breakdownTotal = breakdownTotal.Add(d.Amount)
		}
		if !breakdownTotal.Equal(trx.Amount) {
			return nil, fmt.Errorf("breakdown total %s does not match transaction amount %s: %w",
				breakdownTotal.String(), trx.Amount.String(), apperrors.ErrValidation)
		}
		for _, d := range trx.Details {
			side, amount := counterSide, d.Amount
			if amount.IsNegative() {
				// Negative lines (tax reductions etc.) post on the opposite side.
				side, amount = mainSide, amount.Neg()
			}
			if amount.IsZero() {
				continue
			}
			specs = append(specs, entrySpec{accountID: d.AccountID, side: side, amount: amount, description: d.Description})
		}
	case trx.OffsetID != nil:
		specs = append(specs, entrySpec{accountID: *trx.OffsetID, side: counterSide, amount: trx.Amount, description: trx.Description})
	default:
		return nil, fmt.Errorf("transaction needs an offset account or breakdown details: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	entries := buildEntries(specs, source, trx.Date, trx.Number, domain.JournalCashBank, trx.BranchID, userID, now)
	return s.post(ctx, entries, source, trx.Status, nextStatus, userID, now)
}

// PostCashBankTransfer posts a transfer: credit the source for amount plus
// other costs, debit the destination for the amount and debit the fee
// account for the other costs.
func (s *postingService) PostCashBankTransfer(ctx context.Context, transferID string, userID string) (*domain.PostingResult, error) {
	trf, err := s.cashBankRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		return nil, err
	}

	source := domain.SourceRef{Kind: domain.SourceCashBankTransfer, ID: trf.TransferID}
	nextStatus, err := domain.Transition("cash/bank transfer", trf.Status, domain.ActionPost)
	if err != nil {
		return nil, err
	}

	if !trf.Amount.IsPositive() {
		return nil, fmt.Errorf("transfer amount must be positive: %w", apperrors.ErrValidation)
	}
	if trf.OtherCosts.IsNegative() {
		return nil, fmt.Errorf("transfer other costs cannot be negative: %w", apperrors.ErrValidation)
	}

	specs := []entrySpec{
		{accountID: trf.FromID, side: domain.Credit, amount: trf.Amount.Add(trf.OtherCosts), description: trf.Description},
		{accountID: trf.ToID, side: domain.Debit, amount: trf.Amount, description: trf.Description},
	}
	if trf.OtherCosts.IsPositive() {
		if trf.FeeAccountID == nil {
			return nil, fmt.Errorf("transfer with other costs needs a fee account: %w", apperrors.ErrValidation)
		}
		specs = append(specs, entrySpec{accountID: *trf.FeeAccountID, side: domain.Debit, amount: trf.OtherCosts, description: "Transfer costs"})
	}

	now := time.Now()
	entries := buildEntries(specs, source, trf.Date, trf.Number, domain.JournalTransfer, trf.BranchID, userID, now)
	return s.post(ctx, entries, source, trf.Status, nextStatus, userID, now)
}

// PostInvoice posts a supplier invoice: debit inventory for the tax base,
// debit the tax-input account for the tax when one is configured and
// credit payables for the total.
func (s *postingService) PostInvoice(ctx context.Context, invoiceID string, userID string) (*domain.PostingResult, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	source := domain.SourceRef{Kind: domain.SourceInvoice, ID: invoice.InvoiceID}
	nextStatus, err := domain.Transition("invoice", invoice.Status, domain.ActionPost)
	if err != nil {
		return nil, err
	}

	if !invoice.DPP.Add(invoice.Tax).Equal(invoice.Total) {
		return nil, fmt.Errorf("invoice total %s does not equal DPP %s plus tax %s: %w",
			invoice.Total.String(), invoice.DPP.String(), invoice.Tax.String(), apperrors.ErrValidation)
	}

	// Without a tax-input account the tax stays in the inventory cost.
	inventoryAmount := invoice.DPP
	withTaxLeg := invoice.TaxInputCoaID != nil && invoice.Tax.IsPositive()
	if !withTaxLeg {
		inventoryAmount = invoice.DPP.Add(invoice.Tax)
	}

	specs := []entrySpec{
		{accountID: invoice.InventoryCoaID, side: domain.Debit, amount: inventoryAmount, description: "Inventory from " + invoice.SupplierName},
	}
	if withTaxLeg {
		specs = append(specs, entrySpec{accountID: *invoice.TaxInputCoaID, side: domain.Debit, amount: invoice.Tax, description: "Input tax " + invoice.Number})
	}
	specs = append(specs, entrySpec{accountID: invoice.PayableCoaID, side: domain.Credit, amount: invoice.Total, description: "Payable to " + invoice.SupplierName})

	now := time.Now()
	entries := buildEntries(specs, source, invoice.Date, invoice.Number, domain.JournalPurchase, invoice.BranchID, userID, now)
	return s.post(ctx, entries, source, invoice.Status, nextStatus, userID, now)
}
