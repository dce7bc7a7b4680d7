package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kreasidigital/erp_ledger/internal/apperrors"
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	portsrepo "github.com/kreasidigital/erp_ledger/internal/core/ports/repositories"
	"github.com/kreasidigital/erp_ledger/internal/models"
	"github.com/kreasidigital/erp_ledger/internal/utils/mapping"
)

type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

const entryColumns = `entry_id, account_id, date, reference, description, debit, credit,
	       journal_type, source_kind, source_id, branch_id, bank_recon_id,
	       created_at, created_by, last_updated_at, last_updated_by`

// sourceTables resolves each document kind to its table and primary key
// column. Posting flips the row's status inside the same transaction that
// writes the entries; an unknown kind is a programming error.
var sourceTables = map[domain.SourceKind]struct {
	table string
	idCol string
}{
	domain.SourceCashBankTransaction: {"cash_bank_transactions", "transaction_id"},
	domain.SourceCashBankTransfer:    {"cash_bank_transfers", "transfer_id"},
	domain.SourceOrderRequest:        {"order_requests", "request_id"},
	domain.SourcePurchaseOrder:       {"purchase_orders", "order_id"},
	domain.SourcePurchaseReceipt:     {"purchase_receipts", "receipt_id"},
	domain.SourceInvoice:             {"invoices", "invoice_id"},
	domain.SourceVoucherRequest:      {"voucher_requests", "voucher_id"},
}

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.AccountID,
		&m.Date,
		&m.Reference,
		&m.Description,
		&m.Debit,
		&m.Credit,
		&m.JournalType,
		&m.SourceKind,
		&m.SourceID,
		&m.BranchID,
		&m.BankReconID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePostedEntries writes a balanced entry set, attaches cash/bank legs
// to their open reconciliation batch (creating one if needed) and flips
// the source document to its next status, all in one database
// transaction. The returned entries carry the assigned batch ids.
func (r *PgxJournalRepository) SavePostedEntries(ctx context.Context, entries []domain.JournalEntry, accounts map[string]domain.ChartOfAccount, doc portsrepo.PostedDocument) ([]domain.JournalEntry, error) {
	target, ok := sourceTables[doc.Source.Kind]
	if !ok {
		return nil, apperrors.NewAppError(500, "unknown source kind "+string(doc.Source.Kind), apperrors.ErrInternal)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// Resolve an open reconciliation batch per cash/bank account touched
	// by this posting.
	reconByAccount := make(map[string]string)
	for _, e := range entries {
		account, found := accounts[e.AccountID]
		if !found || !account.IsCashBank {
			continue
		}
		if _, done := reconByAccount[e.AccountID]; done {
			continue
		}
		reconID, err := findOrCreateOpenReconciliation(ctx, tx, e.AccountID, doc.UpdatedBy, doc.UpdatedAt)
		if err != nil {
			return nil, err
		}
		reconByAccount[e.AccountID] = reconID
	}

	saved := make([]domain.JournalEntry, len(entries))
	batch := &pgx.Batch{}
	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	for i, e := range entries {
		if reconID, found := reconByAccount[e.AccountID]; found {
			id := reconID
			e.BankReconID = &id
		}
		saved[i] = e

		m := mapping.ToModelJournalEntry(e)
		batch.Queue(entryQuery,
			m.EntryID,
			m.AccountID,
			m.Date,
			m.Reference,
			m.Description,
			m.Debit,
			m.Credit,
			m.JournalType,
			m.SourceKind,
			m.SourceID,
			m.BranchID,
			m.BankReconID,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert journal entries for "+doc.Source.ID, err)
	}

	// Guarded on the status the caller observed: a concurrent posting
	// that already flipped the row makes this affect zero rows, and the
	// whole transaction, entries included, rolls back.
	statusQuery := `
		UPDATE ` + target.table + `
		SET status = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE ` + target.idCol + ` = $1 AND status = $5;
	`
	cmdTag, err := tx.Exec(ctx, statusQuery, doc.Source.ID, string(doc.Status), doc.UpdatedAt, doc.UpdatedBy, string(doc.FromStatus))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update status of "+string(doc.Source.Kind)+" "+doc.Source.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.NewAppError(409,
			string(doc.Source.Kind)+" "+doc.Source.ID+" is no longer "+string(doc.FromStatus),
			apperrors.ErrConflict)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return saved, nil
}

// findOrCreateOpenReconciliation locks the account's open batch or
// creates one. The row lock serializes concurrent postings against the
// same account; the partial unique index backstops a race on insert.
func findOrCreateOpenReconciliation(ctx context.Context, tx pgx.Tx, accountID, userID string, now time.Time) (string, error) {
	var reconID string
	err := tx.QueryRow(ctx, `
		SELECT recon_id FROM bank_reconciliations
		WHERE account_id = $1 AND status = 'open'
		FOR UPDATE;
	`, accountID).Scan(&reconID)
	if err == nil {
		return reconID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", apperrors.NewAppError(500, "failed to find open reconciliation for account "+accountID, err)
	}

	reconID = uuid.NewString()
	_, err = tx.Exec(ctx, `
		INSERT INTO bank_reconciliations (recon_id, account_id, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, 'open', $3, $4, $3, $4);
	`, reconID, accountID, now, userID)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to create reconciliation for account "+accountID, err)
	}
	return reconID, nil
}

func (r *PgxJournalRepository) FindEntriesBySource(ctx context.Context, source domain.SourceRef) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE source_kind = $1 AND source_id = $2
		ORDER BY debit DESC, account_id;
	`
	rows, err := r.Pool.Query(ctx, query, string(source.Kind), source.ID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries for "+string(source.Kind)+" "+source.ID, err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (r *PgxJournalRepository) HasEntriesForSource(ctx context.Context, source domain.SourceRef) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM journal_entries WHERE source_kind = $1 AND source_id = $2);
	`, string(source.Kind), source.ID).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check entries for "+string(source.Kind)+" "+source.ID, err)
	}
	return exists, nil
}

func (r *PgxJournalRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE account_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries for account "+accountID, err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (r *PgxJournalRepository) ListEntriesByReconciliation(ctx context.Context, reconID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE bank_recon_id = $1
		ORDER BY date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, reconID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries for reconciliation "+reconID, err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]domain.JournalEntry, error) {
	modelEntries := []models.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}
	return mapping.ToDomainJournalEntrySlice(modelEntries), nil
}
