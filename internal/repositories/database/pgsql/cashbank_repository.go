package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kreasidigital/erp_ledger/internal/apperrors"
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	portsrepo "github.com/kreasidigital/erp_ledger/internal/core/ports/repositories"
	"github.com/kreasidigital/erp_ledger/internal/models"
	"github.com/kreasidigital/erp_ledger/internal/utils/mapping"
)

type PgxCashBankRepository struct {
	BaseRepository
}

func newPgxCashBankRepository(pool *pgxpool.Pool) portsrepo.CashBankRepositoryFacade {
	return &PgxCashBankRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CashBankRepositoryFacade = (*PgxCashBankRepository)(nil)

const transactionColumns = `transaction_id, number, date, type, amount, description, account_id,
	       offset_id, branch_id, status, voucher_id,
	       created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.CashBankTransaction, error) {
	var m models.CashBankTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.Number,
		&m.Date,
		&m.Type,
		&m.Amount,
		&m.Description,
		&m.AccountID,
		&m.OffsetID,
		&m.BranchID,
		&m.Status,
		&m.VoucherID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransaction inserts a transaction and its breakdown details in one
// database transaction.
func (r *PgxCashBankRepository) SaveTransaction(ctx context.Context, trx domain.CashBankTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelCashBankTransaction(trx)
	query := `
		INSERT INTO cash_bank_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, query,
		m.TransactionID,
		m.Number,
		m.Date,
		m.Type,
		m.Amount,
		m.Description,
		m.AccountID,
		m.OffsetID,
		m.BranchID,
		m.Status,
		m.VoucherID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}

	if len(trx.Details) > 0 {
		batch := &pgx.Batch{}
		detailQuery := `
			INSERT INTO cash_bank_transaction_details (detail_id, transaction_id, account_id, amount, description)
			VALUES ($1, $2, $3, $4, $5);
		`
		for _, d := range trx.Details {
			batch.Queue(detailQuery, d.DetailID, d.TransactionID, d.AccountID, d.Amount, d.Description)
		}
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to insert details for transaction "+m.TransactionID, err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxCashBankRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.CashBankTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM cash_bank_transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction " + transactionID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction "+transactionID, err)
	}

	details, err := r.findTransactionDetails(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	trx := mapping.ToDomainCashBankTransaction(m, details)
	return &trx, nil
}

func (r *PgxCashBankRepository) findTransactionDetails(ctx context.Context, transactionID string) ([]models.CashBankTransactionDetail, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT detail_id, transaction_id, account_id, amount, description
		FROM cash_bank_transaction_details
		WHERE transaction_id = $1
		ORDER BY detail_id;
	`, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query details for transaction "+transactionID, err)
	}
	defer rows.Close()

	details := []models.CashBankTransactionDetail{}
	for rows.Next() {
		var d models.CashBankTransactionDetail
		if err := rows.Scan(&d.DetailID, &d.TransactionID, &d.AccountID, &d.Amount, &d.Description); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan detail row for transaction "+transactionID, err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating detail rows for transaction "+transactionID, err)
	}
	return details, nil
}

func (r *PgxCashBankRepository) ListTransactions(ctx context.Context, limit, offset int) ([]domain.CashBankTransaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM cash_bank_transactions
		ORDER BY date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	transactions := []domain.CashBankTransaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		// Detail rows are loaded on demand via FindTransactionByID.
		transactions = append(transactions, mapping.ToDomainCashBankTransaction(m, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}
	return transactions, nil
}

const transferColumns = `transfer_id, number, date, amount, other_costs, from_id, to_id,
	       fee_account_id, description, branch_id, status,
	       created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxCashBankRepository) SaveTransfer(ctx context.Context, trf domain.CashBankTransfer) error {
	m := mapping.ToModelCashBankTransfer(trf)
	query := `
		INSERT INTO cash_bank_transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransferID,
		m.Number,
		m.Date,
		m.Amount,
		m.OtherCosts,
		m.FromID,
		m.ToID,
		m.FeeAccountID,
		m.Description,
		m.BranchID,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transfer "+m.TransferID, err)
	}
	return nil
}

func (r *PgxCashBankRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.CashBankTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM cash_bank_transfers WHERE transfer_id = $1;`
	var m models.CashBankTransfer
	err := r.Pool.QueryRow(ctx, query, transferID).Scan(
		&m.TransferID,
		&m.Number,
		&m.Date,
		&m.Amount,
		&m.OtherCosts,
		&m.FromID,
		&m.ToID,
		&m.FeeAccountID,
		&m.Description,
		&m.BranchID,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transfer " + transferID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find transfer "+transferID, err)
	}
	trf := mapping.ToDomainCashBankTransfer(m)
	return &trf, nil
}

