package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kreasidigital/erp_ledger/internal/apperrors"
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	portsrepo "github.com/kreasidigital/erp_ledger/internal/core/ports/repositories"
	"github.com/kreasidigital/erp_ledger/internal/models"
	"github.com/kreasidigital/erp_ledger/internal/utils/mapping"
)

type PgxVoucherRepository struct {
	BaseRepository
}

func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryFacade {
	return &PgxVoucherRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)

const voucherColumns = `voucher_id, voucher_number, voucher_date, amount, related_party, description,
	       status, transaction_id, branch_id, approved_by, approved_at, approval_notes,
	       created_at, created_by, last_updated_at, last_updated_by`

func scanVoucher(row pgx.Row) (models.VoucherRequest, error) {
	var m models.VoucherRequest
	err := row.Scan(
		&m.VoucherID,
		&m.VoucherNumber,
		&m.VoucherDate,
		&m.Amount,
		&m.RelatedParty,
		&m.Description,
		&m.Status,
		&m.TransactionID,
		&m.BranchID,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.ApprovalNotes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.VoucherRequest) error {
	m := mapping.ToModelVoucher(voucher)
	query := `
		INSERT INTO voucher_requests (` + voucherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.VoucherID,
		m.VoucherNumber,
		m.VoucherDate,
		m.Amount,
		m.RelatedParty,
		m.Description,
		m.Status,
		m.TransactionID,
		m.BranchID,
		m.ApprovedBy,
		m.ApprovedAt,
		m.ApprovalNotes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "voucher number "+m.VoucherNumber+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert voucher "+m.VoucherID, err)
	}
	return nil
}

func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.VoucherRequest, error) {
	query := `SELECT ` + voucherColumns + ` FROM voucher_requests WHERE voucher_id = $1;`
	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("voucher " + voucherID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find voucher "+voucherID, err)
	}
	voucher := mapping.ToDomainVoucher(m)
	return &voucher, nil
}

func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, limit, offset int) ([]domain.VoucherRequest, error) {
	query := `
		SELECT ` + voucherColumns + `
		FROM voucher_requests
		ORDER BY voucher_date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query vouchers", err)
	}
	defer rows.Close()

	vouchers := []models.VoucherRequest{}
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan voucher row", err)
		}
		vouchers = append(vouchers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating voucher rows", err)
	}
	return mapping.ToDomainVoucherSlice(vouchers), nil
}

func (r *PgxVoucherRepository) UpdateVoucherStatus(ctx context.Context, voucherID string, update portsrepo.StatusUpdate) error {
	query := `
		UPDATE voucher_requests
		SET status = $2,
		    approved_by = COALESCE($3, approved_by),
		    approved_at = COALESCE($4, approved_at),
		    approval_notes = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE voucher_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		voucherID,
		string(update.Status),
		update.ApprovedBy,
		update.ApprovedAt,
		update.ApprovalNotes,
		update.UpdatedAt,
		update.UpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update voucher "+voucherID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("voucher " + voucherID + " not found for update")
	}
	return nil
}

// LinkVoucherTransaction stamps the voucher with its backing transaction
// and the transaction with its voucher in a single database transaction.
func (r *PgxVoucherRepository) LinkVoucherTransaction(ctx context.Context, voucherID, transactionID string, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE voucher_requests
		SET transaction_id = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE voucher_id = $1;
	`, voucherID, transactionID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to link voucher "+voucherID+" to transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("voucher " + voucherID + " not found for transaction link")
	}

	cmdTag, err = tx.Exec(ctx, `
		UPDATE cash_bank_transactions
		SET voucher_id = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE transaction_id = $1;
	`, transactionID, voucherID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to link transaction "+transactionID+" to voucher "+voucherID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction " + transactionID + " not found for voucher link")
	}

	return r.Commit(ctx, tx)
}

// CountTransactionsForVoucher counts cash/bank transactions already
// backed by the voucher. A voucher may back at most one.
func (r *PgxVoucherRepository) CountTransactionsForVoucher(ctx context.Context, voucherID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM cash_bank_transactions WHERE voucher_id = $1;
	`, voucherID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count transactions for voucher "+voucherID, err)
	}
	return count, nil
}
