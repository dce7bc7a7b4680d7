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

type PgxReconciliationRepository struct {
	BaseRepository
}

func newPgxReconciliationRepository(pool *pgxpool.Pool) portsrepo.ReconciliationRepositoryFacade {
	return &PgxReconciliationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReconciliationRepositoryFacade = (*PgxReconciliationRepository)(nil)

const reconColumns = `recon_id, account_id, status, closed_at,
	       created_at, created_by, last_updated_at, last_updated_by`

func scanReconciliation(row pgx.Row) (models.BankReconciliation, error) {
	var m models.BankReconciliation
	err := row.Scan(
		&m.ReconID,
		&m.AccountID,
		&m.Status,
		&m.ClosedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxReconciliationRepository) FindReconciliationByID(ctx context.Context, reconID string) (*domain.BankReconciliation, error) {
	query := `SELECT ` + reconColumns + ` FROM bank_reconciliations WHERE recon_id = $1;`
	m, err := scanReconciliation(r.Pool.QueryRow(ctx, query, reconID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("reconciliation " + reconID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find reconciliation "+reconID, err)
	}
	recon := mapping.ToDomainReconciliation(m)
	return &recon, nil
}

func (r *PgxReconciliationRepository) FindOpenByAccount(ctx context.Context, accountID string) (*domain.BankReconciliation, error) {
	query := `SELECT ` + reconColumns + ` FROM bank_reconciliations WHERE account_id = $1 AND status = 'open';`
	m, err := scanReconciliation(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no open reconciliation for account " + accountID)
		}
		return nil, apperrors.NewAppError(500, "failed to find open reconciliation for account "+accountID, err)
	}
	recon := mapping.ToDomainReconciliation(m)
	return &recon, nil
}

func (r *PgxReconciliationRepository) ListReconciliations(ctx context.Context, accountID string) ([]domain.BankReconciliation, error) {
	query := `
		SELECT ` + reconColumns + `
		FROM bank_reconciliations
		WHERE account_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query reconciliations for account "+accountID, err)
	}
	defer rows.Close()

	recons := []domain.BankReconciliation{}
	for rows.Next() {
		m, err := scanReconciliation(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan reconciliation row", err)
		}
		recons = append(recons, mapping.ToDomainReconciliation(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating reconciliation rows", err)
	}
	return recons, nil
}

func (r *PgxReconciliationRepository) CloseReconciliation(ctx context.Context, reconID string, userID string) error {
	now := time.Now()
	query := `
		UPDATE bank_reconciliations
		SET status = 'closed',
		    closed_at = $2,
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE recon_id = $1 AND status = 'open';
	`
	cmdTag, err := r.Pool.Exec(ctx, query, reconID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close reconciliation "+reconID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "reconciliation "+reconID+" is not open", apperrors.ErrConflict)
	}
	return nil
}

func (r *PgxReconciliationRepository) ReopenReconciliation(ctx context.Context, reconID string, userID string) error {
	query := `
		UPDATE bank_reconciliations
		SET status = 'open',
		    closed_at = NULL,
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE recon_id = $1 AND status = 'closed';
	`
	cmdTag, err := r.Pool.Exec(ctx, query, reconID, time.Now(), userID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "account already has an open reconciliation", apperrors.ErrConflict)
		}
		return apperrors.NewAppError(500, "failed to reopen reconciliation "+reconID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "reconciliation "+reconID+" is not closed", apperrors.ErrConflict)
	}
	return nil
}
