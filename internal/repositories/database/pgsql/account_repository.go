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

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, code, name, type, parent_id, is_current, is_cash_bank, is_active,
	       created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (models.ChartOfAccount, error) {
	var m models.ChartOfAccount
	err := row.Scan(
		&m.AccountID,
		&m.Code,
		&m.Name,
		&m.Type,
		&m.ParentID,
		&m.IsCurrent,
		&m.IsCashBank,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAccount inserts a new account. A duplicate code surfaces as
// ErrDuplicate via the unique constraint.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.ChartOfAccount) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO chart_of_accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.Code,
		m.Name,
		m.Type,
		m.ParentID,
		m.IsCurrent,
		m.IsCashBank,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "account code "+m.Code+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert account "+m.AccountID, err)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.ChartOfAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE account_id = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("account " + accountID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find account by ID "+accountID, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.ChartOfAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE code = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("account code " + code + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find account by code "+code, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// FindAccountsByIDs returns the matching accounts keyed by id. Missing
// ids are simply absent from the map.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.ChartOfAccount, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.ChartOfAccount{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE account_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by IDs", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.ChartOfAccount, len(accountIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit, offset int) ([]domain.ChartOfAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts ORDER BY code LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	accounts := []domain.ChartOfAccount{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.ChartOfAccount) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE chart_of_accounts
		SET name = $2,
		    parent_id = $3,
		    is_current = $4,
		    is_cash_bank = $5,
		    is_active = $6,
		    last_updated_at = $7,
		    last_updated_by = $8
		WHERE account_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.ParentID,
		m.IsCurrent,
		m.IsCashBank,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update account "+m.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + m.AccountID + " not found for update")
	}
	return nil
}
