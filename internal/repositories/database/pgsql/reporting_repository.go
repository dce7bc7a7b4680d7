package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kreasidigital/erp_ledger/internal/apperrors"
	"github.com/kreasidigital/erp_ledger/internal/core/domain"
	portsrepo "github.com/kreasidigital/erp_ledger/internal/core/ports/repositories"
	"github.com/kreasidigital/erp_ledger/internal/models"
	"github.com/kreasidigital/erp_ledger/internal/utils/mapping"
)

type ReportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &ReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepositoryFacade = (*ReportingRepository)(nil)

// GetAccountTotals aggregates gross debit and credit sums per account for
// entries dated on or before asOf. Accounts without entries come back
// with zero sums so reports can still show them.
func (r *ReportingRepository) GetAccountTotals(ctx context.Context, asOf time.Time, branchID *string) ([]domain.AccountTotals, error) {
	query := `
		SELECT a.account_id, a.code, a.name, a.type, a.parent_id, a.is_current, a.is_cash_bank, a.is_active,
		       a.created_at, a.created_by, a.last_updated_at, a.last_updated_by,
		       COALESCE(SUM(e.debit), 0) AS debit_sum,
		       COALESCE(SUM(e.credit), 0) AS credit_sum
		FROM chart_of_accounts a
		LEFT JOIN journal_entries e
		       ON e.account_id = a.account_id
		      AND e.date <= $1
		      AND ($2::text IS NULL OR e.branch_id = $2)
		GROUP BY a.account_id, a.code, a.name, a.type, a.parent_id, a.is_current, a.is_cash_bank, a.is_active,
		         a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
		ORDER BY a.code;
	`
	rows, err := r.Pool.Query(ctx, query, asOf, branchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account totals", err)
	}
	defer rows.Close()

	totals := []domain.AccountTotals{}
	for rows.Next() {
		var m models.ChartOfAccount
		var t domain.AccountTotals
		if err := rows.Scan(
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
			&t.DebitSum,
			&t.CreditSum,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account totals row", err)
		}
		t.Account = mapping.ToDomainAccount(m)
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account totals rows", err)
	}
	return totals, nil
}
