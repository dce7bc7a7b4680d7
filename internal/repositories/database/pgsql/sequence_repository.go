package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kreasidigital/erp_ledger/internal/apperrors"
	portsrepo "github.com/kreasidigital/erp_ledger/internal/core/ports/repositories"
)

type PgxSequenceRepository struct {
	BaseRepository
}

func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepositoryFacade {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepositoryFacade = (*PgxSequenceRepository)(nil)

// NextValue advances the counter row for (prefix, period) and returns the
// new value. The upsert takes a row lock, so concurrent callers for the
// same pair are serialized and never see the same value. A missing row is
// created at 1.
func (r *PgxSequenceRepository) NextValue(ctx context.Context, prefix, period string) (int64, error) {
	query := `
		INSERT INTO document_sequences (prefix, period, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (prefix, period)
		DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value;
	`
	var value int64
	if err := r.Pool.QueryRow(ctx, query, prefix, period).Scan(&value); err != nil {
		return 0, apperrors.NewAppError(500, "failed to advance sequence "+prefix+"/"+period, err)
	}
	return value, nil
}
