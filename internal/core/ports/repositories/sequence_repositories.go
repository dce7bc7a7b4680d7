package repositories

import "context"

// SequenceRepositoryFacade hands out document sequence values. NextValue
// must serialize concurrent callers for the same (prefix, period) pair so
// two documents never receive the same number; the pgsql implementation
// relies on the row lock taken by an upsert.
type SequenceRepositoryFacade interface {
	NextValue(ctx context.Context, prefix, period string) (int64, error)
}
