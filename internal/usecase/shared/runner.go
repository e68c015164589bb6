package shared

import (
	"context"

	"spinwheel/internal/infra/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxRunner is the non-generic seam the usecases depend on, so command logic
// can be unit-tested with a fake runner and mocked repositories.
type TxRunner interface {
	// Serializable: the allocation engine's critical section
	Serializable(ctx context.Context, fn func(tx db.DBTX) error) error
	// Default: read-committed writes with retry
	Default(ctx context.Context, fn func(tx db.DBTX) error) error
	// ReadOnly: consistent multi-table snapshot
	ReadOnly(ctx context.Context, fn func(tx db.DBTX) error) error
}

type PgxTxRunner struct {
	pool *pgxpool.Pool
}

func NewPgxTxRunner(pool *pgxpool.Pool) *PgxTxRunner {
	return &PgxTxRunner{pool: pool}
}

func (r *PgxTxRunner) Serializable(ctx context.Context, fn func(tx db.DBTX) error) error {
	_, err := WithSerializable(ctx, r.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, fn(tx)
	})
	return err
}

func (r *PgxTxRunner) Default(ctx context.Context, fn func(tx db.DBTX) error) error {
	_, err := WithDefault(ctx, r.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, fn(tx)
	})
	return err
}

func (r *PgxTxRunner) ReadOnly(ctx context.Context, fn func(tx db.DBTX) error) error {
	_, err := WithReadOnly(ctx, r.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, fn(tx)
	})
	return err
}
