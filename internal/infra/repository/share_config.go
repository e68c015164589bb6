package repository

import (
	"context"

	"spinwheel/internal/infra"
	"spinwheel/internal/infra/db"
)

type ShareConfigRepository struct{}

func NewShareConfigRepository() *ShareConfigRepository {
	return &ShareConfigRepository{}
}

// A single logical row: update the newest config if one exists, insert
// otherwise.
func (r *ShareConfigRepository) Upsert(ctx context.Context, tx db.DBTX, url string) (string, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE share_configs SET url = $1, updated_at = now()
		WHERE id = (SELECT id FROM share_configs ORDER BY created_at DESC LIMIT 1)`, url)
	if err != nil {
		return "", infra.WrapRepoErr("failed to update share config", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := tx.Exec(ctx, `INSERT INTO share_configs (url) VALUES ($1)`, url); err != nil {
			return "", infra.WrapRepoErr("failed to insert share config", err)
		}
	}
	return url, nil
}
