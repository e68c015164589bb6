package readstore

import (
	"context"

	"spinwheel/internal/infra"
	"spinwheel/internal/infra/db"
)

type ShareConfigReadStore struct{}

func NewShareConfigReadStore() *ShareConfigReadStore {
	return &ShareConfigReadStore{}
}

// Latest returns the newest configured share URL, or nil when none is set.
func (r *ShareConfigReadStore) Latest(ctx context.Context, tx db.DBTX) (*string, error) {
	var url string
	err := tx.QueryRow(ctx,
		`SELECT url FROM share_configs ORDER BY created_at DESC LIMIT 1`).Scan(&url)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load share config", err)
	}
	return &url, nil
}
