package repository

import (
	"context"

	"spinwheel/internal/infra"
	"spinwheel/internal/infra/db"
	"spinwheel/internal/usecase/commands"

	"github.com/google/uuid"
)

type ShareRepository struct{}

func NewShareRepository() *ShareRepository {
	return &ShareRepository{}
}

const insertShareEventSQL = `
INSERT INTO share_events (user_id, phone, ip)
VALUES ($1, $2, $3)
RETURNING id`

func (r *ShareRepository) Create(ctx context.Context, tx db.DBTX, ev *commands.ShareEvent) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertShareEventSQL, ev.UserID, ev.Phone, ev.IP).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert share event", err)
	}
	return id, nil
}
