package repository

import (
	"context"

	"spinwheel/internal/infra"
	"spinwheel/internal/infra/db"
	"spinwheel/internal/usecase/commands"

	"github.com/google/uuid"
)

type SpinRepository struct{}

func NewSpinRepository() *SpinRepository {
	return &SpinRepository{}
}

const insertSpinSQL = `
INSERT INTO spins (user_id, phone, voucher_id, result, ip, kind)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *SpinRepository) Create(ctx context.Context, tx db.DBTX, rec *commands.SpinRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertSpinSQL,
		rec.UserID, rec.Phone, rec.VoucherID, rec.Result, rec.IP, rec.Kind.String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert spin record", err)
	}
	return id, nil
}
