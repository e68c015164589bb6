package repository

import (
	"context"

	"spinwheel/internal/domain/voucher"
	"spinwheel/internal/infra"
	"spinwheel/internal/infra/db"
	"spinwheel/internal/usecase/commands"

	"github.com/google/uuid"
)

type VoucherRepository struct{}

func NewVoucherRepository() *VoucherRepository {
	return &VoucherRepository{}
}

const insertVoucherSQL = `
INSERT INTO vouchers (name, code, description, daily_limit, total_limit, active_from, active_until, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (r *VoucherRepository) Create(ctx context.Context, tx db.DBTX, v *voucher.Voucher) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertVoucherSQL,
		v.Name(), v.Code().String(), v.Description(),
		v.DailyLimit().Ptr(), v.TotalLimit().Ptr(),
		v.ActiveFrom(), v.ActiveUntil(), v.IsActive(),
	).Scan(&id)
	if err != nil {
		// 23505 on the code unique index surfaces as KindDuplicateKey
		return uuid.Nil, infra.WrapRepoErr("failed to insert voucher", err)
	}
	return id, nil
}

// used_count is deliberately absent from the column list: the admin surface
// has no write path to the counter.
const updateVoucherSQL = `
UPDATE vouchers
SET name = $2, code = $3, description = $4, daily_limit = $5, total_limit = $6,
    active_from = $7, active_until = $8, is_active = $9, updated_at = now()
WHERE id = $1`

func (r *VoucherRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, params commands.UpdateVoucherParams) error {
	tag, err := tx.Exec(ctx, updateVoucherSQL,
		id, params.Name, params.Code, params.Description,
		params.DailyLimit, params.TotalLimit,
		params.ActiveFrom, params.ActiveUntil, params.IsActive,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update voucher", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VoucherRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM vouchers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete voucher", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VoucherRepository) SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) error {
	tag, err := tx.Exec(ctx,
		`UPDATE vouchers SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return infra.WrapRepoErr("failed to toggle voucher", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound)
	}
	return nil
}

// The WHERE clause makes the increment conditional on remaining headroom,
// turning a check-then-commit race into a zero-row reject instead of a silent
// over-allocation. This is the one correctness-critical statement of the
// whole system.
const incrementUsedCountSQL = `
UPDATE vouchers
SET used_count = used_count + 1, updated_at = now()
WHERE id = $1
  AND is_active
  AND (total_limit IS NULL OR used_count < total_limit)`

func (r *VoucherRepository) IncrementUsedCount(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, incrementUsedCountSQL, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment voucher used count", err)
	}
	return tag.RowsAffected() == 1, nil
}
