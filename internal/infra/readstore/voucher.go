package readstore

import (
	"context"

	"spinwheel/internal/infra"
	"spinwheel/internal/infra/db"
	"spinwheel/internal/usecase/queries"

	"github.com/google/uuid"
)

type VoucherReadStore struct{}

func NewVoucherReadStore() *VoucherReadStore {
	return &VoucherReadStore{}
}

const voucherColumns = `
id, name, code, description, daily_limit, total_limit,
active_from, active_until, is_active, used_count, created_at, updated_at`

func (r *VoucherReadStore) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*queries.VoucherView, error) {
	row := tx.QueryRow(ctx, `SELECT `+voucherColumns+` FROM vouchers WHERE id = $1`, id)
	v, err := scanVoucherView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find voucher by ID", err)
	}
	return v, nil
}

func (r *VoucherReadStore) FindByCode(ctx context.Context, tx db.DBTX, code string) (*queries.VoucherView, error) {
	row := tx.QueryRow(ctx, `SELECT `+voucherColumns+` FROM vouchers WHERE code = $1`, code)
	v, err := scanVoucherView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find voucher by code", err)
	}
	return v, nil
}

func (r *VoucherReadStore) List(ctx context.Context, tx db.DBTX) ([]*queries.VoucherView, error) {
	rows, err := tx.Query(ctx, `SELECT `+voucherColumns+` FROM vouchers ORDER BY created_at ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vouchers", err)
	}
	defer rows.Close()

	var result []*queries.VoucherView
	for rows.Next() {
		v, err := scanVoucherView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan voucher row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read vouchers", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVoucherView(row rowScanner) (*queries.VoucherView, error) {
	v := &queries.VoucherView{}
	err := row.Scan(
		&v.ID, &v.Name, &v.Code, &v.Description,
		&v.DailyLimit, &v.TotalLimit,
		&v.ActiveFrom, &v.ActiveUntil,
		&v.IsActive, &v.UsedCount,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}
