package readstore

import (
	"context"

	"spinwheel/internal/infra"
	"spinwheel/internal/infra/db"
	"spinwheel/internal/usecase/queries"
)

type SpinReadStore struct{}

func NewSpinReadStore() *SpinReadStore {
	return &SpinReadStore{}
}

// COALESCE falls back to the result label stored at spin time, so history
// stays readable after a voucher is deleted.
const historyByPhoneSQL = `
SELECT s.id, s.result, s.kind,
       COALESCE(v.name, s.result) AS voucher_name,
       v.code,
       s.created_at
FROM spins s
LEFT JOIN vouchers v ON v.id = s.voucher_id
WHERE s.phone = $1
ORDER BY s.created_at DESC
LIMIT $2`

func (r *SpinReadStore) HistoryByPhone(ctx context.Context, tx db.DBTX, phone string, limit int) ([]*queries.SpinHistoryItem, error) {
	rows, err := tx.Query(ctx, historyByPhoneSQL, phone, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query spin history", err)
	}
	defer rows.Close()

	var result []*queries.SpinHistoryItem
	for rows.Next() {
		item := &queries.SpinHistoryItem{}
		if err := rows.Scan(&item.ID, &item.Result, &item.Kind, &item.VoucherName, &item.VoucherCode, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan spin history row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read spin history", err)
	}

	return result, nil
}
