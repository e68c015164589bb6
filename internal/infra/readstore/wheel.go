package readstore

import (
	"context"
	"time"

	"spinwheel/internal/infra"
	"spinwheel/internal/infra/db"
	"spinwheel/internal/usecase/commands"
)

// WheelReadStore answers the two questions behind every wheel decision:
// which vouchers are currently eligible, and how much entitlement a phone has
// left today. Both are point-in-time reads; the allocation engine re-runs
// them inside its own transaction snapshot.
type WheelReadStore struct{}

func NewWheelReadStore() *WheelReadStore {
	return &WheelReadStore{}
}

// The daily cap counts today's spins per voucher; the total cap reads
// used_count, the same counter the commit-time conditional increment guards.
const eligibleVouchersSQL = `
SELECT v.id, v.name, v.code, v.description
FROM vouchers v
LEFT JOIN LATERAL (
    SELECT COUNT(*) AS cnt
    FROM spins s
    WHERE s.voucher_id = v.id AND s.created_at >= $1 AND s.created_at < $2
) d ON TRUE
WHERE v.is_active
  AND (v.active_from IS NULL OR v.active_from <= $3)
  AND (v.active_until IS NULL OR v.active_until >= $3)
  AND (v.daily_limit IS NULL OR d.cnt < v.daily_limit)
  AND (v.total_limit IS NULL OR v.used_count < v.total_limit)
ORDER BY v.created_at ASC`

func (r *WheelReadStore) EligibleVouchers(ctx context.Context, tx db.DBTX, now, dayStart, dayEnd time.Time) ([]*commands.VoucherCandidate, error) {
	rows, err := tx.Query(ctx, eligibleVouchersSQL, dayStart, dayEnd, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list eligible vouchers", err)
	}
	defer rows.Close()

	var result []*commands.VoucherCandidate
	for rows.Next() {
		c := &commands.VoucherCandidate{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan eligible voucher", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read eligible vouchers", err)
	}

	return result, nil
}

const entitlementCountsSQL = `
SELECT
    COUNT(*) FILTER (WHERE kind = 'FREE')  AS free_used,
    COUNT(*) FILTER (WHERE kind = 'BONUS') AS bonus_used
FROM spins
WHERE phone = $1 AND created_at >= $2 AND created_at < $3`

func (r *WheelReadStore) EntitlementCounts(ctx context.Context, tx db.DBTX, phone string, dayStart, dayEnd time.Time) (*commands.EntitlementCounts, error) {
	counts := &commands.EntitlementCounts{}
	err := tx.QueryRow(ctx, entitlementCountsSQL, phone, dayStart, dayEnd).
		Scan(&counts.FreeUsed, &counts.BonusUsed)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count spins for phone", err)
	}

	shared, err := r.FindShareEvent(ctx, tx, phone, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	counts.ShareDoneToday = shared

	return counts, nil
}

func (r *WheelReadStore) FindShareEvent(ctx context.Context, tx db.DBTX, phone string, dayStart, dayEnd time.Time) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM share_events
			WHERE phone = $1 AND created_at >= $2 AND created_at < $3
		)`, phone, dayStart, dayEnd).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to look up share event", err)
	}
	return exists, nil
}
