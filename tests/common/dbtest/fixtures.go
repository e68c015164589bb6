//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type VoucherFixture struct {
	Name        string
	Code        string
	Description *string
	DailyLimit  *int
	TotalLimit  *int
	ActiveFrom  *time.Time
	ActiveUntil *time.Time
	IsActive    bool
	UsedCount   int
}

func CreateTestVoucher(t *testing.T, db DBLike, f VoucherFixture) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO vouchers (name, code, description, daily_limit, total_limit,
		                      active_from, active_until, is_active, used_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		f.Name, f.Code, f.Description, f.DailyLimit, f.TotalLimit,
		f.ActiveFrom, f.ActiveUntil, f.IsActive, f.UsedCount,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestSpin(t *testing.T, db DBLike, userID uuid.UUID, phone string, voucherID uuid.UUID, result, kind string, createdAt time.Time) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO spins (user_id, phone, voucher_id, result, ip, kind, created_at)
		VALUES ($1, $2, $3, $4, '127.0.0.1', $5, $6)
		RETURNING id`,
		userID, phone, voucherID, result, kind, createdAt,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestShareEvent(t *testing.T, db DBLike, userID uuid.UUID, phone string, createdAt time.Time) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO share_events (user_id, phone, ip, created_at)
		VALUES ($1, $2, '127.0.0.1', $3)
		RETURNING id`,
		userID, phone, createdAt,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func VoucherUsedCount(t *testing.T, db DBLike, voucherID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT used_count FROM vouchers WHERE id = $1", voucherID).Scan(&count)
	require.NoError(t, err)

	return count
}

func CountSpins(t *testing.T, db DBLike, phone string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM spins WHERE phone = $1", phone).Scan(&count)
	require.NoError(t, err)

	return count
}

// ResetDB truncates all mutable tables between test cases.
func ResetDB(t *testing.T, db DBLike) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"TRUNCATE spins, share_events, share_configs, vouchers CASCADE")
	require.NoError(t, err)
}
