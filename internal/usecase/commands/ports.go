package commands

import (
	"context"
	"time"

	"spinwheel/internal/domain/spin"
	"spinwheel/internal/domain/voucher"
	"spinwheel/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types.

// VoucherCandidate is a voucher that passed the optimistic eligibility check
// inside the allocation transaction.
type VoucherCandidate struct {
	ID          uuid.UUID
	Name        string
	Code        string
	Description *string
}

// SpinRecord is the immutable outcome row written by the allocation engine.
type SpinRecord struct {
	UserID    uuid.UUID
	Phone     string
	VoucherID *uuid.UUID
	Result    string
	IP        string
	Kind      spin.Kind
}

type ShareEvent struct {
	UserID uuid.UUID
	Phone  string
	IP     string
}

// EntitlementCounts is the per-phone, per-day ledger snapshot.
type EntitlementCounts struct {
	FreeUsed       int
	BonusUsed      int
	ShareDoneToday bool
}

type SpinRepository interface {
	Create(ctx context.Context, tx db.DBTX, rec *SpinRecord) (uuid.UUID, error)
}

type ShareRepository interface {
	Create(ctx context.Context, tx db.DBTX, ev *ShareEvent) (uuid.UUID, error)
}

type VoucherRepository interface {
	Create(ctx context.Context, tx db.DBTX, v *voucher.Voucher) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, params UpdateVoucherParams) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) error
	// IncrementUsedCount bumps used_count only while it is strictly below
	// total_limit; a false return is a definitive cap-exhausted reject.
	IncrementUsedCount(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error)
}

type ShareConfigRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, url string) (string, error)
}

// WheelReads is the read side the allocation engine consults inside its own
// transaction snapshot.
type WheelReads interface {
	EligibleVouchers(ctx context.Context, tx db.DBTX, now, dayStart, dayEnd time.Time) ([]*VoucherCandidate, error)
	EntitlementCounts(ctx context.Context, tx db.DBTX, phone string, dayStart, dayEnd time.Time) (*EntitlementCounts, error)
	FindShareEvent(ctx context.Context, tx db.DBTX, phone string, dayStart, dayEnd time.Time) (bool, error)
}

// UpdateVoucherParams carries the admin-editable fields. usedCount is absent
// on purpose: the editor can reset limits but never the counter.
type UpdateVoucherParams struct {
	Name        string
	Code        string
	Description *string
	DailyLimit  *int
	TotalLimit  *int
	ActiveFrom  *time.Time
	ActiveUntil *time.Time
	IsActive    bool
}
