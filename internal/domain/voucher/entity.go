package voucher

import (
	"time"

	"github.com/google/uuid"
)

// Voucher is a reward definition with an activity window and usage caps.
// usedCount only ever increases and is mutated exclusively by the allocation
// engine when a spin commits; the admin surface has no write path to it.
type Voucher struct {
	id          uuid.UUID
	name        string
	code        Code
	description *string
	dailyLimit  Limit
	totalLimit  Limit
	activeFrom  *time.Time
	activeUntil *time.Time
	isActive    bool
	usedCount   int
	createdAt   time.Time
}

func NewVoucher(
	id uuid.UUID,
	name string,
	code string,
	description *string,
	dailyLimit, totalLimit *int,
	activeFrom, activeUntil *time.Time,
	isActive bool,
	usedCount int,
	createdAt time.Time,
) (*Voucher, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	voucherCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	daily, err := NewLimit(dailyLimit)
	if err != nil {
		return nil, err
	}

	total, err := NewLimit(totalLimit)
	if err != nil {
		return nil, err
	}

	if activeFrom != nil && activeUntil != nil && activeFrom.After(*activeUntil) {
		return nil, ErrInvalidWindow
	}

	return &Voucher{
		id:          id,
		name:        name,
		code:        voucherCode,
		description: description,
		dailyLimit:  daily,
		totalLimit:  total,
		activeFrom:  activeFrom,
		activeUntil: activeUntil,
		isActive:    isActive,
		usedCount:   usedCount,
		createdAt:   createdAt,
	}, nil
}

// WithinWindow reports whether t falls inside the activity window. Both ends
// are inclusive; activeFrom == activeUntil is a valid single-instant window.
func (v *Voucher) WithinWindow(t time.Time) bool {
	if v.activeFrom != nil && t.Before(*v.activeFrom) {
		return false
	}
	if v.activeUntil != nil && t.After(*v.activeUntil) {
		return false
	}
	return true
}

// EligibleAt applies the full eligibility predicate. spinsToday and spinsEver
// are point-in-time counts supplied by storage; final enforcement happens
// again at commit time.
func (v *Voucher) EligibleAt(t time.Time, spinsToday, spinsEver int) bool {
	if !v.isActive {
		return false
	}
	if !v.WithinWindow(t) {
		return false
	}
	if !v.dailyLimit.Allows(spinsToday) {
		return false
	}
	return v.totalLimit.Allows(spinsEver)
}

func (v *Voucher) ID() uuid.UUID           { return v.id }
func (v *Voucher) Name() string            { return v.name }
func (v *Voucher) Code() Code              { return v.code }
func (v *Voucher) Description() *string    { return v.description }
func (v *Voucher) DailyLimit() Limit       { return v.dailyLimit }
func (v *Voucher) TotalLimit() Limit       { return v.totalLimit }
func (v *Voucher) ActiveFrom() *time.Time  { return v.activeFrom }
func (v *Voucher) ActiveUntil() *time.Time { return v.activeUntil }
func (v *Voucher) IsActive() bool          { return v.isActive }
func (v *Voucher) UsedCount() int          { return v.usedCount }
func (v *Voucher) CreatedAt() time.Time    { return v.createdAt }
