package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// EligibleVoucherView is the public shape of a voucher currently on the wheel.
// Limits and counters stay server-side.
type EligibleVoucherView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description *string   `json:"description,omitempty"`
}

type RemainingView struct {
	Free  int `json:"free"`
	Bonus int `json:"bonus"`
}

type WheelStatusView struct {
	Vouchers       []*EligibleVoucherView `json:"vouchers"`
	Remaining      RemainingView          `json:"remaining"`
	ShareDoneToday bool                   `json:"shareRecordedToday"`
	RequiresLogin  bool                   `json:"requiresLogin"`
}

// SpinHistoryItem resolves voucher name/code at query time when the voucher
// still exists, else falls back to the result label stored at spin time.
type SpinHistoryItem struct {
	ID          uuid.UUID `json:"id"`
	Result      string    `json:"result"`
	Kind        string    `json:"kind"`
	VoucherName string    `json:"voucherName"`
	VoucherCode *string   `json:"voucherCode,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// VoucherView is the admin-facing read model including caps and counters.
type VoucherView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	Description *string    `json:"description,omitempty"`
	DailyLimit  *int       `json:"daily_limit,omitempty"`
	TotalLimit  *int       `json:"total_limit,omitempty"`
	ActiveFrom  *time.Time `json:"active_from,omitempty"`
	ActiveUntil *time.Time `json:"active_until,omitempty"`
	IsActive    bool       `json:"is_active"`
	UsedCount   int        `json:"used_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ShareConfigView struct {
	URL *string `json:"url"`
}
