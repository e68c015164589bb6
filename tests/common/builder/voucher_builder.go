//go:build unit || e2e

package builder

import (
	"time"

	domvoucher "spinwheel/internal/domain/voucher"
	"spinwheel/internal/usecase/commands"

	"github.com/google/uuid"
)

type VoucherBuilder struct {
	ID          uuid.UUID
	Name        string
	Code        string
	Description *string
	DailyLimit  *int
	TotalLimit  *int
	ActiveFrom  *time.Time
	ActiveUntil *time.Time
	IsActive    bool
	UsedCount   int
	CreatedAt   time.Time
}

func NewVoucherBuilder() *VoucherBuilder {
	return &VoucherBuilder{
		ID:        uuid.New(),
		Name:      "Free Coffee",
		Code:      "FREE_COFFEE",
		IsActive:  true,
		UsedCount: 0,
		CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *VoucherBuilder) WithName(name string) *VoucherBuilder {
	b.Name = name
	return b
}

func (b *VoucherBuilder) WithCode(code string) *VoucherBuilder {
	b.Code = code
	return b
}

func (b *VoucherBuilder) WithDescription(desc string) *VoucherBuilder {
	b.Description = &desc
	return b
}

func (b *VoucherBuilder) WithDailyLimit(limit int) *VoucherBuilder {
	b.DailyLimit = &limit
	return b
}

func (b *VoucherBuilder) WithTotalLimit(limit int) *VoucherBuilder {
	b.TotalLimit = &limit
	return b
}

func (b *VoucherBuilder) WithWindow(from, until time.Time) *VoucherBuilder {
	b.ActiveFrom = &from
	b.ActiveUntil = &until
	return b
}

func (b *VoucherBuilder) WithActiveFrom(from time.Time) *VoucherBuilder {
	b.ActiveFrom = &from
	return b
}

func (b *VoucherBuilder) WithActiveUntil(until time.Time) *VoucherBuilder {
	b.ActiveUntil = &until
	return b
}

func (b *VoucherBuilder) Inactive() *VoucherBuilder {
	b.IsActive = false
	return b
}

func (b *VoucherBuilder) WithUsedCount(count int) *VoucherBuilder {
	b.UsedCount = count
	return b
}

func (b *VoucherBuilder) BuildDomain() (*domvoucher.Voucher, error) {
	return domvoucher.NewVoucher(
		b.ID,
		b.Name,
		b.Code,
		b.Description,
		b.DailyLimit, b.TotalLimit,
		b.ActiveFrom, b.ActiveUntil,
		b.IsActive,
		b.UsedCount,
		b.CreatedAt,
	)
}

func (b *VoucherBuilder) BuildCandidate() *commands.VoucherCandidate {
	return &commands.VoucherCandidate{
		ID:          b.ID,
		Name:        b.Name,
		Code:        b.Code,
		Description: b.Description,
	}
}

func (b *VoucherBuilder) BuildCreateParams() commands.CreateVoucherParams {
	return commands.CreateVoucherParams{
		Name:        b.Name,
		Code:        b.Code,
		Description: b.Description,
		DailyLimit:  b.DailyLimit,
		TotalLimit:  b.TotalLimit,
		ActiveFrom:  b.ActiveFrom,
		ActiveUntil: b.ActiveUntil,
		IsActive:    b.IsActive,
	}
}
