package commands

import (
	"context"
	"time"

	"spinwheel/internal/domain/voucher"
	"spinwheel/internal/infra"
	"spinwheel/internal/infra/db"
	"spinwheel/internal/pkg/clock"
	"spinwheel/internal/pkg/errs"
	"spinwheel/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateVoucherParams struct {
	Name        string
	Code        string
	Description *string
	DailyLimit  *int
	TotalLimit  *int
	ActiveFrom  *time.Time
	ActiveUntil *time.Time
	IsActive    bool
}

type VoucherCommands interface {
	Create(ctx context.Context, params CreateVoucherParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateVoucherParams) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type voucherCommandsImpl struct {
	runner   shared.TxRunner
	vouchers VoucherRepository
	clock    clock.Clock
}

func NewVoucherCommands(
	runner shared.TxRunner,
	vouchers VoucherRepository,
	clk clock.Clock,
) VoucherCommands {
	return &voucherCommandsImpl{
		runner:   runner,
		vouchers: vouchers,
		clock:    clk,
	}
}

func (c *voucherCommandsImpl) Create(ctx context.Context, params CreateVoucherParams) (uuid.UUID, error) {
	entity, err := voucher.NewVoucher(
		uuid.New(),
		params.Name,
		params.Code,
		params.Description,
		params.DailyLimit, params.TotalLimit,
		params.ActiveFrom, params.ActiveUntil,
		params.IsActive,
		0,
		c.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidVoucher)
	}

	var id uuid.UUID
	txErr := c.runner.Default(ctx, func(tx db.DBTX) error {
		id, err = c.vouchers.Create(ctx, tx, entity)
		if err != nil {
			return mapVoucherWriteErr(err)
		}
		return nil
	})
	if txErr != nil {
		return uuid.Nil, txErr
	}
	return id, nil
}

func (c *voucherCommandsImpl) Update(ctx context.Context, id uuid.UUID, params UpdateVoucherParams) error {
	// Validation goes through the entity constructor so the update path cannot
	// accept a shape the create path would reject. usedCount is not editable.
	entity, err := voucher.NewVoucher(
		id,
		params.Name,
		params.Code,
		params.Description,
		params.DailyLimit, params.TotalLimit,
		params.ActiveFrom, params.ActiveUntil,
		params.IsActive,
		0,
		c.clock.Now(),
	)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidVoucher)
	}
	// Persist the normalized code, same as the create path; otherwise one
	// logical code could exist in two case variants.
	params.Code = entity.Code().String()

	return c.runner.Default(ctx, func(tx db.DBTX) error {
		if err := c.vouchers.Update(ctx, tx, id, params); err != nil {
			return mapVoucherWriteErr(err)
		}
		return nil
	})
}

func (c *voucherCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.runner.Default(ctx, func(tx db.DBTX) error {
		if err := c.vouchers.Delete(ctx, tx, id); err != nil {
			return mapVoucherWriteErr(err)
		}
		return nil
	})
}

func (c *voucherCommandsImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return c.runner.Default(ctx, func(tx db.DBTX) error {
		if err := c.vouchers.SetActive(ctx, tx, id, active); err != nil {
			return mapVoucherWriteErr(err)
		}
		return nil
	})
}

func mapVoucherWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrVoucherNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrDuplicateVoucherCode)
	default:
		return markStorageErr(err)
	}
}
