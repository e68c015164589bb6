package queries

import (
	"context"

	"spinwheel/internal/domain/voucher"
	"spinwheel/internal/infra"
	"spinwheel/internal/infra/db"
	"spinwheel/internal/pkg/errs"
	"spinwheel/internal/usecase/shared"

	"github.com/google/uuid"
)

type VoucherQueries interface {
	List(ctx context.Context) ([]*VoucherView, error)
	Get(ctx context.Context, id uuid.UUID) (*VoucherView, error)
	GetByCode(ctx context.Context, code string) (*VoucherView, error)
}

type voucherQueriesImpl struct {
	runner shared.TxRunner
	reads  VoucherReads
}

func NewVoucherQueries(runner shared.TxRunner, reads VoucherReads) VoucherQueries {
	return &voucherQueriesImpl{runner: runner, reads: reads}
}

func (q *voucherQueriesImpl) List(ctx context.Context) ([]*VoucherView, error) {
	result := []*VoucherView{}
	err := q.runner.ReadOnly(ctx, func(tx db.DBTX) error {
		found, err := q.reads.List(ctx, tx)
		if err != nil {
			return markStorageErr(err)
		}
		result = append(result, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetByCode resolves the code through the domain value object first, so the
// lookup always runs against the stored normalized form.
func (q *voucherQueriesImpl) GetByCode(ctx context.Context, code string) (*VoucherView, error) {
	normalized, err := voucher.NewCode(code)
	if err != nil {
		// A code that cannot exist is indistinguishable from one that does not
		return nil, errs.Mark(err, errs.ErrVoucherNotFound)
	}

	var view *VoucherView
	txErr := q.runner.ReadOnly(ctx, func(tx db.DBTX) error {
		found, err := q.reads.FindByCode(ctx, tx, normalized.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrVoucherNotFound)
			}
			return markStorageErr(err)
		}
		view = found
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return view, nil
}

func (q *voucherQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*VoucherView, error) {
	var view *VoucherView
	err := q.runner.ReadOnly(ctx, func(tx db.DBTX) error {
		found, err := q.reads.FindByID(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrVoucherNotFound)
			}
			return markStorageErr(err)
		}
		view = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
