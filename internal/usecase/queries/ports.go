package queries

import (
	"context"

	"spinwheel/internal/infra"
	"spinwheel/internal/infra/db"
	"spinwheel/internal/pkg/errs"

	"github.com/google/uuid"
)

type SpinReads interface {
	HistoryByPhone(ctx context.Context, tx db.DBTX, phone string, limit int) ([]*SpinHistoryItem, error)
}

type VoucherReads interface {
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*VoucherView, error)
	FindByCode(ctx context.Context, tx db.DBTX, code string) (*VoucherView, error)
	List(ctx context.Context, tx db.DBTX) ([]*VoucherView, error)
}

type ShareConfigReads interface {
	Latest(ctx context.Context, tx db.DBTX) (*string, error)
}

func markStorageErr(err error) error {
	if infra.IsKind(err, infra.KindUnavailable) {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
