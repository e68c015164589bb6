package queries

import (
	"context"

	"spinwheel/internal/domain/user"
	"spinwheel/internal/infra/db"
	"spinwheel/internal/pkg/errs"
	"spinwheel/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxHistoryItems = 20

type SpinQueries interface {
	History(ctx context.Context, principal user.Principal) ([]*SpinHistoryItem, error)
}

type spinQueriesImpl struct {
	runner shared.TxRunner
	reads  SpinReads
}

func NewSpinQueries(runner shared.TxRunner, reads SpinReads) SpinQueries {
	return &spinQueriesImpl{runner: runner, reads: reads}
}

func (q *spinQueriesImpl) History(ctx context.Context, principal user.Principal) ([]*SpinHistoryItem, error) {
	if principal.ID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	if !principal.HasPhone() {
		return nil, errs.ErrMissingPhone
	}

	items := []*SpinHistoryItem{}
	err := q.runner.ReadOnly(ctx, func(tx db.DBTX) error {
		found, err := q.reads.HistoryByPhone(ctx, tx, principal.Phone, maxHistoryItems)
		if err != nil {
			return markStorageErr(err)
		}
		items = append(items, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}
