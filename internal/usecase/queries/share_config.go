package queries

import (
	"context"

	"spinwheel/internal/infra/db"
	"spinwheel/internal/usecase/shared"
)

type ShareConfigQueries interface {
	Current(ctx context.Context) (*ShareConfigView, error)
}

type shareConfigQueriesImpl struct {
	runner shared.TxRunner
	reads  ShareConfigReads
}

func NewShareConfigQueries(runner shared.TxRunner, reads ShareConfigReads) ShareConfigQueries {
	return &shareConfigQueriesImpl{runner: runner, reads: reads}
}

func (q *shareConfigQueriesImpl) Current(ctx context.Context) (*ShareConfigView, error) {
	view := &ShareConfigView{}
	err := q.runner.ReadOnly(ctx, func(tx db.DBTX) error {
		url, err := q.reads.Latest(ctx, tx)
		if err != nil {
			return markStorageErr(err)
		}
		view.URL = url
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
