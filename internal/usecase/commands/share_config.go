package commands

import (
	"context"
	"net/url"

	"spinwheel/internal/infra/db"
	"spinwheel/internal/pkg/errs"
	"spinwheel/internal/usecase/shared"
)

type ShareConfigCommands interface {
	SetShareURL(ctx context.Context, rawURL string) (string, error)
}

type shareConfigCommandsImpl struct {
	runner  shared.TxRunner
	configs ShareConfigRepository
}

func NewShareConfigCommands(runner shared.TxRunner, configs ShareConfigRepository) ShareConfigCommands {
	return &shareConfigCommandsImpl{runner: runner, configs: configs}
}

func (c *shareConfigCommandsImpl) SetShareURL(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", errs.ErrInvalidShareURL
	}

	var saved string
	txErr := c.runner.Default(ctx, func(tx db.DBTX) error {
		saved, err = c.configs.Upsert(ctx, tx, parsed.String())
		if err != nil {
			return markStorageErr(err)
		}
		return nil
	})
	if txErr != nil {
		return "", txErr
	}
	return saved, nil
}
