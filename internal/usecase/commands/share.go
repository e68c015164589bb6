package commands

import (
	"context"
	"time"

	"spinwheel/internal/domain/user"
	"spinwheel/internal/infra/db"
	"spinwheel/internal/pkg/clock"
	"spinwheel/internal/pkg/errs"
	"spinwheel/internal/usecase/shared"

	"github.com/google/uuid"
)

type ShareOutcome struct {
	AlreadyRecorded bool
	BonusUnlocked   bool
}

type ShareCommands interface {
	RecordShare(ctx context.Context, principal user.Principal, ip string) (*ShareOutcome, error)
}

type shareCommandsImpl struct {
	runner shared.TxRunner
	shares ShareRepository
	reads  WheelReads
	clock  clock.Clock
}

func NewShareCommands(
	runner shared.TxRunner,
	shares ShareRepository,
	reads WheelReads,
	clk clock.Clock,
) ShareCommands {
	return &shareCommandsImpl{
		runner: runner,
		shares: shares,
		reads:  reads,
		clock:  clk,
	}
}

// RecordShare unlocks the day's bonus entitlement. Recording is idempotent per
// phone per day at the read level: a second call reports AlreadyRecorded and
// writes nothing. Two truly concurrent first shares may both insert; the
// entitlement ledger counts existence, not rows, so the duplicate is harmless.
func (c *shareCommandsImpl) RecordShare(ctx context.Context, principal user.Principal, ip string) (*ShareOutcome, error) {
	if principal.ID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	if !principal.HasPhone() {
		return nil, errs.ErrMissingPhone
	}

	dayStart := c.clock.StartOfToday()
	dayEnd := dayStart.Add(24 * time.Hour)

	var outcome *ShareOutcome
	err := c.runner.Default(ctx, func(tx db.DBTX) error {
		exists, err := c.reads.FindShareEvent(ctx, tx, principal.Phone, dayStart, dayEnd)
		if err != nil {
			return markStorageErr(err)
		}
		if exists {
			outcome = &ShareOutcome{AlreadyRecorded: true, BonusUnlocked: true}
			return nil
		}

		if _, err := c.shares.Create(ctx, tx, &ShareEvent{
			UserID: principal.ID,
			Phone:  principal.Phone,
			IP:     ip,
		}); err != nil {
			return markStorageErr(err)
		}

		outcome = &ShareOutcome{AlreadyRecorded: false, BonusUnlocked: true}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}
