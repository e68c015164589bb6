package queries

import (
	"context"
	"time"

	"spinwheel/internal/domain/user"
	"spinwheel/internal/infra/db"
	"spinwheel/internal/pkg/clock"
	"spinwheel/internal/pkg/config"
	"spinwheel/internal/usecase/commands"
	"spinwheel/internal/usecase/shared"
)

type WheelQueries interface {
	// Status accepts a nil principal: the wheel itself is public, only the
	// entitlement portion needs a login.
	Status(ctx context.Context, principal *user.Principal) (*WheelStatusView, error)
}

type wheelQueriesImpl struct {
	runner shared.TxRunner
	reads  commands.WheelReads
	clock  clock.Clock
	cfg    config.WheelConfig
}

func NewWheelQueries(
	runner shared.TxRunner,
	reads commands.WheelReads,
	clk clock.Clock,
	cfg config.WheelConfig,
) WheelQueries {
	return &wheelQueriesImpl{
		runner: runner,
		reads:  reads,
		clock:  clk,
		cfg:    cfg,
	}
}

func (q *wheelQueriesImpl) Status(ctx context.Context, principal *user.Principal) (*WheelStatusView, error) {
	now := q.clock.Now()
	dayStart := q.clock.StartOfToday()
	dayEnd := dayStart.Add(24 * time.Hour)

	authed := principal != nil && principal.HasPhone()

	view := &WheelStatusView{
		Vouchers:      []*EligibleVoucherView{},
		RequiresLogin: !authed,
	}

	err := q.runner.ReadOnly(ctx, func(tx db.DBTX) error {
		candidates, err := q.reads.EligibleVouchers(ctx, tx, now, dayStart, dayEnd)
		if err != nil {
			return markStorageErr(err)
		}
		for _, c := range candidates {
			view.Vouchers = append(view.Vouchers, &EligibleVoucherView{
				ID:          c.ID,
				Name:        c.Name,
				Code:        c.Code,
				Description: c.Description,
			})
		}

		if !authed {
			return nil
		}

		counts, err := q.reads.EntitlementCounts(ctx, tx, principal.Phone, dayStart, dayEnd)
		if err != nil {
			return markStorageErr(err)
		}
		view.Remaining = RemainingView{
			Free:  max(0, q.cfg.MaxFreePerDay-counts.FreeUsed),
			Bonus: max(0, q.cfg.MaxBonusPerDay-counts.BonusUsed),
		}
		view.ShareDoneToday = counts.ShareDoneToday
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}
