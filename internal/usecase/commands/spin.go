package commands

import (
	"context"
	"math/rand/v2"
	"time"

	"spinwheel/internal/domain/spin"
	"spinwheel/internal/domain/user"
	"spinwheel/internal/infra"
	"spinwheel/internal/infra/db"
	"spinwheel/internal/pkg/clock"
	"spinwheel/internal/pkg/config"
	"spinwheel/internal/pkg/errs"
	"spinwheel/internal/usecase/shared"

	"github.com/google/uuid"
)

type Remaining struct {
	Free  int
	Bonus int
}

type SpinOutcome struct {
	SpinID      uuid.UUID
	VoucherID   uuid.UUID
	VoucherName string
	VoucherCode string
	Kind        spin.Kind
	Remaining   Remaining
}

type SpinCommands interface {
	Spin(ctx context.Context, principal user.Principal, ip string) (*SpinOutcome, error)
}

type spinCommandsImpl struct {
	runner   shared.TxRunner
	spins    SpinRepository
	vouchers VoucherRepository
	reads    WheelReads
	clock    clock.Clock
	cfg      config.WheelConfig
	pick     func(n int) int
}

func NewSpinCommands(
	runner shared.TxRunner,
	spins SpinRepository,
	vouchers VoucherRepository,
	reads WheelReads,
	clk clock.Clock,
	cfg config.WheelConfig,
) SpinCommands {
	return &spinCommandsImpl{
		runner:   runner,
		spins:    spins,
		vouchers: vouchers,
		reads:    reads,
		clock:    clk,
		cfg:      cfg,
		pick:     rand.IntN,
	}
}

// Spin is the allocation engine: it recomputes the caller's entitlement,
// draws uniformly from the currently eligible vouchers and commits the spin
// record together with the voucher counter in one serializable transaction.
// When the conditional counter increment loses a race for the last slot, the
// eligibility draw is re-run exactly once before giving up.
func (c *spinCommandsImpl) Spin(ctx context.Context, principal user.Principal, ip string) (*SpinOutcome, error) {
	if principal.ID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	if !principal.HasPhone() {
		return nil, errs.ErrMissingPhone
	}

	now := c.clock.Now()
	dayStart := c.clock.StartOfToday()
	dayEnd := dayStart.Add(24 * time.Hour)

	var outcome *SpinOutcome
	err := c.runner.Serializable(ctx, func(tx db.DBTX) error {
		counts, err := c.reads.EntitlementCounts(ctx, tx, principal.Phone, dayStart, dayEnd)
		if err != nil {
			return markStorageErr(err)
		}

		var kind spin.Kind
		switch {
		case counts.FreeUsed < c.cfg.MaxFreePerDay:
			kind = spin.KindFree
		case counts.ShareDoneToday && counts.BonusUsed < c.cfg.MaxBonusPerDay:
			kind = spin.KindBonus
		default:
			return errs.ErrEntitlementExhausted
		}

		// One extra attempt covers the window between the eligibility read
		// and the conditional increment; a second failure means the house has
		// genuinely run dry.
		for attempt := 0; attempt < 2; attempt++ {
			candidates, err := c.reads.EligibleVouchers(ctx, tx, now, dayStart, dayEnd)
			if err != nil {
				return markStorageErr(err)
			}
			if len(candidates) == 0 {
				// The spin is not charged: no record is created when no real
				// chance to win was granted.
				return errs.ErrNoRewardAvailable
			}

			selected := candidates[c.pick(len(candidates))]

			ok, err := c.vouchers.IncrementUsedCount(ctx, tx, selected.ID)
			if err != nil {
				return markStorageErr(err)
			}
			if !ok {
				continue
			}

			spinID, err := c.spins.Create(ctx, tx, &SpinRecord{
				UserID:    principal.ID,
				Phone:     principal.Phone,
				VoucherID: &selected.ID,
				Result:    selected.Name,
				IP:        ip,
				Kind:      kind,
			})
			if err != nil {
				return markStorageErr(err)
			}

			remaining := Remaining{
				Free:  max(0, c.cfg.MaxFreePerDay-counts.FreeUsed),
				Bonus: max(0, c.cfg.MaxBonusPerDay-counts.BonusUsed),
			}
			if kind == spin.KindFree {
				remaining.Free = max(0, c.cfg.MaxFreePerDay-counts.FreeUsed-1)
			} else {
				remaining.Bonus = max(0, c.cfg.MaxBonusPerDay-counts.BonusUsed-1)
			}

			outcome = &SpinOutcome{
				SpinID:      spinID,
				VoucherID:   selected.ID,
				VoucherName: selected.Name,
				VoucherCode: selected.Code,
				Kind:        kind,
				Remaining:   remaining,
			}
			return nil
		}

		return errs.ErrNoRewardAvailable
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}

func markStorageErr(err error) error {
	if infra.IsKind(err, infra.KindUnavailable) {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
