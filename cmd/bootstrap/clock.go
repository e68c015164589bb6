package bootstrap

import (
	"spinwheel/internal/pkg/clock"
	"spinwheel/internal/pkg/config"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		fx.Annotate(
			NewAppClock,
			fx.As(new(clock.Clock)),
		),
	),
)

// NewAppClock builds the process-wide wall clock in the promotion timezone.
// Every day-boundary decision in the service goes through this clock.
func NewAppClock(cfg config.WheelConfig) (*clock.WallClock, error) {
	return clock.NewWallClock(cfg.TimeZone)
}
