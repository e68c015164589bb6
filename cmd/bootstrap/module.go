package bootstrap

import (
	"spinwheel/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	ClockModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
