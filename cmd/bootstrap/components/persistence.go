package components

import (
	"spinwheel/internal/infra/readstore"
	"spinwheel/internal/infra/repository"
	"spinwheel/internal/usecase/commands"
	"spinwheel/internal/usecase/queries"
	"spinwheel/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewWheelReadStore,
			fx.As(new(commands.WheelReads)),
		),
		fx.Annotate(
			readstore.NewSpinReadStore,
			fx.As(new(queries.SpinReads)),
		),
		fx.Annotate(
			readstore.NewVoucherReadStore,
			fx.As(new(queries.VoucherReads)),
		),
		fx.Annotate(
			readstore.NewShareConfigReadStore,
			fx.As(new(queries.ShareConfigReads)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			shared.NewPgxTxRunner,
			fx.As(new(shared.TxRunner)),
		),
		fx.Annotate(
			repository.NewSpinRepository,
			fx.As(new(commands.SpinRepository)),
		),
		fx.Annotate(
			repository.NewShareRepository,
			fx.As(new(commands.ShareRepository)),
		),
		fx.Annotate(
			repository.NewVoucherRepository,
			fx.As(new(commands.VoucherRepository)),
		),
		fx.Annotate(
			repository.NewShareConfigRepository,
			fx.As(new(commands.ShareConfigRepository)),
		),
	),
)
