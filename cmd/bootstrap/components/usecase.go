package components

import (
	"spinwheel/internal/usecase/commands"
	"spinwheel/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSpinCommands,
		commands.NewShareCommands,
		commands.NewVoucherCommands,
		commands.NewShareConfigCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewWheelQueries,
		queries.NewSpinQueries,
		queries.NewVoucherQueries,
		queries.NewShareConfigQueries,
	),
)
