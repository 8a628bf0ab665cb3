package components

import (
	"tenancy-service/internal/usecase"
	"tenancy-service/internal/usecase/commands"
	"tenancy-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewApartmentCommands,
		fx.Annotate(
			commands.NewAllotmentManager,
			fx.As(new(commands.AllotmentCommands)),
			fx.As(new(commands.AllotmentCommitter)),
		),
		commands.NewRequestCommands,
		commands.NewPaymentCommands,
		commands.NewLeaveCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewApartmentQueries,
		queries.NewRequestQueries,
		queries.NewLedgerQueries,
		queries.NewPaymentQueries,
		queries.NewLeaveQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
