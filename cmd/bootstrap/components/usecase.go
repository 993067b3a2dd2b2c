package components

import (
	"washdesk/internal/pkg/clock"
	"washdesk/internal/usecase/commands"
	"washdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewZoneQueries,
		queries.NewAvailabilityQueries,
		queries.NewCustomerQueries,
		queries.NewCatalogQueries,
		queries.NewBookingQueries,
		queries.NewInvoiceQueries,
		queries.NewSettingsQueries,
		queries.NewDashboardQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewZoneCommands,
		commands.NewCustomerCommands,
		commands.NewCatalogCommands,
		commands.NewBookingCommands,
		commands.NewInvoiceCommands,
		commands.NewSettingsCommands,
	),
)
