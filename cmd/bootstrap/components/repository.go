package components

import (
	"washdesk/internal/infra/readstore"
	repo_impl "washdesk/internal/infra/repository"
	"washdesk/internal/usecase/commands"
	"washdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	writeModule,
	readModule,
)

var writeModule = fx.Module("repository/write",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewZoneRepository,
			fx.As(new(commands.ZoneRepository)),
		),
		fx.Annotate(
			repo_impl.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(commands.CatalogRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewInvoiceRepository,
			fx.As(new(commands.InvoiceRepository)),
		),
		fx.Annotate(
			repo_impl.NewCounterRepository,
			fx.As(new(commands.CounterRepository)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		fx.Annotate(
			repo_impl.NewSettingsRepository,
			fx.As(new(commands.SettingsRepository)),
		),
	),
)

var readModule = fx.Module("repository/read",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewZoneReadStore,
			fx.As(new(queries.ZoneReadStore)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.BookingSlotReadStore)),
		),
		fx.Annotate(
			readstore.NewInvoiceReadStore,
			fx.As(new(queries.InvoiceReadStore)),
		),
		fx.Annotate(
			readstore.NewSettingsReadStore,
			fx.As(new(queries.SettingsReadStore)),
		),
		fx.Annotate(
			readstore.NewDashboardReadStore,
			fx.As(new(queries.DashboardReadStore)),
		),
	),
)
