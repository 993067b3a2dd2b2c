package components

import (
	"washdesk/internal/handler"
	"washdesk/internal/handler/api"
	"washdesk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewZoneHandler,
		api.NewAvailabilityHandler,
		api.NewCustomerHandler,
		api.NewCatalogHandler,
		api.NewBookingHandler,
		api.NewInvoiceHandler,
		api.NewSettingsHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
		middleware.NewMetrics,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	zone *api.ZoneHandler,
	availability *api.AvailabilityHandler,
	customer *api.CustomerHandler,
	catalog *api.CatalogHandler,
	booking *api.BookingHandler,
	invoice *api.InvoiceHandler,
	settings *api.SettingsHandler,
	dashboard *api.DashboardHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Zone:         zone,
		Availability: availability,
		Customer:     customer,
		Catalog:      catalog,
		Booking:      booking,
		Invoice:      invoice,
		Settings:     settings,
		Dashboard:    dashboard,
	}
}
