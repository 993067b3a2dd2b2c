package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"washdesk/internal/domain/user"
	"washdesk/internal/handler/api"
	"washdesk/internal/handler/middleware"
	"washdesk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Zone         *api.ZoneHandler
	Availability *api.AvailabilityHandler
	Customer     *api.CustomerHandler
	Catalog      *api.CatalogHandler
	Booking      *api.BookingHandler
	Invoice      *api.InvoiceHandler
	Settings     *api.SettingsHandler
	Dashboard    *api.DashboardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, metrics *middleware.Metrics, registry *prometheus.Registry) {
	setupMiddleware(engine, cfg, metrics)
	setupRoutes(engine, cfg, h, authMiddleware, registry)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, metrics *middleware.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	if cfg.Metrics.Enabled {
		engine.Use(metrics.Middleware())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, registry *prometheus.Registry) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	managerOnly := authMiddleware.RequireRoleAtLeast(user.RoleManager)
	adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/settings", Handler: h.Settings.Get},
		})

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			zones := authed.Group("/zones")
			addRoutes(zones, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Zone.List},
				{Method: http.MethodGet, Path: "/available", Handler: h.Availability.AvailableZones},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Zone.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Zone.Create, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Zone.Update, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Zone.Delete, Mw: []gin.HandlerFunc{managerOnly}},
			})

			customers := authed.Group("/customers")
			addRoutes(customers, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Customer.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Customer.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Customer.Delete, Mw: []gin.HandlerFunc{managerOnly}},
			})

			categories := authed.Group("/categories")
			addRoutes(categories, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListCategories},
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateCategory, Mw: []gin.HandlerFunc{managerOnly}},
			})

			taxes := authed.Group("/taxes")
			addRoutes(taxes, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListTaxes},
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateTax, Mw: []gin.HandlerFunc{managerOnly}},
			})

			products := authed.Group("/products")
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListProducts},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetProduct},
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateProduct, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateProduct, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeleteProduct, Mw: []gin.HandlerFunc{managerOnly}},
			})

			bookings := authed.Group("/bookings")
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel},
			})

			invoices := authed.Group("/invoices")
			addRoutes(invoices, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Invoice.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Invoice.List},
				{Method: http.MethodGet, Path: "/latest-prefix", Handler: h.Invoice.LatestPrefix},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Invoice.Get},
			})

			dashboard := authed.Group("/dashboard")
			addRoutes(dashboard, []route{
				{Method: http.MethodGet, Path: "/stats", Handler: h.Dashboard.Stats},
			})

			addRoutes(authed, []route{
				{Method: http.MethodPut, Path: "/settings", Handler: h.Settings.Update, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
