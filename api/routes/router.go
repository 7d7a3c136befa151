package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/multistore-admin/api/controllers"
	admincontrollers "github.com/angelmondragon/multistore-admin/api/controllers/admin"
	"github.com/angelmondragon/multistore-admin/api/middleware"
	"github.com/angelmondragon/multistore-admin/internal/admin"
	"github.com/angelmondragon/multistore-admin/pkg/config"
	"github.com/angelmondragon/multistore-admin/pkg/logger"
	"github.com/angelmondragon/multistore-admin/pkg/redis"
)

// NewRouter wires the health probes, the metrics endpoint and the admin API.
// redisClient may be nil, in which case rate limiting falls back to a per
// process limiter and idempotent replay is off.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	adminService admin.Service,
	store controllers.Pinger,
	redisClient *redis.Client,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	policy := middleware.NewRateLimitPolicy("admin", cfg.RateLimit.Window, cfg.RateLimit.IPLimit)
	var cache controllers.Pinger
	var adminGuards []func(http.Handler) http.Handler
	if redisClient != nil {
		cache = redisClient
		adminGuards = append(adminGuards,
			middleware.RateLimit(policy, redisClient, logg),
			middleware.Idempotency(redisClient, logg),
		)
	} else {
		adminGuards = append(adminGuards, middleware.RateLimit(policy, middleware.NewLocalLimiter(), logg))
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, store, cache))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(adminGuards...)
		r.Get("/ping", controllers.AdminPing())

		r.Route("/v1", func(r chi.Router) {
			r.Get("/overview", admincontrollers.Overview(adminService, logg))

			r.Route("/reports", func(r chi.Router) {
				r.Get("/orders-trend", admincontrollers.OrderTrend(adminService, logg))
				r.Get("/revenue-trend", admincontrollers.RevenueTrend(adminService, logg))
				r.Get("/top-vendors", admincontrollers.TopVendors(adminService, cfg.Reports, logg))
				r.Get("/top-customers", admincontrollers.TopCustomers(adminService, cfg.Reports, logg))
				r.Get("/top-products", admincontrollers.TopProducts(adminService, cfg.Reports, logg))
				r.Get("/product-chart", admincontrollers.ProductChart(adminService, logg))
			})

			r.Get("/orders", admincontrollers.Orders(adminService, logg))

			r.Route("/products", func(r chi.Router) {
				r.Get("/", admincontrollers.Products(adminService, logg))
				r.Delete("/{productId}", admincontrollers.DeleteProduct(adminService, logg))
			})

			r.Route("/stores", func(r chi.Router) {
				r.Get("/", admincontrollers.Stores(adminService, logg))
				r.Get("/summary", admincontrollers.StoreSummary(adminService, logg))
			})

			r.Route("/vendors", func(r chi.Router) {
				r.Get("/", admincontrollers.Vendors(adminService, logg))
				r.Delete("/", admincontrollers.DeleteVendor(adminService, logg))
			})
		})
	})

	return r
}
