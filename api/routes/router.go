package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dvillegas/mercadia-backend/api/controllers"
	reportcontrollers "github.com/dvillegas/mercadia-backend/api/controllers/reports"
	"github.com/dvillegas/mercadia-backend/api/middleware"
	"github.com/dvillegas/mercadia-backend/internal/reports"
	"github.com/dvillegas/mercadia-backend/pkg/config"
	"github.com/dvillegas/mercadia-backend/pkg/db"
	"github.com/dvillegas/mercadia-backend/pkg/enums"
	"github.com/dvillegas/mercadia-backend/pkg/logger"
	"github.com/dvillegas/mercadia-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	reportsService reports.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	pingers := []db.Pinger{dbP}
	if redisClient != nil {
		pingers = append(pingers, redisClient)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, pingers...))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/sellers/{sellerId}/report", reportcontrollers.PublicSellerReport(reportsService, logg))
	})

	r.Route("/api/v1/seller", func(r chi.Router) {
		r.Use(middleware.Authenticate(cfg.JWT, logg))
		r.Use(middleware.RequireRole(enums.UserRoleSeller, logg))

		r.Route("/reports", func(r chi.Router) {
			r.Get("/dashboard", reportcontrollers.SellerDashboard(reportsService, logg))
		})
	})

	return r
}
