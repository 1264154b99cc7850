package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/packfinderz-admin/api/controllers"
	analyticscontrollers "github.com/angelmondragon/packfinderz-admin/api/controllers/analytics"
	"github.com/angelmondragon/packfinderz-admin/api/middleware"
	"github.com/angelmondragon/packfinderz-admin/pkg/config"
	"github.com/angelmondragon/packfinderz-admin/pkg/logger"
)

// NewRouter mounts health, metrics and the admin analytics API. cache and
// metricsHandler are optional.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	datasets analyticscontrollers.DatasetResolver,
	cache controllers.Pinger,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, cache))
	})

	if metricsHandler != nil && cfg.Metrics.Enabled {
		r.Method(http.MethodGet, cfg.Metrics.Path, metricsHandler)
	}

	r.Route("/api/admin/v1/analytics", func(r chi.Router) {
		r.Get("/", analyticscontrollers.ListDatasets(datasets, logg))
		r.Route("/{dataset}", func(r chi.Router) {
			r.Get("/", analyticscontrollers.QueryDataset(datasets, logg))
			r.Post("/query", analyticscontrollers.QueryDatasetBody(datasets, logg))
			r.Get("/export", analyticscontrollers.ExportDataset(datasets, logg))
		})
	})

	return r
}
