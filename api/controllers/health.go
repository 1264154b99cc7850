package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/packfinderz-admin/api/responses"
	"github.com/angelmondragon/packfinderz-admin/pkg/config"
	pkgerrors "github.com/angelmondragon/packfinderz-admin/pkg/errors"
	"github.com/angelmondragon/packfinderz-admin/pkg/logger"
)

const readyTimeout = 2 * time.Second

// Pinger is satisfied by optional backing services such as the export cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-PackFinderz-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the export cache when one is wired. A nil pinger means the
// cache is disabled and the service is ready on its own.
func HealthReady(cfg *config.Config, logg *logger.Logger, cache Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-PackFinderz-Env", cfg.App.Env)

		checks := map[string]string{"cache": "disabled"}
		if cache != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
			defer cancel()
			if err := cache.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "export cache unreachable"))
				return
			}
			checks["cache"] = "ok"
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
