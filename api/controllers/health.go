package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/multistore-admin/api/responses"
	"github.com/angelmondragon/multistore-admin/pkg/config"
	pkgerrors "github.com/angelmondragon/multistore-admin/pkg/errors"
	"github.com/angelmondragon/multistore-admin/pkg/logger"
)

// Pinger is any dependency that can report its reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-MultiStore-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the marketplace store and, when configured, redis. Nil
// dependencies are reported as skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, store Pinger, cache Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-MultiStore-Env", cfg.App.Env)

		checks := map[string]string{
			"store": checkStatus(r.Context(), store),
			"redis": checkStatus(r.Context(), cache),
		}
		for name, status := range checks {
			if status == "down" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, name+" unavailable").WithDetails(checks))
				return
			}
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}

func checkStatus(ctx context.Context, p Pinger) string {
	if p == nil {
		return "skipped"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
