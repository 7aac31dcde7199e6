package controllers

import (
	"net/http"

	"github.com/dvillegas/mercadia-backend/api/responses"
	"github.com/dvillegas/mercadia-backend/pkg/config"
	"github.com/dvillegas/mercadia-backend/pkg/db"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Mercadia-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when every wired dependency answers a ping.
// Nil pingers (eg. redis disabled) are skipped.
func HealthReady(cfg *config.Config, pingers ...db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Mercadia-Env", cfg.App.Env)
		for _, p := range pingers {
			if p == nil {
				continue
			}
			if err := p.Ping(r.Context()); err != nil {
				responses.WriteSuccessStatus(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
