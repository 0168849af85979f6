// Package httptransport assembles the HTTP surface: middleware chain,
// versioned API routes, and operational endpoints.
package httptransport

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"verid/internal/audit"
	"verid/internal/ratelimit"
	validatehandler "verid/internal/validate/handler"
	"verid/pkg/platform/httputil"
	"verid/pkg/platform/middleware/metadata"
	"verid/pkg/platform/middleware/requestid"
	"verid/pkg/platform/middleware/requesttime"
)

// Deps carries everything the router mounts. Limiter and AuditStore may be
// nil; the corresponding routes and middleware are skipped.
type Deps struct {
	Validate   *validatehandler.Handler
	Limiter    *ratelimit.Middleware
	AuditStore audit.Store
	// Health reports readiness of backing resources; nil means always ready.
	Health func(ctx context.Context) error
}

// NewRouter wires all public endpoints.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)

	r.Get("/healthz", handleHealth(deps.Health))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		if deps.Limiter != nil {
			r.Use(deps.Limiter.Handler)
		}
		deps.Validate.Register(r)

		if deps.AuditStore != nil {
			r.Get("/audit/recent", handleAuditRecent(deps.AuditStore))
		}
	})

	return r
}

func handleHealth(health func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			if err := health(r.Context()); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "degraded",
				})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// handleAuditRecent exposes the tail of the audit trail for operators.
func handleAuditRecent(store audit.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 1000 {
				limit = n
			}
		}

		events, err := store.ListRecent(r.Context(), limit)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"events": events})
	}
}
