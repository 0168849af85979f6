package ratelimit

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	dErrors "verid/pkg/domain-errors"
	"verid/pkg/platform/httputil"
	"verid/pkg/requestcontext"
)

// Middleware applies a per-client-IP limit to every request it wraps.
type Middleware struct {
	store    Store
	limit    int
	window   time.Duration
	logger   *slog.Logger
	disabled bool
}

// Option configures the Middleware.
type Option func(*Middleware)

// WithDisabled turns the limiter off entirely (for tests and demo mode).
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) {
		m.disabled = disabled
	}
}

// New constructs the middleware. limit requests per window, keyed by client
// IP as established by the metadata middleware.
func New(store Store, limit int, window time.Duration, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{
		store:  store,
		limit:  limit,
		window: window,
		logger: logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.disabled && logger != nil {
		logger.Info("rate limiting disabled")
	}
	return m
}

// Handler wraps next with the rate limit check. Limiter store failures fail
// open: an unreachable Redis must not take validation down with it.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.disabled {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		ip := requestcontext.ClientIP(ctx)
		if ip == "" {
			ip = r.RemoteAddr
		}

		result, err := m.store.Allow(ctx, ip, m.limit, m.window)
		if err != nil {
			if m.logger != nil {
				m.logger.ErrorContext(ctx, "rate limit check failed, allowing request",
					"error", err,
				)
			}
			next.ServeHTTP(w, r)
			return
		}

		addHeaders(w, result)

		if !result.Allowed {
			httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "rate limit exceeded"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func addHeaders(w http.ResponseWriter, result *Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}
