package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"verid/internal/audit"
	auditmemory "verid/internal/audit/store/memory"
	"verid/internal/platform/config"
	"verid/internal/platform/httpserver"
	"verid/internal/platform/logger"
	platformredis "verid/internal/platform/redis"
	"verid/internal/ratelimit"
	httptransport "verid/internal/transport/http"
	validatehandler "verid/internal/validate/handler"
	"verid/internal/validate/metrics"
	"verid/internal/validate/service"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := platformredis.New(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	var limiterStore ratelimit.Store
	if redisClient != nil {
		limiterStore = ratelimit.NewRedisStore(redisClient.Client)
		log.Info("rate limiter using redis store")
	} else {
		limiterStore = ratelimit.NewInMemoryStore()
		log.Info("rate limiter using in-memory store")
	}
	limiter := ratelimit.New(limiterStore, cfg.RateLimitPerWindow, cfg.RateLimitWindow, log,
		ratelimit.WithDisabled(cfg.RateLimitDisabled))

	auditStore := auditmemory.NewInMemoryStore(0)
	publisher := audit.NewPublisher(cfg.AuditBufferSize, log)
	worker := audit.NewWorker(auditStore, publisher.Events(), log)

	svc := service.New(log,
		service.WithMetrics(metrics.New()),
		service.WithAuditPublisher(publisher),
	)

	var health func(ctx context.Context) error
	if redisClient != nil {
		health = redisClient.Health
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Validate:   validatehandler.New(svc, log),
		Limiter:    limiter,
		AuditStore: auditStore,
		Health:     health,
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting verid server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		err := worker.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped", "audit_events_dropped", publisher.Dropped())
}
