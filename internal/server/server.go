// Package server boots the LeadHub process: configuration, Mongo, Redis,
// storage, background workers, the scheduler and both the HTTP and gRPC
// listeners.
package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/leadhub/app/jobs"
	"github.com/shashiranjanraj/leadhub/app/routes"
	"github.com/shashiranjanraj/leadhub/config"
	"github.com/shashiranjanraj/leadhub/internal/store"
	"github.com/shashiranjanraj/leadhub/pkg/cache"
	"github.com/shashiranjanraj/leadhub/pkg/grpcserver"
	"github.com/shashiranjanraj/leadhub/pkg/logger"
	"github.com/shashiranjanraj/leadhub/pkg/metrics"
	"github.com/shashiranjanraj/leadhub/pkg/middleware"
	"github.com/shashiranjanraj/leadhub/pkg/queue"
	"github.com/shashiranjanraj/leadhub/pkg/reqid"
	"github.com/shashiranjanraj/leadhub/pkg/response"
	"github.com/shashiranjanraj/leadhub/pkg/router"
	"github.com/shashiranjanraj/leadhub/pkg/schedule"
	"github.com/shashiranjanraj/leadhub/pkg/session"
	"github.com/shashiranjanraj/leadhub/pkg/storage"
	"github.com/shashiranjanraj/leadhub/pkg/workerpool"
)

const shutdownGrace = 15 * time.Second

// Start boots every subsystem and blocks until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := store.Connect(ctx); err != nil {
		return err
	}
	defer store.Close(context.Background())

	// Redis is degraded-mode optional: sessions and caching no-op without it.
	if err := cache.Connect(); err != nil {
		logger.Warn("server: redis unavailable, caching disabled", "error", err)
	} else {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}

	storage.Connect()

	queue.UseCollection(store.Collection(store.ColFailed))
	jobs.Register()
	queue.StartWorkers(ctx, 5)

	registerListeners()
	schedule.Cron("0 3 * * *").WithoutOverlapping().Name("stats.rollup").Run(func() {
		if err := (jobs.StatsRollupJob{}).Handle(); err != nil {
			logger.Error("server: stats rollup", "error", err)
		}
	})
	schedule.Start(ctx)

	pool := workerpool.New(20)
	defer pool.Shutdown()

	grpcSrv, _, err := grpcserver.Start(config.GRPCPort())
	if err != nil {
		return err
	}
	defer grpcserver.Stop(grpcSrv)

	httpSrv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           buildHandler(pool),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", httpSrv.Addr, "env", config.AppEnv())
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

func buildHandler(pool *workerpool.Pool) http.Handler {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
		session.Middleware(session.DefaultOptions()),
	)

	r.Get("/healthz", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})
	r.Get("/metrics", "metrics", metrics.Handler())
	r.Post("/api/graphql", "graphql", graphqlHandler())

	routes.RegisterAPI(r, pool)
	return r.Handler()
}
