package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/pubg-dashboard/stats-api/internal/dashboard"
	"github.com/pubg-dashboard/stats-api/internal/handlers"
	"github.com/pubg-dashboard/stats-api/internal/limiter"
	"github.com/pubg-dashboard/stats-api/internal/worker"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Action: func(c *cli.Context) error {
			cfg, logger, svc, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			sugar := logger.Sugar()

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			var rdb *redis.Client
			if cfg.RedisURL != "" {
				opts, err := redis.ParseURL(cfg.RedisURL)
				if err != nil {
					return fmt.Errorf("parse REDIS_URL: %w", err)
				}
				rdb = redis.NewClient(opts)
				defer rdb.Close()
				if err := rdb.Ping(ctx).Err(); err != nil {
					sugar.Warnw("Redis unreachable at startup", "error", err)
				}
			}

			pool := worker.NewPool(worker.PoolConfig{
				WorkerCount: cfg.WorkerCount,
				QueueSize:   cfg.QueueSize,
				Logger:      logger,
			})
			pool.Start(ctx)
			defer pool.Stop()

			sessions := dashboard.NewManager(dashboard.Config{
				Service: svc,
				Pool:    pool,
				Logger:  logger,
				TTL:     cfg.SessionTTL,
			})
			if err := sessions.Start(); err != nil {
				return err
			}
			defer sessions.Stop()

			h := handlers.New(handlers.Config{
				Acquisition:    svc,
				Sessions:       sessions,
				WorkerPool:     pool,
				Redis:          rdb,
				Limiter:        limiter.New(rdb, cfg.RateLimitPerSecond, cfg.RateLimitBurst),
				AllowedOrigins: cfg.AllowedOrigins,
				Logger:         logger,
			})

			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.Port),
				Handler:           h.Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				sugar.Infow("HTTP server listening", "addr", srv.Addr, "env", cfg.Env)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				sugar.Info("Shutting down HTTP server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})

			return g.Wait()
		},
	}
}
