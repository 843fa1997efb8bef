// Package main is the entry point for rpsterm.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/samdwyer/rpsterm/internal/config"
	"github.com/samdwyer/rpsterm/internal/game"
	"github.com/samdwyer/rpsterm/internal/gamedata"
	"github.com/samdwyer/rpsterm/internal/logger"
	"github.com/samdwyer/rpsterm/internal/metrics"
	"github.com/samdwyer/rpsterm/internal/score"
	"github.com/samdwyer/rpsterm/internal/storage/memory"
	"github.com/samdwyer/rpsterm/internal/storage/redis"
	"github.com/samdwyer/rpsterm/internal/storage/sqlite"
	"github.com/samdwyer/rpsterm/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("rpsterm: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logCloser, err := logger.Setup(cfg.LogFile, cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	defer logCloser.Close()
	lg := logger.Get()
	logger.Info("rpsterm starting", "store", cfg.Store, "seed", cfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		Endpoint: cfg.OTelEndpoint,
		Headers:  cfg.OTelHeaders,
	})
	if err != nil {
		// Not fatal - the game still works without traces
		logger.Warn("telemetry setup failed", "error", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				lg.Warn("telemetry shutdown failed", "error", err)
			}
		}()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.New(reg)
	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, reg); err != nil {
				lg.Warn("metrics server stopped", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
	}

	store, storeCloser := openStore(ctx, cfg, rec, lg)
	defer storeCloser.Close()

	tracker := score.NewTracker(store, cfg.ScoreKey, lg)
	tracker.Load(ctx)

	registry, err := gamedata.LoadRegistry()
	if err != nil {
		return fmt.Errorf("load move table: %w", err)
	}

	g, err := game.New(game.Config{
		Seed:     cfg.Seed,
		Timing:   cfg.Timing(),
		Registry: registry,
		Tracker:  tracker,
		Metrics:  rec,
		Logger:   lg,
	})
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	err = g.Run(ctx)
	logger.Info("rpsterm exiting", "score", tracker.Summary())
	return err
}

// openStore opens the configured score store. If it cannot be reached the
// game falls back to an in-memory store and the score lasts for this run
// only.
func openStore(ctx context.Context, cfg config.Config, rec *metrics.Recorder, lg *slog.Logger) (score.Store, io.Closer) {
	var (
		store interface {
			score.Store
			io.Closer
		}
		err error
	)

	switch cfg.Store {
	case config.StoreSQLite:
		store, err = sqlite.Open(cfg.SQLitePath)
	case config.StoreRedis:
		store, err = redis.Open(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	default:
		store = memory.New()
	}

	if err != nil {
		rec.StoreError("open")
		lg.Warn("score store unavailable, score will not persist", "store", cfg.Store, "error", err)
		mem := memory.New()
		return mem, mem
	}
	lg.Info("score store opened", "store", cfg.Store)
	return store, store
}
