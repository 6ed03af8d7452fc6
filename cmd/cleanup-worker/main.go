package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/devbhoomi/tourism-api/internal/config"
	"github.com/devbhoomi/tourism-api/internal/pkg/cleanup"
	"github.com/devbhoomi/tourism-api/internal/pkg/database"
	"github.com/devbhoomi/tourism-api/internal/pkg/logger"
	"github.com/devbhoomi/tourism-api/internal/pkg/storage"
)

const idleLogEvery = 10 * time.Minute

func main() {
	cfg := config.Load()
	if err := logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env}); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise logger")
	}

	log.Info().
		Dur("poll_interval", cfg.CleanupPollInterval).
		Int("max_attempts", cfg.CleanupMaxAttempts).
		Msg("Starting cleanup-worker")

	if cfg.RedisURL == "" {
		log.Fatal().Msg("REDIS_URL is required for cleanup-worker")
	}
	rdb, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(rdb)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.New(ctx, cfg.Storage())
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("Failed to initialise file storage")
	}

	queue := cleanup.NewQueue(rdb)
	retrier := cleanup.NewRetrier(queue, store, cfg.CleanupMaxAttempts)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-sigChan
		log.Info().Msg("Shutdown signal received")
		cancel()
	}()

	ticker := time.NewTicker(cfg.CleanupPollInterval)
	defer ticker.Stop()
	lastIdleLog := time.Time{}

	for {
		n, err := retrier.Drain(ctx)
		switch {
		case err != nil && ctx.Err() == nil:
			log.Error().Err(err).Int("processed", n).Msg("Cleanup pass failed")
		case n > 0:
			dead, _ := queue.DeadLen(ctx)
			log.Info().Int("processed", n).Int64("dead_letters", dead).Msg("Cleanup pass done")
		default:
			if now := time.Now(); lastIdleLog.IsZero() || now.Sub(lastIdleLog) >= idleLogEvery {
				log.Debug().Msg("Idle: no pending cleanup failures")
				lastIdleLog = now
			}
		}

		select {
		case <-ctx.Done():
			log.Info().Msg("cleanup-worker stopped")
			return
		case <-ticker.C:
		}
	}
}
