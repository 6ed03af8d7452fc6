package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devbhoomi/tourism-api/internal/config"
	"github.com/devbhoomi/tourism-api/internal/pkg/cleanup"
	"github.com/devbhoomi/tourism-api/internal/pkg/database"
	"github.com/devbhoomi/tourism-api/internal/pkg/errorhandler"
	"github.com/devbhoomi/tourism-api/internal/pkg/imaging"
	"github.com/devbhoomi/tourism-api/internal/pkg/jwt"
	"github.com/devbhoomi/tourism-api/internal/pkg/metrics"
	"github.com/devbhoomi/tourism-api/internal/pkg/storage"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)
	errorhandler.SetExposeDetails(cfg.ExposeErrorDetails)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("storage", cfg.StorageDriver).
		Msg("Starting Tourism API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	// Redis only backs the cleanup retry queue; without it failures are logged and counted.
	rdb, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(rdb)

	storageCtx, cancelStorage := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := storage.New(storageCtx, cfg.Storage())
	cancelStorage()
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("Failed to initialise file storage")
	}

	processor := imaging.NewProcessor(imaging.Config{MaxDimension: cfg.ImageMaxDimension})
	files := upload.NewHandler(store, processor, cleanup.NewReporter(cleanup.NewQueue(rdb)))

	deps := &dependencies{
		cfg:   cfg,
		db:    db,
		files: files,
		jwt:   jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL),
	}
	if cfg.MetricsEnabled {
		deps.registry = metrics.InitRegistry()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(deps),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
