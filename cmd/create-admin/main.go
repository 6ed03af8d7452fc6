// Command create-admin seeds an administrator account.
//
//	go run ./cmd/create-admin -email ops@example.com -name "Ops" -password "..."
//
// The password may also come from ADMIN_PASSWORD so it stays out of shell history.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/devbhoomi/tourism-api/internal/config"
	"github.com/devbhoomi/tourism-api/internal/domain/auth"
	"github.com/devbhoomi/tourism-api/internal/pkg/database"
	"github.com/devbhoomi/tourism-api/internal/pkg/jwt"
	"github.com/devbhoomi/tourism-api/internal/pkg/logger"
	"github.com/devbhoomi/tourism-api/internal/pkg/validator"
)

type adminInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
}

func main() {
	var in adminInput
	flag.StringVar(&in.Email, "email", "", "admin email")
	flag.StringVar(&in.Name, "name", "", "display name")
	flag.StringVar(&in.Password, "password", os.Getenv("ADMIN_PASSWORD"), "password (defaults to $ADMIN_PASSWORD)")
	flag.Parse()

	if fields := validator.Validate(&in); fields != nil {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(os.Stderr, "%s: %s\n", k, fields[k])
		}
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	if err := logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env}); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise logger")
	}

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	service := auth.NewService(auth.NewRepository(db), jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := service.CreateAdmin(ctx, in.Email, in.Password, in.Name)
	if errors.Is(err, auth.ErrEmailAlreadyExists) {
		log.Warn().Str("email", in.Email).Msg("Admin already exists")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin")
	}

	log.Info().Int64("id", admin.ID).Str("email", admin.Email).Msg("Admin created")
}
