package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/devbhoomi/tourism-api/internal/config"
	"github.com/devbhoomi/tourism-api/internal/domain/attraction"
	"github.com/devbhoomi/tourism-api/internal/domain/auth"
	"github.com/devbhoomi/tourism-api/internal/domain/booking"
	"github.com/devbhoomi/tourism-api/internal/domain/culture"
	"github.com/devbhoomi/tourism-api/internal/domain/district"
	"github.com/devbhoomi/tourism-api/internal/domain/gallery"
	"github.com/devbhoomi/tourism-api/internal/domain/history"
	"github.com/devbhoomi/tourism-api/internal/domain/hotel"
	"github.com/devbhoomi/tourism-api/internal/domain/search"
	"github.com/devbhoomi/tourism-api/internal/domain/season"
	"github.com/devbhoomi/tourism-api/internal/domain/state"
	"github.com/devbhoomi/tourism-api/internal/domain/subdistrict"
	"github.com/devbhoomi/tourism-api/internal/domain/team"
	"github.com/devbhoomi/tourism-api/internal/domain/territory"
	"github.com/devbhoomi/tourism-api/internal/domain/tourpackage"
	"github.com/devbhoomi/tourism-api/internal/domain/village"
	"github.com/devbhoomi/tourism-api/internal/domain/webstory"
	"github.com/devbhoomi/tourism-api/internal/domain/wildlife"
	"github.com/devbhoomi/tourism-api/internal/middleware"
	"github.com/devbhoomi/tourism-api/internal/pkg/jwt"
	"github.com/devbhoomi/tourism-api/internal/pkg/metrics"
	"github.com/devbhoomi/tourism-api/internal/pkg/response"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

const requestTimeout = 10 * time.Second

// dependencies are the shared resources every domain is built from.
type dependencies struct {
	cfg      *config.Config
	db       *sqlx.DB
	files    *upload.Handler
	jwt      *jwt.Service
	registry *prometheus.Registry // nil when metrics are disabled
}

func newRouter(deps *dependencies) http.Handler {
	cfg := deps.cfg
	db := deps.db
	files := deps.files

	authMiddleware := middleware.Auth(deps.jwt)
	loginLimiter := middleware.PerMinute(cfg.LoginRatePerMinute)
	searchLimiter := middleware.PerSecond(cfg.SearchRatePerSecond)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(auth.NewService(auth.NewRepository(db), deps.jwt))
	stateHandler := state.NewHandler(state.NewService(state.NewRepository(db), files), files)
	territoryHandler := territory.NewHandler(territory.NewService(territory.NewRepository(db), files), files)
	districtHandler := district.NewHandler(district.NewService(district.NewRepository(db), files), files)
	subdistrictHandler := subdistrict.NewHandler(subdistrict.NewService(subdistrict.NewRepository(db), files), files)
	villageHandler := village.NewHandler(village.NewService(village.NewRepository(db), files), files)
	hotelHandler := hotel.NewHandler(hotel.NewService(hotel.NewRepository(db), files), files)
	bookingHandler := booking.NewHandler(booking.NewService(booking.NewRepository(db)))
	wildlifeHandler := wildlife.NewHandler(wildlife.NewService(wildlife.NewRepository(db), files), files)
	cultureHandler := culture.NewHandler(culture.NewService(culture.NewRepository(db), files), files)
	galleryHandler := gallery.NewHandler(gallery.NewService(gallery.NewRepository(db), files), files)
	seasonHandler := season.NewHandler(season.NewService(season.NewRepository(db), files), files)
	historyHandler := history.NewHandler(history.NewService(history.NewRepository(db), files), files)
	teamHandler := team.NewHandler(team.NewService(team.NewRepository(db), files), files)
	storyHandler := webstory.NewHandler(webstory.NewService(webstory.NewRepository(db), files), files)
	packageHandler := tourpackage.NewHandler(tourpackage.NewService(tourpackage.NewRepository(db), files), files)
	attractionHandler := attraction.NewHandler(attraction.NewService(attraction.NewRepository(db), files), files)
	searchHandler := search.NewHandler(search.NewService(search.NewRepository(db), files, cfg.SearchLimitPerTable))

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	if deps.registry != nil {
		r.Use(middleware.Metrics)
	}
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", healthHandler(db))

	if deps.registry != nil {
		r.Handle("/metrics", metrics.Handler(deps.registry))
	}

	if cfg.UsesLocalStorage() {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
		r.Handle("/uploads/*", fs)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.Compress(5))
		r.Use(middleware.Timeout(requestTimeout))

		r.Mount("/auth", authHandler.Routes(authMiddleware, loginLimiter.Handler))
		r.Mount("/states", stateHandler.Routes(authMiddleware))
		r.Mount("/territories", territoryHandler.Routes(authMiddleware))
		r.Mount("/districts", districtHandler.Routes(authMiddleware))
		r.Mount("/subdistricts", subdistrictHandler.Routes(authMiddleware))
		r.Mount("/villages", villageHandler.Routes(authMiddleware))
		r.Mount("/hotels", hotelHandler.Routes(authMiddleware))
		r.Mount("/bookings", bookingHandler.Routes(authMiddleware))
		r.Mount("/wildlife", wildlifeHandler.Routes(authMiddleware))
		r.Mount("/culture", cultureHandler.Routes(authMiddleware))
		r.Mount("/gallery", galleryHandler.Routes(authMiddleware))
		r.Mount("/seasons", seasonHandler.Routes(authMiddleware))
		r.Mount("/history", historyHandler.Routes(authMiddleware))
		r.Mount("/team", teamHandler.Routes(authMiddleware))
		r.Mount("/web-stories", storyHandler.Routes(authMiddleware))
		r.Mount("/packages", packageHandler.Routes(authMiddleware))
		r.Mount("/attractions", attractionHandler.Routes(authMiddleware))
		r.Mount("/search", searchHandler.Routes(searchLimiter.Handler))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}

func healthHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok", "database": "skipped"}
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				status["status"] = "degraded"
				status["database"] = "unreachable"
				response.JSON(w, http.StatusServiceUnavailable, status)
				return
			}
			status["database"] = "ok"
		}
		response.OK(w, status)
	}
}
