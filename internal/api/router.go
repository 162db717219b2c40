package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/exercise-tracker/internal/api/handlers"
	"github.com/baharkarakas/exercise-tracker/internal/api/httpx"
	"github.com/baharkarakas/exercise-tracker/internal/config"
	"github.com/baharkarakas/exercise-tracker/internal/metrics"
	"github.com/baharkarakas/exercise-tracker/internal/middleware"
	"github.com/baharkarakas/exercise-tracker/internal/services"
	"github.com/baharkarakas/exercise-tracker/web"
)

type RouterDeps struct {
	Cfg  config.Config
	Svc  *services.ExerciseService
	// Ping reports store health for /health; nil means always healthy.
	Ping func(context.Context) error
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.AccessLog, middleware.HTTPMetrics, middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// landing page & assets
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		page, err := web.IndexHTML()
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	})
	r.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.FS(web.Public()))))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if d.Ping != nil {
			if err := d.Ping(r.Context()); err != nil {
				slog.Warn("health check failed", "err", err)
				httpx.WriteError(w, http.StatusServiceUnavailable, "store_unavailable", "store unavailable")
				return
			}
		}
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())

	h := handlers.NewExerciseHandler(d.Svc)
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", h.CreateUser)
		r.Get("/", h.ListUsers)
		r.Post("/{id}/exercises", h.CreateExercise)
		r.Get("/{id}/logs", h.GetLog)
	})

	return r
}
