package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/exercise-tracker/internal/api"
	"github.com/baharkarakas/exercise-tracker/internal/config"
	"github.com/baharkarakas/exercise-tracker/internal/db"
	"github.com/baharkarakas/exercise-tracker/internal/logger"
	"github.com/baharkarakas/exercise-tracker/internal/metrics"
	"github.com/baharkarakas/exercise-tracker/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := db.Open(ctx, db.Options{
		URI:      cfg.StoreURI,
		Database: cfg.StoreDatabase,
		Migrate:  cfg.Migrate,
	})
	if err != nil {
		log.Error("store connect", "err", err)
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Error("store close", "err", err)
		}
	}()

	metrics.Init()
	svc := services.NewExerciseService(store.Repos)
	r := api.NewRouter(api.RouterDeps{Cfg: cfg, Svc: svc, Ping: store.Ping})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "store", store.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
}
