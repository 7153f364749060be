package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/timeformoney/bookkeeping/internal/api"
	"github.com/timeformoney/bookkeeping/internal/infrastructure/db/postgres"
	"github.com/timeformoney/bookkeeping/internal/pkg/config"
	"github.com/timeformoney/bookkeeping/pkg/logger"

	_ "github.com/timeformoney/bookkeeping/docs"
)

// @title        TimeForMoney Bookkeeping API
// @version      1.0
// @description  Bookkeeping backend for a freelance practice: clients, billable sessions, payments and payment-to-session allocations.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	db, err := postgres.Open(cfg.Database.URL, cfg.Database.MaxIdleConns, cfg.Database.MaxOpenConns)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("postgres migration failed")
	}

	e := api.NewRouter(db, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting api server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
