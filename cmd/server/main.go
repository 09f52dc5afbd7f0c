// Command server runs the lexicon search API.
//
// Startup sequence:
//  1. Load .env (best effort) and typed configuration from the environment
//  2. Configure zerolog (level, optional pretty console output)
//  3. Open the SQLite store, run migrations, optionally seed from JSONL
//  4. Initialize OpenTelemetry (when enabled)
//  5. Wire the Gin engine and serve with graceful shutdown
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sabdakosha/lexicon-backend/internal/config"
	httpapi "github.com/sabdakosha/lexicon-backend/internal/http"
	"github.com/sabdakosha/lexicon-backend/internal/observability"
	"github.com/sabdakosha/lexicon-backend/internal/repo"
	"github.com/sabdakosha/lexicon-backend/internal/sysutil"
)

const version = "1.0.0"

func main() {
	// Load .env for local development; real deployments set the environment.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	lg := log.With().Str("service", cfg.OTEL.ServiceName).Logger()

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		lg.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	if err := repo.AutoMigrate(db); err != nil {
		lg.Fatal().Err(err).Msg("migrate database")
	}

	// Seed the corpus on first boot only; an already-populated store wins.
	if cfg.SeedPath != "" {
		count, err := repo.CountEntries(context.Background(), db)
		if err != nil {
			lg.Fatal().Err(err).Msg("count entries")
		}
		if count == 0 {
			n, err := repo.SeedFromJSONL(context.Background(), db, cfg.SeedPath)
			if err != nil {
				lg.Fatal().Err(err).Str("path", cfg.SeedPath).Msg("seed corpus")
			}
			lg.Info().Int("entries", n).Str("path", cfg.SeedPath).Msg("corpus seeded")
		} else {
			lg.Info().Int64("entries", count).Msg("store already populated, skipping seed")
		}
	}

	// OpenTelemetry traces (no-op unless enabled).
	shutdownOTel, err := observability.SetupOTel(context.Background(), cfg.OTEL, version)
	if err != nil {
		lg.Fatal().Err(err).Msg("setup otel")
	}

	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	httpapi.RegisterRoutes(engine, db, lg, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		lg.Info().Str("addr", srv.Addr).Str("base", cfg.APIBasePath).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	lg.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lg.Error().Err(err).Msg("server shutdown")
	}
	if err := shutdownOTel(ctx); err != nil {
		lg.Error().Err(err).Msg("otel shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	lg.Info().Msg("bye")
}
