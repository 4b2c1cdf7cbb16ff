// Copyright (c) 2026 Lemraya. All rights reserved.

// Command api is the entry point for the Lemraya HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to the hosted PostgreSQL database (pgxpool).
//  4. Select the token verifier (local JWT secret or remote auth endpoint).
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/lemraya/lemraya-api/internal/api"
	"github.com/lemraya/lemraya-api/internal/article"
	"github.com/lemraya/lemraya-api/internal/dictionary"
	"github.com/lemraya/lemraya-api/internal/info"
	"github.com/lemraya/lemraya-api/internal/platform/config"
	"github.com/lemraya/lemraya-api/internal/platform/constants"
	"github.com/lemraya/lemraya-api/internal/platform/middleware"
	pgstore "github.com/lemraya/lemraya-api/internal/platform/postgres"
	"github.com/lemraya/lemraya-api/internal/platform/sec"
	"github.com/lemraya/lemraya-api/internal/preference"
	"github.com/lemraya/lemraya-api/internal/verbtable"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Token Verifier ─────────────────────────────────────────────────
	// Local validation when the signing secret is shared with this service,
	// remote validation against the auth provider otherwise.
	var verifier middleware.TokenVerifier
	if cfg.AuthJWTSecret != "" {
		verifier, err = sec.NewJWTVerifier(cfg.AuthJWTSecret)
		must(log, err, "initialize jwt verifier")
		log.Info("token_verifier_selected", slog.String("mode", "local_jwt"))
	} else {
		verifier, err = sec.NewRemoteVerifier(cfg.AuthURL, cfg.AuthAPIKey)
		must(log, err, "initialize remote verifier")
		log.Info("token_verifier_selected", slog.String("mode", "remote"))
	}

	// ── 5. Health handlers (wired with real dependency checkers) ──────────
	health, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
	}, log)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	articleService := article.NewService(article.NewPostgresRepository(pool), log)
	dictionaryService := dictionary.NewService(dictionary.NewPostgresRepository(pool), log)
	verbTableService := verbtable.NewService(verbtable.NewPostgresRepository(pool), log)
	infoService := info.NewService(info.NewPostgresRepository(pool), log)
	preferenceService := preference.NewService(preference.NewPostgresRepository(pool), log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Health:      health,
		Readiness:   readiness,
		Article:     article.NewHandler(articleService),
		Dictionary:  dictionary.NewHandler(dictionaryService),
		VerbTables:  verbtable.NewHandler(verbTableService),
		Info:        info.NewHandler(infoService),
		Preferences: preference.NewHandler(preferenceService),
	}

	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	server := api.NewServer(appCtx, cfg, log, verifier, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
