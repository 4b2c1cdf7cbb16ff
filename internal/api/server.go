// Copyright (c) 2026 Lemraya. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/lemraya/lemraya-api/internal/article"
	"github.com/lemraya/lemraya-api/internal/dictionary"
	"github.com/lemraya/lemraya-api/internal/info"
	"github.com/lemraya/lemraya-api/internal/platform/config"
	"github.com/lemraya/lemraya-api/internal/platform/constants"
	"github.com/lemraya/lemraya-api/internal/platform/middleware"
	"github.com/lemraya/lemraya-api/internal/preference"
	"github.com/lemraya/lemraya-api/internal/verbtable"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Health is the /api/health handler — always returns 200 if the process is alive.
	Health http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when the database is reachable.
	Readiness http.HandlerFunc

	// Article serves article transcriptions and playback metadata.
	Article *article.Handler

	// Dictionary serves dictionary search and single-entry lookup.
	Dictionary *dictionary.Handler

	// VerbTables serves the binyan lists and conjugation tables.
	VerbTables *verbtable.Handler

	// Info serves the transliteration map and vowel reference content.
	Info *info.Handler

	// Preferences serves per-user starred items and video order.
	Preferences *preference.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// Authorization is split at the routing layer: content a visitor may preview
// (articles, reference info) carries optional authentication, everything
// else requires a verified bearer token before the handler runs.
func NewServer(appContext context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(appContext))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated readiness probe for container orchestration.
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Get("/health", h.Health)

		// Public content, identity attached when a valid token is present.
		api.Group(func(public chi.Router) {
			public.Use(middleware.OptionalAuth(verifier))
			public.Mount("/article", h.Article.Routes())
			public.Mount("/info", h.Info.Routes())
		})

		// Subscriber content and per-user state.
		api.Group(func(private chi.Router) {
			private.Use(middleware.RequireAuth(verifier))
			private.Mount("/dictionary", h.Dictionary.Routes())
			private.Mount("/verb-tables", h.VerbTables.Routes())
			private.Mount("/user", h.Preferences.Routes())
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
