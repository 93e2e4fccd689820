// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

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

	"github.com/lumestudio/lume-api/internal/core/admin"
	"github.com/lumestudio/lume-api/internal/core/artist"
	"github.com/lumestudio/lume-api/internal/core/contact"
	"github.com/lumestudio/lume-api/internal/core/submission"
	"github.com/lumestudio/lume-api/internal/platform/config"
	"github.com/lumestudio/lume-api/internal/platform/constants"
	"github.com/lumestudio/lume-api/internal/platform/middleware"
	"github.com/lumestudio/lume-api/internal/platform/ratelimit"
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
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Artist serves the public roster, the gallery, and the admin CRUD.
	Artist *artist.Handler

	// Submission serves the application form and the review queue.
	Submission *submission.Handler

	// Contact serves the contact form.
	Contact *contact.Handler

	// Admin serves login and logout.
	Admin *admin.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(cfg *config.Config, log *slog.Logger, verifier middleware.SessionVerifier, limiter ratelimit.Limiter, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg, cfg.ExtraOriginList()))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		// Public, read-only.
		api.Route("/artists", h.Artist.RegisterPublicRoutes)
		api.Route("/works", h.Artist.RegisterGalleryRoutes)

		// Public writes, each behind its own fixed-window budget.
		api.Route("/contact", func(router chi.Router) {
			router.Use(middleware.Limit(limiter, "contact", constants.ContactLimit, constants.ContactWindow))
			h.Contact.RegisterRoutes(router)
		})
		api.Route("/submissions", func(router chi.Router) {
			router.Use(middleware.Limit(limiter, "submission", constants.SubmissionLimit, constants.SubmissionWindow))
			h.Submission.RegisterPublicRoutes(router)
		})

		// Admin panel. Login sits outside the session gate but inside the
		// login rate limit; everything else requires the session cookie.
		api.Route("/admin", func(router chi.Router) {
			router.Route("/login", func(login chi.Router) {
				login.Use(middleware.Limit(limiter, "login", constants.LoginLimit, constants.LoginWindow))
				h.Admin.RegisterRoutes(login)
			})

			router.Group(func(protected chi.Router) {
				protected.Use(middleware.RequireAdmin(verifier))
				protected.Route("/artists", h.Artist.RegisterAdminRoutes)
				protected.Route("/works", h.Artist.RegisterAdminWorkRoutes)
				protected.Route("/submissions", h.Submission.RegisterAdminRoutes)
			})
		})
	})

	// # Static Media
	// With the filesystem blob backend the API serves uploads directly.
	if cfg.BlobBackend == config.BlobFS {
		fileServer := http.FileServer(http.Dir(cfg.MediaRoot))
		r.Handle("/artists/*", fileServer)
		r.Handle("/submissions/*", fileServer)
	}

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
