// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

// Command api is the entry point for the LUME Studio HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (.env in development).
//  3. Connect to Redis when configured (rate limiting).
//  4. Select the metadata document backend (file, github, memory).
//  5. Select the blob backend (fs, s3).
//  6. Wire domain services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
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

	"github.com/joho/godotenv"

	"github.com/lumestudio/lume-api/internal/api"
	"github.com/lumestudio/lume-api/internal/core/admin"
	"github.com/lumestudio/lume-api/internal/core/artist"
	"github.com/lumestudio/lume-api/internal/core/contact"
	"github.com/lumestudio/lume-api/internal/core/submission"
	"github.com/lumestudio/lume-api/internal/platform/config"
	"github.com/lumestudio/lume-api/internal/platform/constants"
	"github.com/lumestudio/lume-api/internal/platform/docstore"
	"github.com/lumestudio/lume-api/internal/platform/github"
	"github.com/lumestudio/lume-api/internal/platform/mail"
	"github.com/lumestudio/lume-api/internal/platform/ratelimit"
	redisstore "github.com/lumestudio/lume-api/internal/platform/redis"
	"github.com/lumestudio/lume-api/internal/platform/sec"
	"github.com/lumestudio/lume-api/internal/storage/blob"
	"github.com/lumestudio/lume-api/internal/storage/medialib"
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

	log.Info("[LUME] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	// A local .env is a development convenience; its absence is not an error.
	_ = godotenv.Load()

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
		slog.String("metadata_backend", cfg.MetadataBackend),
		slog.String("blob_backend", cfg.BlobBackend),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Redis (optional) ───────────────────────────────────────────────
	// Without Redis the rate limiter falls back to per-process memory, which
	// is fine for a single instance.
	var limiter ratelimit.Limiter = ratelimit.NewMemory()
	var checkRedis func() error

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		limiter = ratelimit.NewRedis(rdb)
		checkRedis = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	}

	// ── 4. Metadata Backend ───────────────────────────────────────────────
	var docs docstore.Store
	switch cfg.MetadataBackend {
	case config.BackendGitHub:
		docs = docstore.NewGitHubStore(github.NewClient(cfg.GitHubToken, cfg.GitHubOwner, cfg.GitHubRepo, cfg.GitHubBranch))
	case config.BackendMemory:
		docs = docstore.NewMemoryStore()
	default:
		fileStore, err := docstore.NewFileStore(cfg.DataDir)
		must(log, err, "initialize file metadata store")
		docs = fileStore
	}

	// ── 5. Blob Backend ───────────────────────────────────────────────────
	var blobs blob.Store
	if cfg.BlobBackend == config.BlobS3 {
		s3Store, err := blob.NewS3Store(blob.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PublicURL: cfg.S3PublicURL,
		})
		must(log, err, "initialize s3 blob store")
		blobs = s3Store
	} else {
		blobs = blob.NewFSStore(cfg.MediaRoot)
	}

	// ── 6. Mail ───────────────────────────────────────────────────────────
	var mailer mail.Mailer = mail.NewNoop()
	if cfg.ResendAPIKey != "" {
		mailer = mail.NewResend(cfg.ResendAPIKey, cfg.ResendFromEmail)
	} else {
		log.Warn("mail_not_configured")
	}

	// ── 7. Sessions ───────────────────────────────────────────────────────
	sessions, err := sec.NewSessionService(cfg.SessionSecret, constants.AuthIssuer, constants.AdminSessionLifetime)
	must(log, err, "initialize session service")

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckMetadata: func() error {
			_, err := docs.Load(context.Background(), constants.ArtistsDocument)
			if errors.Is(err, docstore.ErrNotFound) {
				return nil
			}
			return err
		},
		CheckRedis: checkRedis,
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	library := medialib.New(cfg.MediaRoot)

	artistService := artist.NewService(artist.NewMetadataStore(docs, log), library, blobs, log)
	artistHandler := artist.NewHandler(artistService)

	submissionService := submission.NewService(submission.NewStore(docs, log), blobs, artistService, mailer, cfg.ContactEmail, log)
	submissionHandler := submission.NewHandler(submissionService)

	contactService := contact.NewService(mailer, cfg.ContactEmail, log)
	contactHandler := contact.NewHandler(contactService)

	adminService := admin.NewService(sessions, cfg.AdminPassword, cfg.AdminPasswordHash, log)
	adminHandler := admin.NewHandler(adminService, cfg.IsProduction())

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Artist:     artistHandler,
		Submission: submissionHandler,
		Contact:    contactHandler,
		Admin:      adminHandler,
	}

	server := api.NewServer(cfg, log, sessions, limiter, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
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
