// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (stores, mailer) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/lumestudio/lume-api/pkg/query"
)

// Metadata backend selectors for [Config.MetadataBackend].
const (
	BackendFile   = "file"
	BackendGitHub = "github"
	BackendMemory = "memory"
)

// Blob backend selectors for [Config.BlobBackend].
const (
	BlobFS = "fs"
	BlobS3 = "s3"
)

// # Configuration Schema

// Config holds all runtime configuration for the LUME API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Metadata persistence. The overlay and submission documents live in
	// local JSON files by default; "github" commits them to a repository
	// through the Contents API instead.
	MetadataBackend string `env:"METADATA_BACKEND" envDefault:"file"`
	DataDir         string `env:"DATA_DIR"         envDefault:"./data"`

	// GitHub Contents API (METADATA_BACKEND=github)
	GitHubToken  string `env:"GITHUB_TOKEN"`
	GitHubOwner  string `env:"GITHUB_OWNER"`
	GitHubRepo   string `env:"GITHUB_REPO"`
	GitHubBranch string `env:"GITHUB_BRANCH" envDefault:"main"`

	// Media blob storage. "fs" serves uploads from MediaRoot on the local
	// disk; "s3" pushes them to an S3-compatible bucket.
	BlobBackend string `env:"BLOB_BACKEND" envDefault:"fs"`
	MediaRoot   string `env:"MEDIA_ROOT"   envDefault:"./public"`

	// Object Storage (S3-compatible, BLOB_BACKEND=s3)
	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION"   envDefault:"auto"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3PublicURL string `env:"S3_PUBLIC_URL"`

	// Key-Value Cache (Redis). Optional: enables the shared rate-limit
	// counters when set, otherwise limits are tracked per process.
	RedisURL string `env:"REDIS_URL"`

	// Admin access gate
	SessionSecret     string `env:"SESSION_SECRET,required"`
	AdminPassword     string `env:"ADMIN_PASSWORD"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// Outbound email (Resend)
	ResendAPIKey    string `env:"RESEND_API_KEY"`
	ResendFromEmail string `env:"RESEND_FROM_EMAIL" envDefault:"no-reply@lume.studio"`
	ContactEmail    string `env:"CONTACT_EMAIL"`

	// Public site
	SiteURL string `env:"SITE_URL" envDefault:"https://lume.studio"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct and checks the
// cross-field constraints env tags cannot express.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks backend selectors and their dependent settings.
func (c *Config) Validate() error {
	switch c.MetadataBackend {
	case BackendFile, BackendMemory:
	case BackendGitHub:
		if c.GitHubToken == "" || c.GitHubOwner == "" || c.GitHubRepo == "" {
			return fmt.Errorf("config: METADATA_BACKEND=github requires GITHUB_TOKEN, GITHUB_OWNER and GITHUB_REPO")
		}
	default:
		return fmt.Errorf("config: unknown METADATA_BACKEND %q", c.MetadataBackend)
	}

	switch c.BlobBackend {
	case BlobFS:
	case BlobS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("config: BLOB_BACKEND=s3 requires S3_BUCKET")
		}
	default:
		return fmt.Errorf("config: unknown BLOB_BACKEND %q", c.BlobBackend)
	}

	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		return fmt.Errorf("config: either ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ExtraOriginList splits the EXTRA_ORIGINS value into individual origins.
func (c *Config) ExtraOriginList() []string {
	return query.StringSlice(c.ExtraOrigins)
}
