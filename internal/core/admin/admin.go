// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

/*
Package admin implements the password gate in front of the admin panel.

There is one shared studio password and one role. A successful login issues
a signed session token delivered as an HttpOnly cookie; every admin route
checks that cookie through the session middleware.
*/
package admin

import (
	"context"
	"log/slog"

	"github.com/lumestudio/lume-api/internal/platform/apperr"
	"github.com/lumestudio/lume-api/internal/platform/sec"
)

// Service checks the studio password and issues session tokens.
type Service struct {
	sessions     *sec.SessionService
	password     string
	passwordHash string
	logger       *slog.Logger
}

// NewService wires the login service. Exactly one of password and
// passwordHash is expected; when both are set the hash wins.
func NewService(sessions *sec.SessionService, password, passwordHash string, logger *slog.Logger) *Service {
	return &Service{
		sessions:     sessions,
		password:     password,
		passwordHash: passwordHash,
		logger:       logger,
	}
}

// Login verifies the password and returns a fresh session token.
func (service *Service) Login(ctx context.Context, password string) (string, error) {
	if password == "" || !service.check(password) {
		service.logger.WarnContext(ctx, "admin_login_failed")
		return "", apperr.Unauthorized("Invalid password")
	}

	token, err := service.sessions.Issue()
	if err != nil {
		return "", err
	}

	service.logger.InfoContext(ctx, "admin_login")
	return token, nil
}

func (service *Service) check(password string) bool {
	if service.passwordHash != "" {
		return sec.CheckPasswordHash(password, service.passwordHash)
	}
	return sec.ConstantTimeEquals(password, service.password)
}
