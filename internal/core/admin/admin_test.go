// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package admin_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumestudio/lume-api/internal/core/admin"
	"github.com/lumestudio/lume-api/internal/platform/apperr"
	"github.com/lumestudio/lume-api/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newService(t *testing.T, password, passwordHash string) (*admin.Service, *sec.SessionService) {
	t.Helper()

	sessions, err := sec.NewSessionService(testSecret, "lume.studio", time.Hour)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return admin.NewService(sessions, password, passwordHash, logger), sessions
}

func TestLogin_PlainPassword(t *testing.T) {
	service, sessions := newService(t, "studio-secret", "")

	token, err := service.Login(context.Background(), "studio-secret")
	require.NoError(t, err)
	assert.NoError(t, sessions.VerifyAdmin(token))

	_, err = service.Login(context.Background(), "wrong")
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestLogin_HashedPassword(t *testing.T) {
	hash, err := sec.HashPassword("studio-secret")
	require.NoError(t, err)

	service, sessions := newService(t, "", hash)

	token, err := service.Login(context.Background(), "studio-secret")
	require.NoError(t, err)
	assert.NoError(t, sessions.VerifyAdmin(token))

	_, err = service.Login(context.Background(), "wrong")
	assert.Error(t, err)
}

// The hash wins when both are configured, so a stale plain password in the
// environment cannot open the panel.
func TestLogin_HashTakesPrecedence(t *testing.T) {
	hash, err := sec.HashPassword("hashed-secret")
	require.NoError(t, err)

	service, _ := newService(t, "plain-secret", hash)

	_, err = service.Login(context.Background(), "plain-secret")
	assert.Error(t, err)

	_, err = service.Login(context.Background(), "hashed-secret")
	assert.NoError(t, err)
}

func TestLogin_EmptyPassword(t *testing.T) {
	service, _ := newService(t, "", "")

	// An empty configured password must never match an empty input.
	_, err := service.Login(context.Background(), "")
	assert.Error(t, err)
}
