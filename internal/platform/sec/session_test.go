// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumestudio/lume-api/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestSessionService_IssueAndVerify(t *testing.T) {
	service, err := sec.NewSessionService(testSecret, "lume.studio", time.Hour)
	require.NoError(t, err)

	token, err := service.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, service.VerifyAdmin(token))
}

func TestSessionService_RejectsShortSecret(t *testing.T) {
	_, err := sec.NewSessionService("too-short", "lume.studio", time.Hour)
	assert.Error(t, err)
}

func TestSessionService_RejectsForeignToken(t *testing.T) {
	issuing, err := sec.NewSessionService(testSecret, "lume.studio", time.Hour)
	require.NoError(t, err)

	verifying, err := sec.NewSessionService("ffffffffffffffffffffffffffffffff", "lume.studio", time.Hour)
	require.NoError(t, err)

	token, err := issuing.Issue()
	require.NoError(t, err)

	// Signed with a different secret
	assert.Error(t, verifying.VerifyAdmin(token))

	// Not a token at all
	assert.Error(t, verifying.VerifyAdmin("garbage"))
}

func TestSessionService_RejectsExpiredToken(t *testing.T) {
	service, err := sec.NewSessionService(testSecret, "lume.studio", -time.Minute)
	require.NoError(t, err)

	token, err := service.Issue()
	require.NoError(t, err)

	assert.Error(t, service.VerifyAdmin(token))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := sec.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	assert.True(t, sec.CheckPasswordHash("hunter2hunter2", hash))
	assert.False(t, sec.CheckPasswordHash("wrong", hash))
}

func TestConstantTimeEquals(t *testing.T) {
	assert.True(t, sec.ConstantTimeEquals("secret", "secret"))
	assert.False(t, sec.ConstantTimeEquals("secret", "Secret"))
	assert.False(t, sec.ConstantTimeEquals("secret", ""))
}
