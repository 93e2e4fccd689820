// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package contact_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumestudio/lume-api/internal/core/contact"
	"github.com/lumestudio/lume-api/internal/platform/apperr"
	"github.com/lumestudio/lume-api/internal/platform/mail"
)

type recordingMailer struct {
	messages []mail.Message
	fail     bool
}

func (m *recordingMailer) Send(_ context.Context, message mail.Message) error {
	if m.fail {
		return errors.New("smtp down")
	}
	m.messages = append(m.messages, message)
	return nil
}

func newService(mailer *recordingMailer) *contact.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return contact.NewService(mailer, "studio@lume.studio", logger)
}

func TestSubmit_ForwardsToInboxWithReplyTo(t *testing.T) {
	mailer := &recordingMailer{}
	service := newService(mailer)

	result, err := service.Submit(context.Background(), contact.Input{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Project: "Lookbook shoot in October.",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.EmailSent)

	require.Len(t, mailer.messages, 1)
	message := mailer.messages[0]
	assert.Equal(t, "studio@lume.studio", message.To)
	assert.Equal(t, "jane@example.com", message.ReplyTo)
	assert.Contains(t, message.Text, "Lookbook shoot in October.")
}

/*
TestSubmit_EmailFailureIsNotFatal pins the best-effort contract: a delivery
failure still yields a successful response, with the error surfaced in the
payload instead of a 500.
*/
func TestSubmit_EmailFailureIsNotFatal(t *testing.T) {
	service := newService(&recordingMailer{fail: true})

	result, err := service.Submit(context.Background(), contact.Input{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.EmailSent)
	assert.Equal(t, "smtp down", result.EmailError)
}

func TestSubmit_Validation(t *testing.T) {
	mailer := &recordingMailer{}
	service := newService(mailer)

	_, err := service.Submit(context.Background(), contact.Input{Name: "Jane Doe", Email: "not-an-email"})
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	_, err = service.Submit(context.Background(), contact.Input{Email: "jane@example.com"})
	require.ErrorAs(t, err, &appErr)

	assert.Empty(t, mailer.messages)
}
