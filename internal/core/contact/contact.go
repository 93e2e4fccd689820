// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

/*
Package contact handles the public contact form.

A message is validated and forwarded to the studio inbox with the sender as
reply-to. Delivery is best-effort: the endpoint reports whether the email
went out, but a failed send is never a request failure, since the message is
still captured in the structured logs.
*/
package contact

import (
	"context"
	"log/slog"

	"github.com/lumestudio/lume-api/internal/platform/mail"
	"github.com/lumestudio/lume-api/internal/platform/validate"
)

// Field names used in validation messages.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldProject = "project"
)

// Input is the contact form payload.
type Input struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Project string `json:"project"`
}

// Result reports the outcome of a contact message.
type Result struct {
	Success    bool   `json:"success"`
	EmailSent  bool   `json:"emailSent"`
	EmailError string `json:"emailError,omitempty"`
}

// Service forwards contact messages to the studio inbox.
type Service struct {
	mailer mail.Mailer
	inbox  string
	logger *slog.Logger
}

// NewService wires the contact form. inbox is the studio address messages
// are forwarded to.
func NewService(mailer mail.Mailer, inbox string, logger *slog.Logger) *Service {
	return &Service{mailer: mailer, inbox: inbox, logger: logger}
}

// Submit validates and forwards one message.
func (service *Service) Submit(ctx context.Context, input Input) (*Result, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 120).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		MaxLen(FieldProject, input.Project, 2000)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// The log line is the fallback channel when email is down.
	service.logger.InfoContext(ctx, "contact_message",
		slog.String("name", input.Name),
		slog.String("email", input.Email),
	)

	text := "New contact message from lume.studio\n\n" +
		"Name: " + input.Name + "\n" +
		"Email: " + input.Email + "\n"
	if input.Project != "" {
		text += "\nProject:\n" + input.Project + "\n"
	}

	err := service.mailer.Send(ctx, mail.Message{
		To:      service.inbox,
		Subject: "Contact form: " + input.Name,
		Text:    text,
		ReplyTo: input.Email,
	})
	if err != nil {
		service.logger.WarnContext(ctx, "contact_email_failed", slog.String("error", err.Error()))
		return &Result{Success: true, EmailSent: false, EmailError: err.Error()}, nil
	}

	return &Result{Success: true, EmailSent: true}, nil
}
