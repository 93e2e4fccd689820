// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

/*
Package mail sends transactional email for the contact form and submission
notifications.

Email is best-effort throughout the application: a failed send is reported to
the caller but never fails the underlying operation. A contact message that
reaches the log but not the inbox is still better than a 500.
*/
package mail

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by the noop mailer so callers can distinguish
// "sending is off" from a real delivery failure.
var ErrNotConfigured = errors.New("mail: no mailer configured")

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	Text    string
	// ReplyTo lets studio staff answer a contact message directly from
	// their mail client. Optional.
	ReplyTo string
}

// Mailer delivers messages.
type Mailer interface {
	Send(ctx context.Context, message Message) error
}
