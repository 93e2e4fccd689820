// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package mail

import "context"

// Noop is the mailer used when no RESEND_API_KEY is configured. Every send
// fails with [ErrNotConfigured], which callers report as "email disabled"
// rather than a delivery error.
type Noop struct{}

// NewNoop creates a disabled mailer.
func NewNoop() *Noop { return &Noop{} }

// Send implements [Mailer].
func (*Noop) Send(context.Context, Message) error {
	return ErrNotConfigured
}
