// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

/*
Package ratelimit implements fixed-window request budgets for the public
write endpoints.

Each endpoint gets its own budget (contact, submissions, login), keyed by
client IP. Two backends are provided:

  - Memory: per-process counters, the default for single-instance deployments.
  - Redis: shared counters, for deployments running more than one API instance.

Both return the same [Decision] so the middleware can emit X-RateLimit
headers regardless of backend.
*/
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of a single rate-limit check.
type Decision struct {
	// Allowed reports whether the request fits in the current window.
	Allowed bool
	// Remaining is the number of requests left in the window.
	Remaining int
	// Reset is when the current window ends and the budget refills.
	Reset time.Time
}

// Limiter checks a request against a fixed-window budget.
//
// key identifies the client (normally an IP prefixed with the endpoint name),
// limit is the number of requests allowed per window.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error)
}
