// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/lumestudio/lume-api/internal/platform/apperr"
	"github.com/lumestudio/lume-api/internal/platform/constants"
	"github.com/lumestudio/lume-api/internal/platform/ctxutil"
	"github.com/lumestudio/lume-api/internal/platform/ratelimit"
	"github.com/lumestudio/lume-api/internal/platform/respond"
)

// Limit enforces a fixed-window budget on the wrapped routes, keyed by
// endpoint name and client IP.
//
// # Headers
//
// Every response carries X-RateLimit-Limit, X-RateLimit-Remaining, and
// X-RateLimit-Reset. Denied requests additionally carry Retry-After.
//
// # Failure Mode
//
// If the limiter backend errors (e.g. Redis down), the request is allowed
// through: losing rate limiting briefly beats dropping contact messages.
func Limit(limiter ratelimit.Limiter, name string, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			key := name + ":" + RealIP(request)

			decision, err := limiter.Allow(request.Context(), key, limit, window)
			if err != nil {
				logger := ctxutil.GetLogger(request.Context())
				logger.ErrorContext(request.Context(), "rate_limit_check_failed",
					slog.String("endpoint", name),
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(writer, request)
				return
			}

			header := writer.Header()
			header.Set(constants.HeaderRateLimitLimit, strconv.Itoa(limit))
			header.Set(constants.HeaderRateLimitRemaining, strconv.Itoa(decision.Remaining))
			header.Set(constants.HeaderRateLimitReset, strconv.FormatInt(decision.Reset.Unix(), 10))

			if !decision.Allowed {
				retryAfter := int(time.Until(decision.Reset).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				header.Set(constants.HeaderRetryAfter, strconv.Itoa(retryAfter))
				respond.Error(writer, request, apperr.RateLimited(retryAfter))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
