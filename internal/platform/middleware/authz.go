// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package middleware

import (
	"net/http"

	"github.com/lumestudio/lume-api/internal/platform/apperr"
	"github.com/lumestudio/lume-api/internal/platform/constants"
	"github.com/lumestudio/lume-api/internal/platform/ctxutil"
	"github.com/lumestudio/lume-api/internal/platform/respond"
)

// SessionVerifier defines the interface needed to check admin sessions.
//
// # Why an interface?
//
// Defining SessionVerifier here decouples the middleware from the `sec`
// implementation, allowing us to easily inject mocks during unit testing.
type SessionVerifier interface {
	VerifyAdmin(token string) error
}

// RequireAdmin blocks requests that do not carry a valid admin session cookie.
//
// # Flow
//  1. Read the session cookie.
//  2. If absent or invalid, abort with HTTP 401 Unauthorized.
//  3. Mark the request context as admin for downstream logging.
//
// There is no anonymous pass-through: every route mounted behind this
// middleware is admin-only.
func RequireAdmin(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.AdminSessionCookieName)
			if err != nil || cookie.Value == "" {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			if err := verifier.VerifyAdmin(cookie.Value); err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired session"))
				return
			}

			ctx := ctxutil.WithAdmin(request.Context())
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
