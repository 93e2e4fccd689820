// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lumestudio/lume-api/internal/platform/constants"
	requestutil "github.com/lumestudio/lume-api/internal/platform/request"
	"github.com/lumestudio/lume-api/internal/platform/respond"
)

// Handler exposes the login endpoints. The login route itself sits outside
// the admin session gate but inside the login rate limit.
type Handler struct {
	service       *Service
	secureCookies bool
}

// NewHandler creates the login handler. secureCookies should be true in
// production so the session cookie never travels over plain HTTP.
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{service: service, secureCookies: secureCookies}
}

// RegisterRoutes mounts login and logout.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/", handler.login)
	router.Delete("/", handler.logout)
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Password string `json:"password"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.service.Login(request.Context(), input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// No MaxAge: the cookie lives for the browser session, the token's own
	// expiry bounds it server-side.
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AdminSessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
	respond.OK(writer, map[string]bool{"success": true})
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AdminSessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
	respond.OK(writer, map[string]bool{"success": true})
}
