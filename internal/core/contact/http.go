// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/lumestudio/lume-api/internal/platform/request"
	"github.com/lumestudio/lume-api/internal/platform/respond"
)

// Handler exposes the contact form endpoint.
type Handler struct {
	service *Service
}

// NewHandler creates the contact handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the contact endpoint. The caller wraps it in the
// contact rate limit.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/", handler.submit)
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Submit(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
