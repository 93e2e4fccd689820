// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package artist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/lumestudio/lume-api/internal/platform/request"
	"github.com/lumestudio/lume-api/internal/platform/respond"
	"github.com/lumestudio/lume-api/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the read-only roster endpoints.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.listArtists)
	router.Get("/{slug}", handler.getArtist)
}

// RegisterGalleryRoutes mounts the flattened site-wide works view.
func (handler *Handler) RegisterGalleryRoutes(router chi.Router) {
	router.Get("/", handler.listWorks)
}

// RegisterAdminRoutes mounts the artist CRUD endpoints. The caller wraps
// them in the admin session gate.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Post("/", handler.createArtist)
	router.Patch("/{slug}", handler.updateArtist)
	router.Delete("/{slug}", handler.deleteArtist)
	router.Post("/profile", handler.uploadProfileImage)
}

func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	artists, err := handler.service.ListArtists(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artists)
}

func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	resolved, err := handler.service.GetArtist(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, resolved)
}

func (handler *Handler) listWorks(writer http.ResponseWriter, request *http.Request) {
	works, err := handler.service.ListWorks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// The gallery is one document; pagination slices it in memory.
	params := pagination.FromRequest(request)
	total := len(works)

	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	respond.Paginated(writer, works[start:end], pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) createArtist(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateArtist(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateArtist(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateArtist(request.Context(), slug, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteArtist(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	if err := handler.service.DeleteArtist(request.Context(), slug); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
