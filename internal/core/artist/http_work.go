// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package artist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lumestudio/lume-api/internal/platform/apperr"
	requestutil "github.com/lumestudio/lume-api/internal/platform/request"
	"github.com/lumestudio/lume-api/internal/platform/respond"
	"github.com/lumestudio/lume-api/pkg/medianame"
)

// RegisterAdminWorkRoutes mounts the work management endpoints. The caller
// wraps them in the admin session gate.
func (handler *Handler) RegisterAdminWorkRoutes(router chi.Router) {
	router.Get("/", handler.adminListWorks)
	router.Post("/", handler.uploadWork)
	router.Delete("/", handler.deleteWork)
	router.Post("/video-url", handler.setWorkVideoURL)
}

// adminListWorks reuses the public gallery resolution without pagination:
// the admin panel renders the whole grid at once.
func (handler *Handler) adminListWorks(writer http.ResponseWriter, request *http.Request) {
	works, err := handler.service.ListWorks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, works)
}

func (handler *Handler) uploadWork(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseMultipartForm(medianame.MaxFileSize); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid multipart payload"))
		return
	}

	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("A media file is required"))
		return
	}
	defer file.Close()

	input := UploadInput{
		Slug:         request.FormValue("slug"),
		Brand:        request.FormValue("brand"),
		ProjectTitle: request.FormValue("projectTitle"),
		Type:         request.FormValue("type"),
		VideoURL:     request.FormValue("videoUrl"),
		FileName:     header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
		Content:      file,
	}
	if input.Type == "" {
		input.Type = medianame.TypePhoto
	}

	work, err := handler.service.UploadWork(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, work)
}

func (handler *Handler) deleteWork(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Slug string `json:"slug"`
		URL  string `json:"url"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteWork(request.Context(), input.Slug, input.URL); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setWorkVideoURL(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Slug     string `json:"slug"`
		WorkID   string `json:"workId"`
		VideoURL string `json:"videoUrl"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetWorkVideoURL(request.Context(), input.Slug, input.WorkID, input.VideoURL); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"slug": input.Slug, "workId": input.WorkID})
}

func (handler *Handler) uploadProfileImage(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseMultipartForm(medianame.MaxFileSize); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid multipart payload"))
		return
	}

	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("An image file is required"))
		return
	}
	defer file.Close()

	url, err := handler.service.UploadProfileImage(
		request.Context(),
		request.FormValue("slug"),
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		file,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"profileImageUrl": url})
}
