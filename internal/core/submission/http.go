// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package submission

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lumestudio/lume-api/internal/platform/apperr"
	requestutil "github.com/lumestudio/lume-api/internal/platform/request"
	"github.com/lumestudio/lume-api/internal/platform/respond"
	"github.com/lumestudio/lume-api/pkg/convert"
	"github.com/lumestudio/lume-api/pkg/medianame"
)

// Handler exposes the submission endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates the submission handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the application form endpoint. The caller
// wraps it in the submission rate limit.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Post("/", handler.create)
}

// RegisterAdminRoutes mounts the review endpoints. The caller wraps them in
// the admin session gate.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.list)
	router.Patch("/{id}", handler.review)
}

// create handles the multipart application form: text fields, an optional
// profile image, and work_0..work_N sample files with per-work fields.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseMultipartForm(medianame.MaxFileSize); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid multipart payload"))
		return
	}

	input := CreateInput{
		Slug:      request.FormValue("slug"),
		Name:      request.FormValue("name"),
		Specialty: request.FormValue("specialty"),
		Bio:       request.FormValue("bio"),
		Instagram: request.FormValue("instagram"),
		Email:     request.FormValue("email"),
		Phone:     request.FormValue("phone"),
	}

	profile, opened, err := openUpload(request, "profile")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if opened != nil {
		defer opened.Close()
		input.Profile = profile
	}

	worksCount := convert.ToInt(request.FormValue("worksCount"))
	for i := 0; i < worksCount; i++ {
		name := fmt.Sprintf("work_%d", i)
		file, openedWork, err := openUpload(request, name)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		if openedWork == nil {
			respond.Error(writer, request, apperr.ValidationError("Missing file "+name))
			return
		}
		defer openedWork.Close()

		work := WorkUpload{
			Brand:        request.FormValue(name + "_brand"),
			ProjectTitle: request.FormValue(name + "_projectTitle"),
			Type:         request.FormValue(name + "_type"),
			VideoURL:     request.FormValue(name + "_videoUrl"),
			File:         *file,
		}
		if work.Type == "" {
			work.Type = medianame.TypePhoto
		}
		input.Works = append(input.Works, work)
	}

	created, emailSent, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, map[string]interface{}{
		"id":        created.ID,
		"status":    created.Status,
		"emailSent": emailSent,
	})
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	submissions, err := handler.service.List(request.Context(), request.URL.Query().Get("status"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, submissions)
}

// review applies an admin decision to one submission.
func (handler *Handler) review(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Action string `json:"action"`
		Reason string `json:"reason"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.Param(request, "id")

	var (
		reviewed *Submission
		err      error
	)
	switch input.Action {
	case "approve":
		reviewed, err = handler.service.Approve(request.Context(), id)
	case "reject":
		reviewed, err = handler.service.Reject(request.Context(), id, input.Reason)
	default:
		err = apperr.ValidationError("Action must be approve or reject")
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviewed)
}

// openUpload returns the named multipart file, or a nil upload when the
// field is absent.
func openUpload(request *http.Request, name string) (*FileUpload, multipart.File, error) {
	file, header, err := request.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, apperr.ValidationError("Invalid file field " + name)
	}
	return &FileUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}, file, nil
}
