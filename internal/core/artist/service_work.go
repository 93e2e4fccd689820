// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package artist

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/lumestudio/lume-api/internal/platform/apperr"
	"github.com/lumestudio/lume-api/internal/platform/validate"
	"github.com/lumestudio/lume-api/pkg/field"
	"github.com/lumestudio/lume-api/pkg/medianame"
)

// UploadInput describes an incoming work upload.
type UploadInput struct {
	Slug         string
	Brand        string
	ProjectTitle string
	Type         string
	VideoURL     string

	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadWork stores a new portfolio work: the file goes to blob storage
// under a codec-encoded name, and — when the blob backend is not visible to
// the folder scan — a full overlay entry records it.
func (service *Service) UploadWork(ctx context.Context, input UploadInput) (*Work, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldSlug, input.Slug).
		Slug(FieldSlug, input.Slug).
		OneOf(FieldType, input.Type, medianame.TypePhoto, medianame.TypeVideo).
		VideoURL(FieldVideoURL, input.VideoURL)
	if err := validator.Err(); err != nil {
		return nil, err
	}
	if err := medianame.AllowedUpload(input.FileName, input.ContentType, input.Size, input.Type); err != nil {
		return nil, apperr.ValidationError(err.Error())
	}

	storedName := medianame.Encode(input.Brand, input.ProjectTitle, input.Type, input.FileName)
	key := "artists/" + input.Slug + "/" + storedName

	url, err := service.blobs.Put(ctx, key, input.Content, input.ContentType)
	if err != nil {
		return nil, apperr.StoreFailure("media file", err)
	}

	workID := input.Slug + "-" + medianame.StripExt(storedName)
	decoded := medianame.Decode(medianame.StripExt(storedName), input.Slug)

	work := &Work{
		ID:           workID,
		URL:          url,
		Alt:          decoded.Alt,
		Brand:        decoded.Brand,
		ProjectTitle: decoded.ProjectTitle,
		Type:         input.Type,
		VideoURL:     input.VideoURL,
	}

	// A scannable backend needs no overlay record: the folder scan will find
	// the file. Two cases force one anyway: the blob store is remote, or the
	// upload carries a video link that only the overlay can remember.
	needsOverlay := !service.blobs.Scannable() || input.VideoURL != ""
	if needsOverlay {
		overlay := service.store.Load(ctx)
		entry := overlay.entry(input.Slug)
		override := entry.workEntry(workID)

		override.URL = field.Set(url)
		override.Alt = field.Set(work.Alt)
		override.Brand = field.Set(work.Brand)
		override.ProjectTitle = field.Set(work.ProjectTitle)
		override.Type = field.Set(work.Type)
		if input.VideoURL != "" {
			override.VideoURL = field.Set(input.VideoURL)
		}

		if err := service.store.Save(ctx, overlay, "Add work for "+input.Slug); err != nil {
			// The blob upload succeeded but the metadata did not: report the
			// failure so the admin retries instead of assuming it published.
			return nil, apperr.StoreFailure("work metadata", err)
		}
	}

	service.logger.InfoContext(ctx, "work_uploaded",
		slog.String("slug", input.Slug),
		slog.String("work_id", workID),
	)
	return work, nil
}

// DeleteWork removes a work's file and any overlay record of it. External
// URLs the blob store does not own are refused.
func (service *Service) DeleteWork(ctx context.Context, slug, url string) error {
	validator := &validate.Validator{}
	validator.Required(FieldSlug, slug).Required(FieldURL, url)
	if err := validator.Err(); err != nil {
		return err
	}

	if !service.blobs.Owns(url) {
		return apperr.ValidationError("Cannot delete a file that is not managed by this site")
	}

	if err := service.blobs.Delete(ctx, url); err != nil {
		return apperr.StoreFailure("media file", err)
	}

	// Prune the overlay entry recorded for this file, if any.
	workID := slug + "-" + medianame.StripExt(path.Base(url))

	overlay := service.store.Load(ctx)
	entry := overlay[slug]
	if entry == nil {
		return nil
	}

	pruned := false
	if _, found := entry.Portfolio[workID]; found {
		entry.pruneWork(workID)
		pruned = true
	} else {
		// Defensive: an overlay entry keyed differently but pointing at the
		// deleted URL must not survive as a broken image.
		for id, override := range entry.Portfolio {
			if stored, ok := override.URL.Get(); ok && stored == url {
				entry.pruneWork(id)
				pruned = true
			}
		}
	}

	if pruned {
		if err := service.store.Save(ctx, overlay, "Remove work for "+slug); err != nil {
			return apperr.StoreFailure("work metadata", err)
		}
	}

	service.logger.InfoContext(ctx, "work_deleted",
		slog.String("slug", slug),
		slog.String("url", url),
	)
	return nil
}

// SetWorkVideoURL attaches or clears the external video link on a work.
// Clearing removes the override; a work entry left without any overrides is
// pruned entirely.
func (service *Service) SetWorkVideoURL(ctx context.Context, slug, workID, videoURL string) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldSlug, slug).
		Required(FieldWorkID, workID).
		VideoURL(FieldVideoURL, videoURL)
	if err := validator.Err(); err != nil {
		return err
	}

	overlay := service.store.Load(ctx)

	if videoURL == "" {
		entry := overlay[slug]
		if entry == nil {
			return nil
		}
		override, found := entry.Portfolio[workID]
		if !found {
			return nil
		}
		override.VideoURL = field.Field[string]{}
		if override.isEmpty() {
			entry.pruneWork(workID)
		}
	} else {
		entry := overlay.entry(slug)
		entry.workEntry(workID).VideoURL = field.Set(videoURL)
	}

	if err := service.store.Save(ctx, overlay, "Set video URL for "+slug); err != nil {
		return apperr.StoreFailure("work metadata", err)
	}

	service.logger.InfoContext(ctx, "work_video_url_set",
		slog.String("slug", slug),
		slog.String("work_id", workID),
	)
	return nil
}

// UploadProfileImage replaces an artist's profile image. The stored base
// name is always "profile" so the folder scan and URL space stay stable.
func (service *Service) UploadProfileImage(ctx context.Context, slug, fileName, contentType string, size int64, content io.Reader) (string, error) {
	validator := &validate.Validator{}
	validator.Required(FieldSlug, slug).Slug(FieldSlug, slug)
	if err := validator.Err(); err != nil {
		return "", err
	}
	if err := medianame.AllowedUpload(fileName, contentType, size, medianame.TypePhoto); err != nil {
		return "", apperr.ValidationError(err.Error())
	}

	ext := strings.ToLower(path.Ext(fileName))
	storedName := medianame.ProfileBaseName + ext

	// Drop a previous profile image with a different extension so the scan
	// never finds two.
	if service.blobs.Scannable() {
		if existing, err := service.library.ProfileImage(slug); err == nil && existing != "" && existing != storedName {
			if err := service.library.Remove(slug, existing); err != nil {
				service.logger.WarnContext(ctx, "stale_profile_image_remove_failed",
					slog.String("slug", slug),
					slog.String("error", err.Error()),
				)
			}
		}
	}

	url, err := service.blobs.Put(ctx, "artists/"+slug+"/"+storedName, content, contentType)
	if err != nil {
		return "", apperr.StoreFailure("profile image", err)
	}

	if !service.blobs.Scannable() {
		overlay := service.store.Load(ctx)
		overlay.entry(slug).ProfileImageURL = field.Set(url)
		if err := service.store.Save(ctx, overlay, "Update profile image for "+slug); err != nil {
			return "", apperr.StoreFailure("artist metadata", err)
		}
	}

	service.logger.InfoContext(ctx, "profile_image_uploaded", slog.String("slug", slug))
	return url, nil
}
