// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package artist

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/lumestudio/lume-api/internal/platform/apperr"
	"github.com/lumestudio/lume-api/internal/platform/validate"
	"github.com/lumestudio/lume-api/internal/storage/blob"
	"github.com/lumestudio/lume-api/internal/storage/medialib"
	"github.com/lumestudio/lume-api/pkg/field"
	"github.com/lumestudio/lume-api/pkg/medianame"
)

// Service is the reconciler: it merges seed, folder scan, and overlay into
// resolved artists, and materializes admin mutations back into the overlay.
type Service struct {
	store   *MetadataStore
	library *medialib.Library
	blobs   blob.Store
	logger  *slog.Logger
}

// NewService wires the reconciler.
func NewService(store *MetadataStore, library *medialib.Library, blobs blob.Store, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		library: library,
		blobs:   blobs,
		logger:  logger,
	}
}

// # Resolution (reads)

// ListArtists resolves the full roster: the union of seeded slugs, media
// folders, and overlay entries, in discovery order.
func (service *Service) ListArtists(ctx context.Context) ([]*Artist, error) {
	overlay := service.store.Load(ctx)

	slugs, err := service.discoverSlugs(overlay)
	if err != nil {
		return nil, err
	}

	artists := make([]*Artist, 0, len(slugs))
	for _, slug := range slugs {
		resolved, err := service.resolve(slug, overlay)
		if err != nil {
			return nil, err
		}
		artists = append(artists, resolved)
	}
	return artists, nil
}

// GetArtist resolves a single artist. Slugs that no layer knows about are
// reported as not found.
func (service *Service) GetArtist(ctx context.Context, slug string) (*Artist, error) {
	overlay := service.store.Load(ctx)

	known, err := service.isKnown(slug, overlay)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, apperr.NotFound("Artist")
	}

	return service.resolve(slug, overlay)
}

// ListWorks flattens every artist's portfolio into the site-wide gallery
// view, annotated with artist identity.
func (service *Service) ListWorks(ctx context.Context) ([]GalleryWork, error) {
	artists, err := service.ListArtists(ctx)
	if err != nil {
		return nil, err
	}

	var works []GalleryWork
	for _, entry := range artists {
		for _, work := range entry.Portfolio {
			works = append(works, GalleryWork{
				Work:            work,
				ArtistSlug:      entry.Slug,
				ArtistName:      entry.Name,
				ArtistSpecialty: entry.Specialty,
			})
		}
	}
	return works, nil
}

// discoverSlugs unions seed slugs, media folder names, and overlay keys,
// preserving discovery order: seed first, then folders, then overlay-only
// entries sorted for determinism.
func (service *Service) discoverSlugs(overlay Overlay) ([]string, error) {
	seen := make(map[string]bool)
	var slugs []string

	push := func(slug string) {
		if !seen[slug] {
			seen[slug] = true
			slugs = append(slugs, slug)
		}
	}

	for _, slug := range seedSlugs() {
		push(slug)
	}

	folders, err := service.library.Folders()
	if err != nil {
		return nil, err
	}
	for _, slug := range folders {
		push(slug)
	}

	overlaySlugs := make([]string, 0, len(overlay))
	for slug := range overlay {
		overlaySlugs = append(overlaySlugs, slug)
	}
	sort.Strings(overlaySlugs)
	for _, slug := range overlaySlugs {
		push(slug)
	}

	return slugs, nil
}

// isKnown reports whether any layer defines the slug.
func (service *Service) isKnown(slug string, overlay Overlay) (bool, error) {
	if _, found := overlay[slug]; found {
		return true, nil
	}
	for _, seeded := range seedSlugs() {
		if seeded == slug {
			return true, nil
		}
	}

	folders, err := service.library.Folders()
	if err != nil {
		return false, err
	}
	for _, folder := range folders {
		if folder == slug {
			return true, nil
		}
	}
	return false, nil
}

// resolve builds the canonical artist record for a slug against a loaded
// overlay.
func (service *Service) resolve(slug string, overlay Overlay) (*Artist, error) {
	base := seedBase(slug)
	resolved := &Artist{Slug: slug}

	entry := overlay[slug]
	if entry == nil {
		entry = &ArtistOverlay{}
	}

	// Field-level override: absent falls through, null clears, value wins.
	resolved.Name = entry.Name.Or(base.Name)
	resolved.Bio = entry.Bio.Or(base.Bio)
	resolved.Specialty = entry.Specialty.Or(base.Specialty)
	resolved.ProfileImageURL = entry.ProfileImageURL.Or(base.ProfileImageURL)
	resolved.Instagram = entry.Instagram.Ptr(base.Instagram)
	resolved.Email = entry.Email.Ptr(base.Email)
	resolved.Phone = entry.Phone.Ptr(base.Phone)

	portfolio, err := service.resolvePortfolio(slug, entry)
	if err != nil {
		return nil, err
	}
	resolved.Portfolio = portfolio

	// A profile image dropped into the media folder beats whatever URL the
	// record resolved to.
	profileFile, err := service.library.ProfileImage(slug)
	if err != nil {
		return nil, err
	}
	if profileFile != "" {
		resolved.ProfileImageURL = "/artists/" + slug + "/" + profileFile
	}

	return resolved, nil
}

// resolvePortfolio merges the folder scan (lower priority) with the
// overlay's portfolio map (higher priority).
func (service *Service) resolvePortfolio(slug string, entry *ArtistOverlay) ([]Work, error) {
	files, err := service.library.Files(slug)
	if err != nil {
		return nil, err
	}

	// Filesystem layer: one work per scanned file, keyed slug-<index>.
	var works []Work
	index := make(map[string]int)
	urlIndex := make(map[string]int)
	for i, fileName := range files {
		decoded := medianame.Decode(medianame.StripExt(fileName), slug)
		work := Work{
			ID:           workIndexID(slug, i),
			URL:          "/artists/" + slug + "/" + fileName,
			Alt:          decoded.Alt,
			Brand:        decoded.Brand,
			ProjectTitle: decoded.ProjectTitle,
			Type:         decoded.Type,
		}
		index[work.ID] = len(works)
		urlIndex[work.URL] = len(works)
		works = append(works, work)
	}

	// Overlay layer, applied in sorted key order for determinism.
	workIDs := make([]string, 0, len(entry.Portfolio))
	for workID := range entry.Portfolio {
		workIDs = append(workIDs, workID)
	}
	sort.Strings(workIDs)

	for _, workID := range workIDs {
		override := entry.Portfolio[workID]

		if url, ok := override.URL.Get(); ok {
			// Full entry: an independently stored work. Overwrites any
			// same-keyed filesystem work.
			work := Work{
				ID:           workID,
				URL:          url,
				Alt:          override.Alt.Or(""),
				Brand:        override.Brand.Or(""),
				ProjectTitle: override.ProjectTitle.Or(""),
				Type:         override.Type.Or(medianame.TypePhoto),
				VideoURL:     override.VideoURL.Or(""),
			}
			if at, found := index[workID]; found {
				works[at] = work
			} else if at, found := urlIndex[url]; found {
				// Same file, different key: the overlay record supersedes
				// the scan-derived one instead of duplicating it.
				works[at] = work
			} else {
				index[workID] = len(works)
				works = append(works, work)
			}
			continue
		}

		// Partial entry: patch the matching filesystem work, or do nothing.
		at, found := index[workID]
		if !found {
			continue
		}
		existing := works[at]
		existing.Alt = override.Alt.Or(existing.Alt)
		existing.Brand = override.Brand.Or(existing.Brand)
		existing.ProjectTitle = override.ProjectTitle.Or(existing.ProjectTitle)
		existing.Type = override.Type.Or(existing.Type)
		existing.VideoURL = override.VideoURL.Or(existing.VideoURL)
		works[at] = existing
	}

	return works, nil
}

// # Mutations

// CreateInput is the admin create-artist payload.
type CreateInput struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	Specialty string `json:"specialty"`
	Instagram string `json:"instagram"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// CreateArtist inserts a new overlay entry. Only non-empty optional fields
// are stored; the media folder is created eagerly so uploads have a home.
func (service *Service) CreateArtist(ctx context.Context, input CreateInput) (*Artist, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldSlug, input.Slug).
		Slug(FieldSlug, input.Slug).
		Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 120).
		OneOf(FieldSpecialty, input.Specialty, Specialties...).
		Instagram(FieldInstagram, input.Instagram)
	if input.Email != "" {
		validator.Email(FieldEmail, input.Email)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	overlay := service.store.Load(ctx)
	if _, exists := overlay[input.Slug]; exists {
		return nil, apperr.DuplicateSlug(input.Slug)
	}

	entry := newOverlayEntry(input.Name, input.Bio, input.Specialty, input.Instagram, input.Email, input.Phone)
	overlay[input.Slug] = entry

	if err := service.store.Save(ctx, overlay, "Create artist "+input.Slug); err != nil {
		return nil, apperr.StoreFailure("artist metadata", err)
	}

	if service.blobs.Scannable() {
		if err := service.library.EnsureFolder(input.Slug); err != nil {
			service.logger.WarnContext(ctx, "artist_folder_create_failed",
				slog.String("slug", input.Slug),
				slog.String("error", err.Error()),
			)
		}
	}

	service.logger.InfoContext(ctx, "artist_created", slog.String("slug", input.Slug))
	return service.resolve(input.Slug, overlay)
}

// UpdateInput is the admin update-artist payload. Absent keys leave the
// stored entry untouched; empty strings clear the field explicitly.
type UpdateInput struct {
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	Specialty *string `json:"specialty"`
	Instagram *string `json:"instagram"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// UpdateArtist applies a partial update to an artist's overlay entry,
// creating the entry if the artist only existed via seed or folder so far.
func (service *Service) UpdateArtist(ctx context.Context, slug string, input UpdateInput) (*Artist, error) {
	validator := &validate.Validator{}
	if input.Specialty != nil && *input.Specialty != "" {
		validator.OneOf(FieldSpecialty, *input.Specialty, Specialties...)
	}
	if input.Email != nil && *input.Email != "" {
		validator.Email(FieldEmail, *input.Email)
	}
	if input.Instagram != nil {
		validator.Instagram(FieldInstagram, *input.Instagram)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	overlay := service.store.Load(ctx)

	known, err := service.isKnown(slug, overlay)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, apperr.NotFound("Artist")
	}

	entry := overlay.entry(slug)
	applyPatch(&entry.Name, input.Name)
	applyPatch(&entry.Bio, input.Bio)
	applyPatch(&entry.Specialty, input.Specialty)
	applyPatch(&entry.Instagram, input.Instagram)
	applyPatch(&entry.Email, input.Email)
	applyPatch(&entry.Phone, input.Phone)

	if err := service.store.Save(ctx, overlay, "Update artist "+slug); err != nil {
		return nil, apperr.StoreFailure("artist metadata", err)
	}

	service.logger.InfoContext(ctx, "artist_updated", slog.String("slug", slug))
	return service.resolve(slug, overlay)
}

// DeleteArtist removes the overlay entry and the artist's media. Works that
// only existed in the media folder disappear with the folder.
func (service *Service) DeleteArtist(ctx context.Context, slug string) error {
	overlay := service.store.Load(ctx)

	known, err := service.isKnown(slug, overlay)
	if err != nil {
		return err
	}
	if !known {
		return apperr.NotFound("Artist")
	}

	delete(overlay, slug)
	if err := service.store.Save(ctx, overlay, "Delete artist "+slug); err != nil {
		return apperr.StoreFailure("artist metadata", err)
	}

	// Scan-backed media lives in the library's folder tree; remote blobs
	// go through the store's prefix delete.
	var mediaErr error
	if service.blobs.Scannable() {
		mediaErr = service.library.RemoveFolder(slug)
	} else {
		mediaErr = service.blobs.DeletePrefix(ctx, "artists/"+slug)
	}
	if mediaErr != nil {
		service.logger.WarnContext(ctx, "artist_media_delete_failed",
			slog.String("slug", slug),
			slog.String("error", mediaErr.Error()),
		)
	}

	service.logger.WarnContext(ctx, "artist_deleted", slog.String("slug", slug))
	return nil
}

// HasArtist reports whether the slug is already taken by any layer.
func (service *Service) HasArtist(ctx context.Context, slug string) (bool, error) {
	return service.isKnown(slug, service.store.Load(ctx))
}

// PublishEntry writes a complete artist overlay entry plus portfolio in one
// save. Used by submission approval; the caller handles the returned error
// by keeping the submission pending.
func (service *Service) PublishEntry(ctx context.Context, slug string, entry *ArtistOverlay) error {
	overlay := service.store.Load(ctx)
	if _, exists := overlay[slug]; exists {
		return apperr.DuplicateSlug(slug)
	}

	overlay[slug] = entry
	if err := service.store.Save(ctx, overlay, "Publish artist "+slug); err != nil {
		return apperr.StoreFailure("artist metadata", err)
	}

	service.logger.InfoContext(ctx, "artist_published", slog.String("slug", slug))
	return nil
}

// # Helpers

// newOverlayEntry builds a full overlay entry, storing only non-empty
// optional fields.
func newOverlayEntry(name, bio, specialty, instagram, email, phone string) *ArtistOverlay {
	entry := &ArtistOverlay{}
	setIfPresent(&entry.Name, name)
	setIfPresent(&entry.Bio, bio)
	setIfPresent(&entry.Specialty, specialty)
	setIfPresent(&entry.Instagram, instagram)
	setIfPresent(&entry.Email, email)
	setIfPresent(&entry.Phone, phone)
	return entry
}

// applyPatch maps an update-field onto the overlay's tristate: nil leaves
// the stored field alone, empty string stores an explicit clear, anything
// else stores the value.
func applyPatch(target *field.Field[string], value *string) {
	switch {
	case value == nil:
	case *value == "":
		*target = field.Clear[string]()
	default:
		*target = field.Set(*value)
	}
}

// setIfPresent stores a value only when it is non-empty, leaving the field
// unset otherwise.
func setIfPresent(target *field.Field[string], value string) {
	if value != "" {
		*target = field.Set(value)
	}
}

// workIndexID keys a folder-scanned work by its position in the sorted
// folder listing.
func workIndexID(slug string, index int) string {
	return fmt.Sprintf("%s-%d", slug, index)
}
