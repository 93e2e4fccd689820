// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package artist

import "github.com/lumestudio/lume-api/pkg/field"

// Overlay is the persisted metadata document: artist slug to partial record.
//
// Every field is tristate via [field.Field]: a missing key defers to the
// lower layers, an explicit null clears the field, a value overrides it.
type Overlay map[string]*ArtistOverlay

// ArtistOverlay holds per-artist field overrides plus the portfolio map.
type ArtistOverlay struct {
	Name            field.Field[string] `json:"name,omitzero"`
	Bio             field.Field[string] `json:"bio,omitzero"`
	Specialty       field.Field[string] `json:"specialty,omitzero"`
	ProfileImageURL field.Field[string] `json:"profileImageUrl,omitzero"`
	Instagram       field.Field[string] `json:"instagram,omitzero"`
	Email           field.Field[string] `json:"email,omitzero"`
	Phone           field.Field[string] `json:"phone,omitzero"`

	// Portfolio maps work id to overrides. An entry carrying a url is a
	// complete, independently stored work; one without is a patch on a
	// folder-scanned work with the same id.
	Portfolio map[string]*WorkOverlay `json:"portfolio,omitempty"`
}

// WorkOverlay holds per-work field overrides.
type WorkOverlay struct {
	URL          field.Field[string] `json:"url,omitzero"`
	Alt          field.Field[string] `json:"alt,omitzero"`
	Brand        field.Field[string] `json:"brand,omitzero"`
	ProjectTitle field.Field[string] `json:"projectTitle,omitzero"`
	Type         field.Field[string] `json:"type,omitzero"`
	VideoURL     field.Field[string] `json:"videoUrl,omitzero"`
}

// isEmpty reports whether the work overlay carries no overrides at all.
// Empty entries are pruned rather than persisted.
func (w *WorkOverlay) isEmpty() bool {
	return w.URL.IsZero() &&
		w.Alt.IsZero() &&
		w.Brand.IsZero() &&
		w.ProjectTitle.IsZero() &&
		w.Type.IsZero() &&
		w.VideoURL.IsZero()
}

// entry returns the overlay entry for slug, creating it if needed.
func (o Overlay) entry(slug string) *ArtistOverlay {
	if existing, found := o[slug]; found {
		return existing
	}
	created := &ArtistOverlay{}
	o[slug] = created
	return created
}

// workEntry returns the work overlay for workID under slug, creating the
// portfolio map and entry if needed.
func (a *ArtistOverlay) workEntry(workID string) *WorkOverlay {
	if a.Portfolio == nil {
		a.Portfolio = make(map[string]*WorkOverlay)
	}
	if existing, found := a.Portfolio[workID]; found {
		return existing
	}
	created := &WorkOverlay{}
	a.Portfolio[workID] = created
	return created
}

// pruneWork removes a work entry and, if that leaves the portfolio empty,
// the map itself. The artist entry stays.
func (a *ArtistOverlay) pruneWork(workID string) {
	delete(a.Portfolio, workID)
	if len(a.Portfolio) == 0 {
		a.Portfolio = nil
	}
}
