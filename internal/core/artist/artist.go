// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

/*
Package artist resolves the studio's artist roster and portfolios.

An artist is assembled from three layers, lowest priority first: a hardcoded
seed list, the media folder scan, and the metadata overlay document. The
overlay always wins; the folder scan supplies works the overlay has no
opinion on; the seed fills in the founders who predate both.
*/
package artist

// Specialty values an artist can carry.
const (
	SpecialtyPhotographer    = "Photographer"
	SpecialtyEditor          = "Editor"
	SpecialtyRetoucher       = "Retoucher"
	SpecialtyVideographer    = "Videographer"
	SpecialtyAssistant       = "Assistant"
	SpecialtyGraphicDesigner = "Graphic Designer"
)

// Specialties lists every valid specialty, for validation.
var Specialties = []string{
	SpecialtyPhotographer,
	SpecialtyEditor,
	SpecialtyRetoucher,
	SpecialtyVideographer,
	SpecialtyAssistant,
	SpecialtyGraphicDesigner,
}

// Artist is a fully resolved roster entry.
type Artist struct {
	Slug            string  `json:"slug"`
	Name            string  `json:"name,omitempty"`
	Bio             string  `json:"bio,omitempty"`
	Specialty       string  `json:"specialty,omitempty"`
	ProfileImageURL string  `json:"profileImageUrl,omitempty"`
	Instagram       *string `json:"instagram,omitempty"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Portfolio       []Work  `json:"portfolio"`
}

// Work is a fully resolved portfolio entry.
type Work struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	Alt          string `json:"alt,omitempty"`
	Brand        string `json:"brand,omitempty"`
	ProjectTitle string `json:"projectTitle,omitempty"`
	Type         string `json:"type"`
	VideoURL     string `json:"videoUrl,omitempty"`
}

// GalleryWork is a work annotated with its artist, for the flattened
// site-wide gallery view.
type GalleryWork struct {
	Work

	ArtistSlug      string `json:"artistSlug"`
	ArtistName      string `json:"artistName,omitempty"`
	ArtistSpecialty string `json:"artistSpecialty,omitempty"`
}

// JSON field identifiers used in validation errors.
const (
	FieldSlug         = "slug"
	FieldName         = "name"
	FieldBio          = "bio"
	FieldSpecialty    = "specialty"
	FieldInstagram    = "instagram"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldBrand        = "brand"
	FieldProjectTitle = "projectTitle"
	FieldType         = "type"
	FieldVideoURL     = "videoUrl"
	FieldFile         = "file"
	FieldURL          = "url"
	FieldWorkID       = "workId"
)
