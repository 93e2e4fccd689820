// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package artist

import (
	"github.com/lumestudio/lume-api/pkg/medianame"
	"github.com/lumestudio/lume-api/pkg/pointer"
)

// DefaultBio is used for artists who have not written one yet.
const DefaultBio = "Part of the LUME Studio collective."

// placeholderAvatarURL yields a deterministic placeholder portrait per slug.
const placeholderAvatarURL = "https://i.pravatar.cc/300?u="

// seed is the lowest-priority layer: the founders who were on the site
// before the metadata overlay existed. Slug order here is the roster's
// discovery order.
var seed = []Artist{
	{
		Slug:            "murat-barlas",
		Name:            "Murat Barlas",
		Bio:             "Founder of LUME Studio. Fashion and editorial photographer based in Istanbul.",
		Specialty:       SpecialtyPhotographer,
		ProfileImageURL: "/artists/murat-barlas/profile.jpg",
		Instagram:       pointer.To("@lume.studio"),
	},
}

// seedBase returns the seed record for slug, or a synthesized default when
// the slug is not seeded: label-formatted name, Photographer, placeholder
// avatar, default bio.
func seedBase(slug string) Artist {
	for _, entry := range seed {
		if entry.Slug == slug {
			return entry
		}
	}
	return Artist{
		Slug:            slug,
		Name:            medianame.FormatLabel(slug),
		Bio:             DefaultBio,
		Specialty:       SpecialtyPhotographer,
		ProfileImageURL: placeholderAvatarURL + slug,
	}
}

// seedSlugs returns the seeded slugs in declaration order.
func seedSlugs() []string {
	slugs := make([]string, 0, len(seed))
	for _, entry := range seed {
		slugs = append(slugs, entry.Slug)
	}
	return slugs
}
