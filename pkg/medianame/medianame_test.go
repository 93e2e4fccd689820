// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package medianame_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumestudio/lume-api/pkg/medianame"
)

func TestFormatLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"bts", "BTS"},
		{"BTS", "BTS"},
		// Only short segments and all-uppercase segments count as
		// acronyms. A lowercase season code is an ordinary word.
		{"fw25", "Fw25"},
		{"FW25", "FW25"},
		{"fw25-26", "Fw25 26"},
		{"fw25-campaign", "Fw25 Campaign"},
		{"beymen", "Beymen"},
		{"summer-campaign", "Summer Campaign"},
		{"vogue_editorial", "Vogue Editorial"},
		{"NYC-street_style", "NYC Street Style"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, medianame.FormatLabel(c.in), "input %q", c.in)
	}
}

func TestSafe(t *testing.T) {
	assert.Equal(t, "beymen", medianame.Safe("Beymen"))
	assert.Equal(t, "fw25-campaign", medianame.Safe("FW25 Campaign!"))
	assert.Equal(t, "a-b", medianame.Safe("--a%%%b--"))
	assert.Equal(t, "", medianame.Safe("***"))
}

/*
TestEncodeDecodeRoundTrip verifies the normalized round trip: decoding an
encoded name recovers the input type exactly, and labels equal to the
formatted safe form of the inputs.
*/
func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		brand, project, typ string
	}{
		{"Beymen", "FW25 Campaign", medianame.TypePhoto},
		{"vogue", "editorial", medianame.TypeVideo},
		{"BTS", "backstage shots", medianame.TypePhoto},
	}

	for _, c := range cases {
		name := medianame.Encode(c.brand, c.project, c.typ, "original.JPG")
		assert.True(t, strings.HasSuffix(name, ".jpg"))

		decoded := medianame.Decode(medianame.StripExt(name), "some-artist")
		assert.Equal(t, c.typ, decoded.Type)
		assert.Equal(t, medianame.FormatLabel(medianame.Safe(c.brand)), decoded.Brand)
		assert.Equal(t, medianame.FormatLabel(medianame.Safe(c.project)), decoded.ProjectTitle)
	}
}

func TestEncode_FallbackWhenUnbranded(t *testing.T) {
	name := medianame.Encode("", "", medianame.TypePhoto, "raw.png")
	assert.True(t, strings.HasPrefix(name, "upload-"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	// Missing extension falls back to a type default.
	assert.True(t, strings.HasSuffix(medianame.Encode("", "", medianame.TypeVideo, "clip"), ".mp4"))
	assert.True(t, strings.HasSuffix(medianame.Encode("", "", medianame.TypePhoto, "shot"), ".jpg"))
}

func TestDecode_LegacyUnderscoreScheme(t *testing.T) {
	decoded := medianame.Decode("beymen_fw25_lookbook", "jane-doe")
	assert.Equal(t, "Beymen", decoded.Brand)
	assert.Equal(t, "Fw25 Lookbook", decoded.ProjectTitle)
	assert.Equal(t, medianame.TypePhoto, decoded.Type)

	// A trailing "video" token marks the type and is dropped from the title.
	decoded = medianame.Decode("beymen_backstage_video", "jane-doe")
	assert.Equal(t, medianame.TypeVideo, decoded.Type)
	assert.Equal(t, "Backstage", decoded.ProjectTitle)
}

/*
TestDecode_UnstructuredFallback verifies decoding never fails: a base name
with no recoverable structure becomes both alt text and project title, with
the artist slug as the brand.
*/
func TestDecode_UnstructuredFallback(t *testing.T) {
	decoded := medianame.Decode("IMG0423", "jane-doe")
	assert.Equal(t, "Jane DOE", decoded.Brand)
	assert.Equal(t, "IMG0423", decoded.ProjectTitle)
	assert.Equal(t, "IMG0423", decoded.Alt)
	assert.Equal(t, medianame.TypePhoto, decoded.Type)
}

func TestAllowedUpload(t *testing.T) {
	assert.NoError(t, medianame.AllowedUpload("a.jpg", "image/jpeg", 1024, medianame.TypePhoto))

	// Photo works refuse video files; video works accept both.
	assert.Error(t, medianame.AllowedUpload("a.mp4", "video/mp4", 1024, medianame.TypePhoto))
	assert.NoError(t, medianame.AllowedUpload("a.mp4", "video/mp4", 1024, medianame.TypeVideo))
	assert.NoError(t, medianame.AllowedUpload("thumb.jpg", "image/jpeg", 1024, medianame.TypeVideo))

	assert.Error(t, medianame.AllowedUpload("a.exe", "", 1024, medianame.TypePhoto))
	assert.Error(t, medianame.AllowedUpload("a.jpg", "image/jpeg", 0, medianame.TypePhoto))
	assert.Error(t, medianame.AllowedUpload("a.jpg", "image/jpeg", medianame.MaxFileSize+1, medianame.TypePhoto))
}

func TestIsProfileImage(t *testing.T) {
	assert.True(t, medianame.IsProfileImage("profile.jpg"))
	assert.True(t, medianame.IsProfileImage("PROFILE.PNG"))
	assert.False(t, medianame.IsProfileImage("profiles.jpg"))
	assert.False(t, medianame.IsProfileImage("beymen__fw25__photo.jpg"))
}
