// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package artist_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumestudio/lume-api/internal/core/artist"
	"github.com/lumestudio/lume-api/pkg/field"
)

/*
TestOverlay_NullVersusAbsent verifies the document invariant: a key carrying
null and a missing key survive a decode/encode cycle as distinct states.
*/
func TestOverlay_NullVersusAbsent(t *testing.T) {
	document := `{
		"jane-doe": {
			"name": "Jane Doe",
			"bio": null
		}
	}`

	var overlay artist.Overlay
	require.NoError(t, json.Unmarshal([]byte(document), &overlay))

	entry := overlay["jane-doe"]
	require.NotNil(t, entry)

	name, ok := entry.Name.Get()
	assert.True(t, ok)
	assert.Equal(t, "Jane Doe", name)

	assert.True(t, entry.Bio.IsClear(), "null bio must decode as an explicit clear")
	assert.True(t, entry.Specialty.IsZero(), "absent specialty must decode as unset")

	// Round trip: the clear persists, the unset key stays out.
	encoded, err := json.Marshal(overlay)
	require.NoError(t, err)
	assert.JSONEq(t, `{"jane-doe":{"name":"Jane Doe","bio":null}}`, string(encoded))
}

func TestOverlay_PortfolioRoundTrip(t *testing.T) {
	overlay := artist.Overlay{
		"jane-doe": &artist.ArtistOverlay{
			Portfolio: map[string]*artist.WorkOverlay{
				"jane-doe-0": {VideoURL: field.Set("https://youtu.be/abc123")},
			},
		},
	}

	encoded, err := json.Marshal(overlay)
	require.NoError(t, err)
	assert.JSONEq(t, `{"jane-doe":{"portfolio":{"jane-doe-0":{"videoUrl":"https://youtu.be/abc123"}}}}`, string(encoded))

	var decoded artist.Overlay
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	url, ok := decoded["jane-doe"].Portfolio["jane-doe-0"].VideoURL.Get()
	assert.True(t, ok)
	assert.Equal(t, "https://youtu.be/abc123", url)
}
