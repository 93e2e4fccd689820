// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package artist_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumestudio/lume-api/internal/core/artist"
	"github.com/lumestudio/lume-api/internal/platform/apperr"
	"github.com/lumestudio/lume-api/internal/platform/constants"
	"github.com/lumestudio/lume-api/internal/platform/docstore"
	"github.com/lumestudio/lume-api/internal/storage/blob"
	"github.com/lumestudio/lume-api/internal/storage/medialib"
	"github.com/lumestudio/lume-api/pkg/pointer"
)

type fixture struct {
	service *artist.Service
	docs    *docstore.MemoryStore
	root    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	root := t.TempDir()
	docs := docstore.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := artist.NewMetadataStore(docs, logger)
	library := medialib.New(root)
	blobs := blob.NewFSStore(root)

	return &fixture{
		service: artist.NewService(store, library, blobs, logger),
		docs:    docs,
		root:    root,
	}
}

func (f *fixture) seedOverlay(t *testing.T, document string) {
	t.Helper()
	require.NoError(t, f.docs.Save(context.Background(), constants.ArtistsDocument, []byte(document), ""))
}

func (f *fixture) seedMedia(t *testing.T, slug string, files ...string) {
	t.Helper()
	dir := filepath.Join(f.root, "artists", slug)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
}

/*
TestResolve_OverlayClearsAndFallsThrough checks the two halves of the merge
invariant on one artist: a null key clears the base value, a missing key
keeps it.
*/
func TestResolve_OverlayClearsAndFallsThrough(t *testing.T) {
	f := newFixture(t)
	f.seedMedia(t, "jane-doe")
	f.seedOverlay(t, `{"jane-doe": {"name": "Jane D.", "bio": null}}`)

	resolved, err := f.service.GetArtist(context.Background(), "jane-doe")
	require.NoError(t, err)

	// Overridden
	assert.Equal(t, "Jane D.", resolved.Name)
	// Cleared by explicit null: the default bio must NOT leak through
	assert.Empty(t, resolved.Bio)
	// Absent: falls through to the synthesized default
	assert.Equal(t, artist.SpecialtyPhotographer, resolved.Specialty)
}

// Seeded founders resolve without any overlay or folder, pointer fields
// included; an explicit null in the overlay still clears them.
func TestResolve_SeededFounder(t *testing.T) {
	f := newFixture(t)

	resolved, err := f.service.GetArtist(context.Background(), "murat-barlas")
	require.NoError(t, err)
	assert.Equal(t, "Murat Barlas", resolved.Name)
	require.NotNil(t, resolved.Instagram)
	assert.Equal(t, "@lume.studio", *resolved.Instagram)

	f.seedOverlay(t, `{"murat-barlas": {"instagram": null}}`)
	resolved, err = f.service.GetArtist(context.Background(), "murat-barlas")
	require.NoError(t, err)
	assert.Nil(t, resolved.Instagram)
}

func TestResolve_UnknownSlugIsNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.GetArtist(context.Background(), "nobody")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

func TestResolve_FolderOnlyArtistGetsDefaults(t *testing.T) {
	f := newFixture(t)
	f.seedMedia(t, "ali-veli", "beymen__fw25-campaign__photo.jpg")

	resolved, err := f.service.GetArtist(context.Background(), "ali-veli")
	require.NoError(t, err)

	assert.Equal(t, "ALI Veli", resolved.Name)
	assert.Equal(t, artist.DefaultBio, resolved.Bio)
	assert.Contains(t, resolved.ProfileImageURL, "i.pravatar.cc")

	require.Len(t, resolved.Portfolio, 1)
	work := resolved.Portfolio[0]
	assert.Equal(t, "ali-veli-0", work.ID)
	assert.Equal(t, "/artists/ali-veli/beymen__fw25-campaign__photo.jpg", work.URL)
	assert.Equal(t, "Beymen", work.Brand)
	assert.Equal(t, "Fw25 Campaign", work.ProjectTitle)
	assert.Equal(t, "photo", work.Type)
}

func TestResolve_ProfileImageFromFolderWins(t *testing.T) {
	f := newFixture(t)
	f.seedMedia(t, "jane-doe", "profile.webp")
	f.seedOverlay(t, `{"jane-doe": {"profileImageUrl": "https://cdn.example.com/old.jpg"}}`)

	resolved, err := f.service.GetArtist(context.Background(), "jane-doe")
	require.NoError(t, err)
	assert.Equal(t, "/artists/jane-doe/profile.webp", resolved.ProfileImageURL)
}

/*
TestResolvePortfolio_PartialVideoOverride checks the sub-merge: an overlay
entry carrying only a videoUrl patches the folder-scanned work with the same
id instead of creating an orphan.
*/
func TestResolvePortfolio_PartialVideoOverride(t *testing.T) {
	f := newFixture(t)
	f.seedMedia(t, "jane-doe", "beymen__bts__video.mp4")
	f.seedOverlay(t, `{"jane-doe": {"portfolio": {
		"jane-doe-0": {"videoUrl": "https://youtu.be/abc123"},
		"jane-doe-9": {"videoUrl": "https://youtu.be/orphan"}
	}}}`)

	resolved, err := f.service.GetArtist(context.Background(), "jane-doe")
	require.NoError(t, err)

	// The orphan override (jane-doe-9) must be inert.
	require.Len(t, resolved.Portfolio, 1)
	work := resolved.Portfolio[0]

	// Filesystem-derived fields survive, the override lands on top.
	assert.Equal(t, "Beymen", work.Brand)
	assert.Equal(t, "BTS", work.ProjectTitle)
	assert.Equal(t, "video", work.Type)
	assert.Equal(t, "https://youtu.be/abc123", work.VideoURL)
}

func TestResolvePortfolio_FullOverlayEntryWins(t *testing.T) {
	f := newFixture(t)
	f.seedMedia(t, "jane-doe", "beymen__fw25__photo.jpg")
	f.seedOverlay(t, `{"jane-doe": {"portfolio": {
		"jane-doe-0": {"url": "https://cdn.example.com/replaced.jpg", "brand": "Acme", "type": "photo"},
		"jane-doe-cdn-work": {"url": "https://cdn.example.com/extra.jpg", "brand": "Vogue", "type": "photo"}
	}}}`)

	resolved, err := f.service.GetArtist(context.Background(), "jane-doe")
	require.NoError(t, err)
	require.Len(t, resolved.Portfolio, 2)

	byID := map[string]artist.Work{}
	for _, work := range resolved.Portfolio {
		byID[work.ID] = work
	}

	// Same-keyed overlay entry fully replaces the filesystem work.
	assert.Equal(t, "https://cdn.example.com/replaced.jpg", byID["jane-doe-0"].URL)
	assert.Equal(t, "Acme", byID["jane-doe-0"].Brand)

	// Independently stored work appears alongside.
	assert.Equal(t, "Vogue", byID["jane-doe-cdn-work"].Brand)
}

func TestListArtists_UnionOfLayers(t *testing.T) {
	f := newFixture(t)
	f.seedMedia(t, "folder-artist", "acme__x__photo.jpg")
	f.seedOverlay(t, `{"overlay-artist": {"name": "Only In Overlay"}}`)

	artists, err := f.service.ListArtists(context.Background())
	require.NoError(t, err)

	slugs := make([]string, 0, len(artists))
	for _, entry := range artists {
		slugs = append(slugs, entry.Slug)
	}

	// Seeded founder first, then folders, then overlay-only entries.
	assert.Equal(t, []string{"murat-barlas", "folder-artist", "overlay-artist"}, slugs)
}

func TestCreateArtist_DuplicateSlugLeavesOverlayUntouched(t *testing.T) {
	f := newFixture(t)
	f.seedOverlay(t, `{"jane-doe": {"name": "Jane Doe"}}`)

	_, err := f.service.CreateArtist(context.Background(), artist.CreateInput{
		Slug:      "jane-doe",
		Name:      "Impostor",
		Specialty: artist.SpecialtyEditor,
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "DUPLICATE_SLUG", ae.Code)

	resolved, err := f.service.GetArtist(context.Background(), "jane-doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", resolved.Name)
}

func TestCreateArtist_StoresOnlyNonEmptyOptionals(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.CreateArtist(context.Background(), artist.CreateInput{
		Slug:      "new-artist",
		Name:      "New Artist",
		Specialty: artist.SpecialtyRetoucher,
		Email:     "new@lume.studio",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Email)
	assert.Equal(t, "new@lume.studio", *created.Email)
	assert.Nil(t, created.Instagram)

	// The media folder exists for future uploads.
	assert.DirExists(t, filepath.Join(f.root, "artists", "new-artist"))

	// The stored document has no key for the empty optionals.
	document, err := f.docs.Load(context.Background(), constants.ArtistsDocument)
	require.NoError(t, err)
	assert.NotContains(t, string(document), "instagram")
}

func TestUpdateArtist_EmptyStringClears(t *testing.T) {
	f := newFixture(t)
	f.seedOverlay(t, `{"jane-doe": {"name": "Jane Doe", "instagram": "@janedoe"}}`)

	updated, err := f.service.UpdateArtist(context.Background(), "jane-doe", artist.UpdateInput{
		Instagram: pointer.To(""),
	})
	require.NoError(t, err)

	// Cleared, not defaulted
	assert.Nil(t, updated.Instagram)
	// Untouched
	assert.Equal(t, "Jane Doe", updated.Name)

	// The stored document records the clear as an explicit null.
	document, err := f.docs.Load(context.Background(), constants.ArtistsDocument)
	require.NoError(t, err)
	assert.Contains(t, string(document), `"instagram": null`)
}

func TestDeleteArtist_FallsBackToFolderLayer(t *testing.T) {
	f := newFixture(t)
	f.seedMedia(t, "jane-doe", "beymen__fw25__photo.jpg")
	f.seedOverlay(t, `{"jane-doe": {"name": "Jane D.", "portfolio": {"jane-doe-0": {"videoUrl": "https://youtu.be/x"}}}}`)

	require.NoError(t, f.service.DeleteArtist(context.Background(), "jane-doe"))

	// The folder went with the artist, so the slug is gone entirely.
	assert.NoDirExists(t, filepath.Join(f.root, "artists", "jane-doe"))
	_, err := f.service.GetArtist(context.Background(), "jane-doe")
	require.NotNil(t, apperr.As(err))
}

func TestUploadWork_ScannableBackendSkipsOverlay(t *testing.T) {
	f := newFixture(t)
	f.seedMedia(t, "jane-doe")

	work, err := f.service.UploadWork(context.Background(), artist.UploadInput{
		Slug:         "jane-doe",
		Brand:        "Beymen",
		ProjectTitle: "FW25 Campaign",
		Type:         "photo",
		FileName:     "raw upload.jpg",
		ContentType:  "image/jpeg",
		Size:         3,
		Content:      strings.NewReader("img"),
	})
	require.NoError(t, err)

	assert.Equal(t, "/artists/jane-doe/beymen__fw25-campaign__photo.jpg", work.URL)
	assert.Equal(t, "jane-doe-beymen__fw25-campaign__photo", work.ID)
	assert.FileExists(t, filepath.Join(f.root, "artists", "jane-doe", "beymen__fw25-campaign__photo.jpg"))

	// The folder scan covers it; no overlay entry needed.
	_, err = f.docs.Load(context.Background(), constants.ArtistsDocument)
	assert.ErrorIs(t, err, docstore.ErrNotFound)

	// And the gallery sees it.
	resolved, err := f.service.GetArtist(context.Background(), "jane-doe")
	require.NoError(t, err)
	require.Len(t, resolved.Portfolio, 1)
	assert.Equal(t, "Beymen", resolved.Portfolio[0].Brand)
}

func TestUploadWork_RejectsVideoFileForPhotoWork(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.UploadWork(context.Background(), artist.UploadInput{
		Slug:        "jane-doe",
		Type:        "photo",
		FileName:    "clip.mp4",
		ContentType: "video/mp4",
		Size:        3,
		Content:     strings.NewReader("vid"),
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

func TestSetWorkVideoURL_ClearPrunesEmptyEntries(t *testing.T) {
	f := newFixture(t)
	f.seedMedia(t, "jane-doe", "beymen__bts__video.mp4")

	ctx := context.Background()

	require.NoError(t, f.service.SetWorkVideoURL(ctx, "jane-doe", "jane-doe-0", "https://vimeo.com/12345"))

	resolved, err := f.service.GetArtist(ctx, "jane-doe")
	require.NoError(t, err)
	assert.Equal(t, "https://vimeo.com/12345", resolved.Portfolio[0].VideoURL)

	// Clearing removes the override and the now-empty work entry.
	require.NoError(t, f.service.SetWorkVideoURL(ctx, "jane-doe", "jane-doe-0", ""))

	document, err := f.docs.Load(ctx, constants.ArtistsDocument)
	require.NoError(t, err)
	assert.NotContains(t, string(document), "jane-doe-0")
}

func TestDeleteWork_RefusesForeignURL(t *testing.T) {
	f := newFixture(t)

	err := f.service.DeleteWork(context.Background(), "jane-doe", "https://cdn.example.com/foreign.jpg")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

func TestDeleteWork_RemovesFileAndOverlayRecord(t *testing.T) {
	f := newFixture(t)
	f.seedMedia(t, "jane-doe", "beymen__fw25__photo.jpg")
	f.seedOverlay(t, `{"jane-doe": {"portfolio": {"jane-doe-beymen__fw25__photo": {"videoUrl": "https://youtu.be/x"}}}}`)

	err := f.service.DeleteWork(context.Background(), "jane-doe", "/artists/jane-doe/beymen__fw25__photo.jpg")
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(f.root, "artists", "jane-doe", "beymen__fw25__photo.jpg"))

	document, err := f.docs.Load(context.Background(), constants.ArtistsDocument)
	require.NoError(t, err)
	assert.NotContains(t, string(document), "beymen__fw25__photo")
}

func TestUploadProfileImage_ReplacesOldExtension(t *testing.T) {
	f := newFixture(t)
	f.seedMedia(t, "jane-doe", "profile.jpg")

	url, err := f.service.UploadProfileImage(
		context.Background(),
		"jane-doe", "portrait.webp", "image/webp", 3, strings.NewReader("img"),
	)
	require.NoError(t, err)

	assert.Equal(t, "/artists/jane-doe/profile.webp", url)
	assert.NoFileExists(t, filepath.Join(f.root, "artists", "jane-doe", "profile.jpg"))
	assert.FileExists(t, filepath.Join(f.root, "artists", "jane-doe", "profile.webp"))
}
