// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package docstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumestudio/lume-api/internal/platform/docstore"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := docstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	// Missing documents surface the sentinel
	_, err = store.Load(ctx, "artists-metadata.json")
	assert.ErrorIs(t, err, docstore.ErrNotFound)

	content := []byte(`{"artists":{}}`)
	require.NoError(t, store.Save(ctx, "artists-metadata.json", content, "initial"))

	loaded, err := store.Load(ctx, "artists-metadata.json")
	require.NoError(t, err)
	assert.Equal(t, content, loaded)

	// Saves replace, not append
	updated := []byte(`{"artists":{"jane-doe":{}}}`)
	require.NoError(t, store.Save(ctx, "artists-metadata.json", updated, "add jane"))

	loaded, err = store.Load(ctx, "artists-metadata.json")
	require.NoError(t, err)
	assert.Equal(t, updated, loaded)
}

func TestFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := docstore.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "doc.json", []byte("{}"), ""))
	assert.FileExists(t, filepath.Join(dir, "doc.json"))
}

func TestMemoryStore_Isolation(t *testing.T) {
	store := docstore.NewMemoryStore()
	ctx := context.Background()

	original := []byte(`{"a":1}`)
	require.NoError(t, store.Save(ctx, "doc.json", original, ""))

	loaded, err := store.Load(ctx, "doc.json")
	require.NoError(t, err)

	// Mutating the returned slice must not affect the stored copy
	loaded[1] = 'x'

	reloaded, err := store.Load(ctx, "doc.json")
	require.NoError(t, err)
	assert.Equal(t, original, reloaded)
}
