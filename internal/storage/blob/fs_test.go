// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package blob_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumestudio/lume-api/internal/storage/blob"
)

func TestFSStore_PutAndDelete(t *testing.T) {
	root := t.TempDir()
	store := blob.NewFSStore(root)
	ctx := context.Background()

	url, err := store.Put(ctx, "artists/jane-doe/beymen__fw25__photo.jpg", strings.NewReader("img"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/artists/jane-doe/beymen__fw25__photo.jpg", url)
	assert.FileExists(t, filepath.Join(root, "artists", "jane-doe", "beymen__fw25__photo.jpg"))

	require.NoError(t, store.Delete(ctx, url))
	assert.NoFileExists(t, filepath.Join(root, "artists", "jane-doe", "beymen__fw25__photo.jpg"))

	// Deleting an already-gone blob is fine
	require.NoError(t, store.Delete(ctx, url))
}

func TestFSStore_RefusesForeignURLs(t *testing.T) {
	store := blob.NewFSStore(t.TempDir())

	assert.False(t, store.Owns("https://cdn.example.com/artists/x.jpg"))
	assert.Error(t, store.Delete(context.Background(), "https://cdn.example.com/artists/x.jpg"))
}

func TestFSStore_RefusesTraversal(t *testing.T) {
	store := blob.NewFSStore(t.TempDir())

	_, err := store.Put(context.Background(), "artists/../../etc/passwd", strings.NewReader("x"), "")
	assert.Error(t, err)
}

func TestFSStore_DeletePrefix(t *testing.T) {
	root := t.TempDir()
	store := blob.NewFSStore(root)
	ctx := context.Background()

	_, err := store.Put(ctx, "artists/jane-doe/a.jpg", strings.NewReader("a"), "")
	require.NoError(t, err)
	_, err = store.Put(ctx, "artists/jane-doe/b.jpg", strings.NewReader("b"), "")
	require.NoError(t, err)

	require.NoError(t, store.DeletePrefix(ctx, "artists/jane-doe"))
	assert.NoDirExists(t, filepath.Join(root, "artists", "jane-doe"))
}

func TestFSStore_Scannable(t *testing.T) {
	assert.True(t, blob.NewFSStore(t.TempDir()).Scannable())
}
