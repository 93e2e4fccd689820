// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package medialib_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumestudio/lume-api/internal/storage/medialib"
)

func seedFolder(t *testing.T, root, slug string, files ...string) {
	t.Helper()
	dir := filepath.Join(root, "artists", slug)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
}

func TestLibrary_MissingRootIsEmpty(t *testing.T) {
	library := medialib.New(filepath.Join(t.TempDir(), "does-not-exist"))

	folders, err := library.Folders()
	require.NoError(t, err)
	assert.Empty(t, folders)

	files, err := library.Files("anyone")
	require.NoError(t, err)
	assert.Empty(t, files)

	profile, err := library.ProfileImage("anyone")
	require.NoError(t, err)
	assert.Empty(t, profile)
}

func TestLibrary_Files(t *testing.T) {
	root := t.TempDir()
	seedFolder(t, root, "jane-doe",
		"beymen__fw25__photo.jpg",
		"acme__spring__video.mp4",
		"profile.jpg",   // excluded: profile image
		"notes.txt",     // excluded: not a media extension
		".DS_Store",     // excluded: not a media extension
	)
	seedFolder(t, root, "ali-veli")

	library := medialib.New(root)

	files, err := library.Files("jane-doe")
	require.NoError(t, err)
	assert.Equal(t, []string{"acme__spring__video.mp4", "beymen__fw25__photo.jpg"}, files)

	folders, err := library.Folders()
	require.NoError(t, err)
	assert.Equal(t, []string{"ali-veli", "jane-doe"}, folders)
}

func TestLibrary_ProfileImage(t *testing.T) {
	root := t.TempDir()
	seedFolder(t, root, "jane-doe", "profile.webp", "beymen__fw25__photo.jpg")

	library := medialib.New(root)

	profile, err := library.ProfileImage("jane-doe")
	require.NoError(t, err)
	assert.Equal(t, "profile.webp", profile)
}

func TestLibrary_FolderLifecycle(t *testing.T) {
	root := t.TempDir()
	library := medialib.New(root)

	require.NoError(t, library.EnsureFolder("new-artist"))
	assert.DirExists(t, filepath.Join(root, "artists", "new-artist"))

	// EnsureFolder is idempotent
	require.NoError(t, library.EnsureFolder("new-artist"))

	require.NoError(t, library.RemoveFolder("new-artist"))
	assert.NoDirExists(t, filepath.Join(root, "artists", "new-artist"))

	// Removing again is fine
	require.NoError(t, library.RemoveFolder("new-artist"))
}

func TestLibrary_Remove(t *testing.T) {
	root := t.TempDir()
	seedFolder(t, root, "jane-doe", "beymen__fw25__photo.jpg")

	library := medialib.New(root)

	require.NoError(t, library.Remove("jane-doe", "beymen__fw25__photo.jpg"))
	assert.NoFileExists(t, filepath.Join(root, "artists", "jane-doe", "beymen__fw25__photo.jpg"))

	// Missing file is not an error
	require.NoError(t, library.Remove("jane-doe", "gone.jpg"))

	// Traversal attempts are refused
	assert.Error(t, library.Remove("jane-doe", "../escape.jpg"))
}
