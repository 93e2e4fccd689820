// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

/*
Package medialib scans the local media tree that backs the artist gallery.

The tree mirrors the public URL space: {root}/artists/{slug}/{file}. Dropping
an image into an artist's folder is a supported way to publish a work, so the
scan is the source of truth for which media files exist; the metadata overlay
only refines what the scan finds.

All lookups treat a missing root or folder as empty rather than an error: a
fresh deployment has no media tree until the first upload.
*/
package medialib

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lumestudio/lume-api/pkg/medianame"
)

// artistsDir is the subdirectory of the media root holding artist folders.
const artistsDir = "artists"

// Library reads and maintains the on-disk media tree.
type Library struct {
	root string
}

// New creates a library over the given media root.
func New(root string) *Library {
	return &Library{root: root}
}

// Folders returns the artist slugs that have a media folder, sorted.
func (l *Library) Folders() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(l.root, artistsDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("medialib: scan artist folders: %w", err)
	}

	var slugs []string
	for _, entry := range entries {
		if entry.IsDir() {
			slugs = append(slugs, entry.Name())
		}
	}

	sort.Strings(slugs)
	return slugs, nil
}

// Files returns the media file names in an artist's folder, sorted. Profile
// images and files with unsupported extensions are excluded.
func (l *Library) Files(slug string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(l.root, artistsDir, slug))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("medialib: scan folder for %s: %w", slug, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if medianame.IsProfileImage(name) || !medianame.ScannableExtension(name) {
			continue
		}
		files = append(files, name)
	}

	sort.Strings(files)
	return files, nil
}

// ProfileImage returns the file name of the artist's profile image, or an
// empty string when none exists.
func (l *Library) ProfileImage(slug string) (string, error) {
	entries, err := os.ReadDir(filepath.Join(l.root, artistsDir, slug))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("medialib: scan folder for %s: %w", slug, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() && medianame.IsProfileImage(entry.Name()) {
			return entry.Name(), nil
		}
	}
	return "", nil
}

// EnsureFolder creates an artist's media folder if it does not exist.
func (l *Library) EnsureFolder(slug string) error {
	if err := os.MkdirAll(filepath.Join(l.root, artistsDir, slug), 0o755); err != nil {
		return fmt.Errorf("medialib: create folder for %s: %w", slug, err)
	}
	return nil
}

// RemoveFolder deletes an artist's media folder and everything in it.
// Removing a folder that never existed is not an error.
func (l *Library) RemoveFolder(slug string) error {
	if err := os.RemoveAll(filepath.Join(l.root, artistsDir, slug)); err != nil {
		return fmt.Errorf("medialib: remove folder for %s: %w", slug, err)
	}
	return nil
}

// Remove deletes a single file from an artist's folder. Missing files are
// ignored: the caller only cares that the file is gone.
func (l *Library) Remove(slug, fileName string) error {
	// Refuse path traversal in stored names.
	if strings.Contains(fileName, "/") || strings.Contains(fileName, "\\") || strings.Contains(fileName, "..") {
		return fmt.Errorf("medialib: invalid file name %q", fileName)
	}

	err := os.Remove(filepath.Join(l.root, artistsDir, slug, fileName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("medialib: remove %s/%s: %w", slug, fileName, err)
	}
	return nil
}
