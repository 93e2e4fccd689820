// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FSStore writes blobs under the local media root. Public URLs are
// root-relative paths ("/artists/...") served by the API's static file
// routes.
type FSStore struct {
	root string
}

// NewFSStore creates a filesystem blob store over the media root.
func NewFSStore(root string) *FSStore {
	return &FSStore{root: root}
}

// Put implements [Store].
func (s *FSStore) Put(_ context.Context, key string, content io.Reader, _ string) (string, error) {
	cleaned, err := s.cleanKey(key)
	if err != nil {
		return "", err
	}

	target := filepath.Join(s.root, filepath.FromSlash(cleaned))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("blob: create directory for %s: %w", cleaned, err)
	}

	file, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("blob: create %s: %w", cleaned, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("blob: write %s: %w", cleaned, err)
	}

	return "/" + cleaned, nil
}

// Delete implements [Store].
func (s *FSStore) Delete(_ context.Context, url string) error {
	if !s.Owns(url) {
		return fmt.Errorf("blob: refusing to delete foreign URL %q", url)
	}

	cleaned, err := s.cleanKey(strings.TrimPrefix(url, "/"))
	if err != nil {
		return err
	}

	err = os.Remove(filepath.Join(s.root, filepath.FromSlash(cleaned)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("blob: delete %s: %w", cleaned, err)
	}
	return nil
}

// DeletePrefix implements [Store].
func (s *FSStore) DeletePrefix(_ context.Context, prefix string) error {
	cleaned, err := s.cleanKey(prefix)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(filepath.Join(s.root, filepath.FromSlash(cleaned))); err != nil {
		return fmt.Errorf("blob: delete prefix %s: %w", cleaned, err)
	}
	return nil
}

// Owns implements [Store]. The filesystem store owns root-relative media
// paths; absolute http(s) URLs belong to someone else.
func (s *FSStore) Owns(url string) bool {
	return strings.HasPrefix(url, "/artists/") || strings.HasPrefix(url, "/submissions/")
}

// Scannable implements [Store]. Local files show up in the folder scan.
func (*FSStore) Scannable() bool { return true }

// cleanKey rejects traversal and normalizes the key.
func (s *FSStore) cleanKey(key string) (string, error) {
	cleaned := strings.Trim(key, "/")
	if cleaned == "" || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("blob: invalid key %q", key)
	}
	return cleaned, nil
}
