// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package docstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps documents as files under a single directory.
//
// Saves write to a temp file and rename over the target, so a crash mid-write
// never leaves a half-written document behind.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("docstore: create data dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Load implements [Store].
func (s *FileStore) Load(_ context.Context, name string) ([]byte, error) {
	content, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("docstore: read %s: %w", name, err)
	}
	return content, nil
}

// Save implements [Store]. The message is ignored: the filesystem keeps no
// history.
func (s *FileStore) Save(_ context.Context, name string, content []byte, _ string) error {
	target := filepath.Join(s.dir, name)

	temp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("docstore: create temp for %s: %w", name, err)
	}
	tempName := temp.Name()

	if _, err := temp.Write(content); err != nil {
		temp.Close()
		os.Remove(tempName)
		return fmt.Errorf("docstore: write %s: %w", name, err)
	}
	if err := temp.Close(); err != nil {
		os.Remove(tempName)
		return fmt.Errorf("docstore: close %s: %w", name, err)
	}

	if err := os.Rename(tempName, target); err != nil {
		os.Remove(tempName)
		return fmt.Errorf("docstore: replace %s: %w", name, err)
	}

	return nil
}
