// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package docstore

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sync"

	"github.com/lumestudio/lume-api/internal/platform/github"
)

// repoDataDir is where documents live inside the metadata repository.
const repoDataDir = "data"

// GitHubStore keeps documents in a GitHub repository, one commit per save.
//
// # Versioning
//
// The Contents API requires each update to present the blob SHA of the
// version it replaces. The store remembers the SHA from the last load or
// save per document; a stale SHA means someone else committed in between,
// and the save fails rather than clobbering their change.
type GitHubStore struct {
	client *github.Client

	mu   sync.Mutex
	shas map[string]string
}

// NewGitHubStore creates a store on top of a Contents API client.
func NewGitHubStore(client *github.Client) *GitHubStore {
	return &GitHubStore{
		client: client,
		shas:   make(map[string]string),
	}
}

// Load implements [Store].
func (s *GitHubStore) Load(ctx context.Context, name string) ([]byte, error) {
	file, err := s.client.GetFile(ctx, path.Join(repoDataDir, name))
	if err != nil {
		if errors.Is(err, github.ErrFileNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("docstore: load %s from github: %w", name, err)
	}

	s.mu.Lock()
	s.shas[name] = file.SHA
	s.mu.Unlock()

	return file.Content, nil
}

// Save implements [Store]. The message becomes the commit message.
func (s *GitHubStore) Save(ctx context.Context, name string, content []byte, message string) error {
	s.mu.Lock()
	sha := s.shas[name]
	s.mu.Unlock()

	if sha == "" {
		// First save since startup: fetch the current SHA in case the
		// document already exists in the repository.
		file, err := s.client.GetFile(ctx, path.Join(repoDataDir, name))
		switch {
		case err == nil:
			sha = file.SHA
		case errors.Is(err, github.ErrFileNotFound):
			// Creating a new document, no SHA needed.
		default:
			return fmt.Errorf("docstore: resolve sha for %s: %w", name, err)
		}
	}

	if message == "" {
		message = "Update " + name
	}

	newSHA, err := s.client.PutFile(ctx, path.Join(repoDataDir, name), content, message, sha)
	if err != nil {
		return fmt.Errorf("docstore: save %s to github: %w", name, err)
	}

	s.mu.Lock()
	s.shas[name] = newSHA
	s.mu.Unlock()

	return nil
}
