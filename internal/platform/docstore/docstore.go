// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

/*
Package docstore persists whole JSON documents by name.

The artist metadata overlay and the submissions list are each a single
document. Backends trade durability models:

  - File: local disk, atomic rename on save. The default.
  - GitHub: documents live in a repository and every save is a commit,
    giving a full edit history for free.
  - Memory: volatile, for tests.

Documents are read and written whole. The store does not interpret content
beyond treating it as bytes.
*/
package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by [Store.Load] when a document does not exist yet.
// Callers treat a missing document as an empty one.
var ErrNotFound = errors.New("docstore: document not found")

// Store loads and saves named JSON documents.
type Store interface {
	// Load returns the current content of the named document, or
	// [ErrNotFound] if it has never been saved.
	Load(ctx context.Context, name string) ([]byte, error)

	// Save replaces the named document. message describes the change for
	// backends that keep history; others ignore it.
	Save(ctx context.Context, name string, content []byte, message string) error
}
