// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

/*
Package blob stores uploaded media files and hands back public URLs.

Two backends exist:

  - FS: files land under the local media root and are served by the API
    itself. Scannable, since the medialib folder scan sees them.
  - S3: files go to an S3-compatible bucket fronted by a CDN. Not scannable;
    every upload must be recorded in the metadata overlay to stay visible.

Keys are slash-joined paths like "artists/jane-doe/beymen__fw25__photo.jpg"
and map one-to-one onto public URL paths.
*/
package blob

import (
	"context"
	"io"
)

// Store persists media blobs.
type Store interface {
	// Put stores the content under key and returns its public URL.
	Put(ctx context.Context, key string, content io.Reader, contentType string) (string, error)

	// Delete removes the blob behind a public URL previously returned by
	// Put. URLs the store does not own are refused.
	Delete(ctx context.Context, url string) error

	// DeletePrefix removes every blob under a key prefix, such as an
	// artist's whole folder.
	DeletePrefix(ctx context.Context, prefix string) error

	// Owns reports whether the store can resolve the given URL to one of
	// its own blobs.
	Owns(url string) bool

	// Scannable reports whether blobs stored here show up in the local
	// media folder scan. When false, uploads must be fully described in
	// the metadata overlay or they are invisible to the gallery.
	Scannable() bool
}
