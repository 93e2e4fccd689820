// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package artist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lumestudio/lume-api/internal/platform/constants"
	"github.com/lumestudio/lume-api/internal/platform/docstore"
)

// MetadataStore persists the [Overlay] as a single JSON document.
//
// # Failure Semantics
//
// Load degrades to an empty overlay on any failure: the site must keep
// rendering from seed + folder scan even when the metadata backend is down.
// Save surfaces every error, since a mutation that did not persist must not
// be reported as success.
type MetadataStore struct {
	docs   docstore.Store
	logger *slog.Logger
}

// NewMetadataStore creates a store over the given document backend.
func NewMetadataStore(docs docstore.Store, logger *slog.Logger) *MetadataStore {
	return &MetadataStore{docs: docs, logger: logger}
}

// Load returns the current overlay, or an empty one when the document is
// missing, unreadable, or malformed.
func (s *MetadataStore) Load(ctx context.Context) Overlay {
	content, err := s.docs.Load(ctx, constants.ArtistsDocument)
	if err != nil {
		if !errors.Is(err, docstore.ErrNotFound) {
			s.logger.WarnContext(ctx, "overlay_load_degraded", slog.String("error", err.Error()))
		}
		return Overlay{}
	}

	var overlay Overlay
	if err := json.Unmarshal(content, &overlay); err != nil {
		s.logger.WarnContext(ctx, "overlay_parse_degraded", slog.String("error", err.Error()))
		return Overlay{}
	}
	if overlay == nil {
		overlay = Overlay{}
	}
	return overlay
}

// Save persists the overlay. message describes the change for backends that
// keep history.
func (s *MetadataStore) Save(ctx context.Context, overlay Overlay, message string) error {
	content, err := json.MarshalIndent(overlay, "", "  ")
	if err != nil {
		return fmt.Errorf("artist: encode overlay: %w", err)
	}

	if err := s.docs.Save(ctx, constants.ArtistsDocument, content, message); err != nil {
		return fmt.Errorf("artist: save overlay: %w", err)
	}
	return nil
}
