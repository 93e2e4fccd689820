// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package submission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lumestudio/lume-api/internal/platform/constants"
	"github.com/lumestudio/lume-api/internal/platform/docstore"
)

// Store persists the submission queue as a single JSON document.
//
// Load degrades to an empty queue so the public site never breaks on a
// backend outage; Save surfaces every error.
type Store struct {
	docs   docstore.Store
	logger *slog.Logger
}

// NewStore creates a store over the given document backend.
func NewStore(docs docstore.Store, logger *slog.Logger) *Store {
	return &Store{docs: docs, logger: logger}
}

// Load returns every stored submission, or none when the document is
// missing, unreadable, or malformed.
func (s *Store) Load(ctx context.Context) []Submission {
	content, err := s.docs.Load(ctx, constants.SubmissionsDocument)
	if err != nil {
		if !errors.Is(err, docstore.ErrNotFound) {
			s.logger.WarnContext(ctx, "submissions_load_degraded", slog.String("error", err.Error()))
		}
		return nil
	}

	var submissions []Submission
	if err := json.Unmarshal(content, &submissions); err != nil {
		s.logger.WarnContext(ctx, "submissions_parse_degraded", slog.String("error", err.Error()))
		return nil
	}
	return submissions
}

// Save persists the full queue. message describes the change for backends
// that keep history.
func (s *Store) Save(ctx context.Context, submissions []Submission, message string) error {
	content, err := json.MarshalIndent(submissions, "", "  ")
	if err != nil {
		return fmt.Errorf("submission: encode queue: %w", err)
	}

	if err := s.docs.Save(ctx, constants.SubmissionsDocument, content, message); err != nil {
		return fmt.Errorf("submission: save queue: %w", err)
	}
	return nil
}
