// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

/*
Package github is a minimal client for the GitHub Contents API.

It covers exactly the two calls the metadata backend needs: fetching a file
(content plus its blob SHA) and committing a new version. Writes to the same
path must present the SHA of the version they read, which is how concurrent
admin edits are detected instead of silently overwritten.

Requests are throttled through a token bucket to stay well inside GitHub's
secondary rate limits.
*/
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const apiBaseURL = "https://api.github.com"

// requestsPerSecond keeps the client far below GitHub's secondary limits
// even when an admin bulk-edits artists.
const requestsPerSecond = 2

// ErrFileNotFound is returned by [Client.GetFile] when the path does not
// exist on the configured branch.
var ErrFileNotFound = errors.New("github: file not found")

// File is a fetched repository file.
type File struct {
	// Content is the decoded file body.
	Content []byte
	// SHA is the blob SHA required to update this file.
	SHA string
}

// Client talks to the Contents API for a single repository branch.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter

	token  string
	owner  string
	repo   string
	branch string
}

// NewClient creates a Contents API client.
func NewClient(token, owner, repo, branch string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		token:      token,
		owner:      owner,
		repo:       repo,
		branch:     branch,
	}
}

// GetFile fetches a file from the repository.
func (c *Client) GetFile(ctx context.Context, path string) (*File, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("github: throttle wait: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s", apiBaseURL, c.owner, c.repo, path, c.branch)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("github: build request: %w", err)
	}
	c.setHeaders(request)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("github: get %s: %w", path, err)
	}
	defer response.Body.Close()

	switch response.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrFileNotFound
	default:
		return nil, apiError("get", path, response)
	}

	var payload struct {
		Content  string `json:"content"`
		Encoding string `json:"encoding"`
		SHA      string `json:"sha"`
	}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("github: decode response for %s: %w", path, err)
	}

	if payload.Encoding != "base64" {
		return nil, fmt.Errorf("github: unexpected encoding %q for %s", payload.Encoding, path)
	}

	// The API wraps base64 bodies in newlines.
	raw := strings.ReplaceAll(payload.Content, "\n", "")
	content, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("github: decode content of %s: %w", path, err)
	}

	return &File{Content: content, SHA: payload.SHA}, nil
}

// PutFile commits a new version of a file.
//
// sha must be the blob SHA of the version being replaced, or empty when the
// file is being created. GitHub rejects stale SHAs with a 409.
func (c *Client) PutFile(ctx context.Context, path string, content []byte, message, sha string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("github: throttle wait: %w", err)
	}

	body := map[string]string{
		"message": message,
		"content": base64.StdEncoding.EncodeToString(content),
		"branch":  c.branch,
	}
	if sha != "" {
		body["sha"] = sha
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("github: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", apiBaseURL, c.owner, c.repo, path)
	request, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("github: build request: %w", err)
	}
	c.setHeaders(request)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("github: put %s: %w", path, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		return "", apiError("put", path, response)
	}

	var payload struct {
		Content struct {
			SHA string `json:"sha"`
		} `json:"content"`
	}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("github: decode response for %s: %w", path, err)
	}

	return payload.Content.SHA, nil
}

func (c *Client) setHeaders(request *http.Request) {
	request.Header.Set("Authorization", "Bearer "+c.token)
	request.Header.Set("Accept", "application/vnd.github+json")
	request.Header.Set("X-GitHub-Api-Version", "2022-11-28")
}

func apiError(operation, path string, response *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(response.Body, 512))
	return fmt.Errorf("github: %s %s returned %d: %s", operation, path, response.StatusCode, string(snippet))
}
