// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

// Resend delivers email through the Resend HTTP API.
type Resend struct {
	httpClient *http.Client
	apiKey     string
	from       string
}

// NewResend creates a mailer sending from the given address.
func NewResend(apiKey, from string) *Resend {
	return &Resend{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		from:       from,
	}
}

// Send implements [Mailer].
func (r *Resend) Send(ctx context.Context, message Message) error {
	payload := map[string]interface{}{
		"from":    r.from,
		"to":      []string{message.To},
		"subject": message.Subject,
		"text":    message.Text,
	}
	if message.ReplyTo != "" {
		payload["reply_to"] = message.ReplyTo
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("mail: encode message: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("mail: build request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+r.apiKey)
	request.Header.Set("Content-Type", "application/json")

	response, err := r.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("mail: send to %s: %w", message.To, err)
	}
	defer response.Body.Close()

	if response.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return fmt.Errorf("mail: resend returned %d: %s", response.StatusCode, string(snippet))
	}

	return nil
}
