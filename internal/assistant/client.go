// Package assistant is the pass-through to the external generative
// text endpoint used for ad-hoc analytics questions. The client only
// ever receives the four collection sizes and the operator's
// question; it never touches record state, and any failure collapses
// into one sentinel so the handler can render a single fixed message.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrExternalService covers every way the call can fail: network,
// auth, quota, timeout, malformed response. Callers must not
// distinguish further.
var ErrExternalService = errors.New("assistant service unavailable")

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Question carries everything the endpoint is allowed to see.
type Question struct {
	Directors int
	Plays     int
	Seats     int
	Tickets   int
	Text      string
}

// Client calls a Gemini-style generateContent endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient constructs a Client. An empty baseURL selects the public
// endpoint; timeout bounds the whole request.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Ask sends the question with its statistics context and returns the
// answer text. Every failure is reported as ErrExternalService.
func (c *Client) Ask(ctx context.Context, q Question) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt(q)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrExternalService, resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	for _, cand := range decoded.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text, nil
			}
		}
	}
	return "", fmt.Errorf("%w: empty response", ErrExternalService)
}

// prompt frames the question with the current collection sizes so the
// model can answer statistics questions with real numbers.
func prompt(q Question) string {
	return fmt.Sprintf(`You are the analyst of a theater management system.
Current statistics:
- Directors: %d
- Plays: %d
- Seats: %d
- Tickets sold: %d

Answer the question below using the system data. When asked for
statistics, quote the exact numbers.

Question: %s`, q.Directors, q.Plays, q.Seats, q.Tickets, q.Text)
}
