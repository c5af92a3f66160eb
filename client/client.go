// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/danielhkuo/makeurownmenu/models"
)

// APIError is a non-2xx response from the API
type APIError struct {
	StatusCode int
	Message    string // server-provided "error" field, may be empty
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Message)
}

// Client talks to the menu submissions API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL. A nil httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// Submit handles POST /api/submit
func (c *Client) Submit(ctx context.Context, req models.SubmitRequest) (models.SubmitResponse, error) {
	var resp models.SubmitResponse
	body, err := json.Marshal(req)
	if err != nil {
		return resp, fmt.Errorf("failed to encode submission: %w", err)
	}

	err = c.do(ctx, http.MethodPost, "/api/submit", bytes.NewReader(body), &resp)
	return resp, err
}

// List handles GET /submissions. An empty email returns every submission.
func (c *Client) List(ctx context.Context, email string) ([]models.Submission, error) {
	var subs []models.Submission
	err := c.do(ctx, http.MethodGet, withEmail("/submissions", email), nil, &subs)
	return subs, err
}

// Stats handles GET /stats
func (c *Client) Stats(ctx context.Context, email string) (models.Stats, error) {
	var stats models.Stats
	err := c.do(ctx, http.MethodGet, withEmail("/stats", email), nil, &stats)
	return stats, err
}

func withEmail(path, email string) string {
	if email == "" {
		return path
	}
	return path + "?" + url.Values{"email": {email}}.Encode()
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp models.ErrorResponse
		// Body may not be JSON; Message stays empty then
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
