// Package provider defines the Completer interface and an embeddable base
// client for LLM provider implementations.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/germanamz/togetherchat/pkg/chats/chat"
	"github.com/germanamz/togetherchat/pkg/chats/message"
)

// Completer sends a conversation to an LLM and returns the assistant's reply.
type Completer interface {
	Complete(ctx context.Context, c *chat.Chat) (message.Message, error)
}

// Auth holds authentication settings for an LLM provider API.
type Auth struct {
	Key    string // API key value.
	Header string // Header name (default: "Authorization").
	Scheme string // Scheme prefix (default: "Bearer" when Header is "Authorization").
}

// Client holds shared state for LLM provider implementations. Embed it in
// concrete provider structs to get HTTP helpers, auth, and custom headers.
// Concrete types should define their own Complete method to shadow the
// default stub.
type Client struct {
	Model       string            // Model identifier sent with each request.
	Temperature float64           // Sampling temperature; zero means provider default.
	MaxTokens   int               // Maximum tokens in the response; zero means provider default.
	Auth        Auth              // Authentication settings.
	BaseURL     string            // API base URL (no trailing slash).
	HTTPClient  *http.Client      // HTTP client; falls back to http.DefaultClient.
	Headers     map[string]string // Extra headers applied to every request.
}

// NewClient creates a Client with the given settings.
// A nil httpClient falls back to http.DefaultClient at call time.
func NewClient(baseURL string, auth Auth, httpClient *http.Client) Client {
	return Client{
		Auth:       auth,
		BaseURL:    baseURL,
		HTTPClient: httpClient,
	}
}

// Complete is a stub that returns an error. Concrete providers that embed
// Client should define their own Complete method to shadow this one.
func (c *Client) Complete(_ context.Context, _ *chat.Chat) (message.Message, error) {
	return message.Message{}, errors.New("provider: Complete not implemented")
}

// httpClient returns the configured client or http.DefaultClient.
func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}

	return http.DefaultClient
}

// NewRequest builds an *http.Request with the base URL, auth, and custom
// headers already applied.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	url := c.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	// Apply auth.
	if c.Auth.Key != "" {
		header := c.Auth.Header
		if header == "" {
			header = "Authorization"
		}

		value := c.Auth.Key
		if header == "Authorization" {
			scheme := c.Auth.Scheme
			if scheme == "" {
				scheme = "Bearer"
			}

			value = scheme + " " + value
		} else if c.Auth.Scheme != "" {
			value = c.Auth.Scheme + " " + value
		}

		req.Header.Set(header, value)
	}

	// Apply custom headers.
	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// Do sends the request using the configured HTTP client.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient().Do(req) //nolint:gosec // URL is built from trusted BaseURL config, not user input.
}

// PostJSON marshals payload as JSON, sends a POST to the given path,
// checks for a 2xx status, and unmarshals the response body into dest.
// If dest is nil the response body is discarded after the status check.
func (c *Client) PostJSON(ctx context.Context, path string, payload any, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := c.NewRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	if dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// GetJSON sends a GET to the given path, checks for a 2xx status, and
// unmarshals the response body into dest. An empty response body is an
// error: endpoints served through GetJSON are expected to return a document.
func (c *Client) GetJSON(ctx context.Context, path string, dest any) error {
	req, err := c.NewRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return errors.New("empty response body")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
