// Package gateway is the HTTP adapter for the remote PauseManager API, the
// authoritative home of all durable state (clients, services, events, stats).
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnavailable marks network-level failures: the health probe failed, the
// transport errored, or the response envelope could not be decoded. Views
// treat it as an offline state blocking further mutations, unlike a
// per-call RequestError.
var ErrUnavailable = errors.New("gateway unavailable")

// RequestError is a failed call against an otherwise reachable gateway: a
// non-2xx status or an envelope with success=false. 404s fold into this with
// a status-derived message.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (status %d)", e.StatusCode)
}

// Config carries the gateway location and the session token accessor. Token
// is read at call time so a logout is never raced by a cached credential.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Token   func() string
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Token == nil {
		cfg.Token = func() string { return "" }
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// envelope is the gateway's response convention. Data is kept raw so the
// same decode path serves both single records and collections.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
}

// Health probes liveness. Any failure, including a non-2xx status, reports
// the gateway as unavailable.
func (c *Client) Health(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: health returned status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

// do performs a call and decodes the envelope's data into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	var env envelope
	envErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("%s %s returned status %d", method, path, resp.StatusCode)
		}
		return &RequestError{StatusCode: resp.StatusCode, Message: msg}
	}
	if envErr != nil {
		return fmt.Errorf("%w: malformed response envelope: %v", ErrUnavailable, envErr)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "la requête a été refusée par le serveur"
		}
		return &RequestError{StatusCode: resp.StatusCode, Message: msg}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: malformed response envelope: %v", ErrUnavailable, err)
		}
	}
	return nil
}

// newRequest builds a request with JSON headers and the bearer token, when a
// session is open.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.cfg.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}
