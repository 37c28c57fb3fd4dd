package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the account-creation payload. Field names follow the
// gateway's contract (lastname/firstname, not last_name).
type Registration struct {
	LastName  string `json:"lastname"`
	FirstName string `json:"firstname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// AuthResult is the login response. Unlike the collection endpoints, the
// auth routes answer with a bare object, not the success/data envelope.
type AuthResult struct {
	Token string `json:"token"`
	User  struct {
		FirstName string `json:"firstname"`
		LastName  string `json:"lastname"`
		Email     string `json:"email"`
	} `json:"user"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (AuthResult, error) {
	var out AuthResult
	if err := c.doBare(ctx, "/auth/login", creds, &out); err != nil {
		return AuthResult{}, err
	}
	if out.Token == "" {
		return AuthResult{}, &RequestError{StatusCode: http.StatusOK, Message: "identifiants invalides"}
	}
	return out, nil
}

func (c *Client) RegisterAccount(ctx context.Context, reg Registration) error {
	return c.doBare(ctx, "/auth/register", reg, nil)
}

// doBare posts JSON and decodes the raw response body, bypassing the
// envelope convention used by the collection endpoints.
func (c *Client) doBare(ctx context.Context, path string, body, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(encoded))
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
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		msg := ""
		if json.Unmarshal(raw, &env) == nil {
			msg = env.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("authentification refusée (status %d)", resp.StatusCode)
		}
		return &RequestError{StatusCode: resp.StatusCode, Message: msg}
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
		}
	}
	return nil
}
