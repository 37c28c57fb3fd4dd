package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bako110/pausemanager/internal/models"
)

// Clients

func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	if err := c.do(ctx, http.MethodGet, "/clients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateClient(ctx context.Context, draft models.Client) (models.Client, error) {
	var out models.Client
	if err := c.do(ctx, http.MethodPost, "/clients", draft, &out); err != nil {
		return models.Client{}, err
	}
	return out, nil
}

// UpdateClient returns the canonical record when the gateway echoes one back,
// nil otherwise; the caller then merges the patch locally.
func (c *Client) UpdateClient(ctx context.Context, id string, patch models.Client) (*models.Client, error) {
	return updateResource(ctx, c, "/clients/"+id, patch)
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/clients/"+id, nil, nil)
}

// Services

func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	if err := c.do(ctx, http.MethodGet, "/services", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateService(ctx context.Context, draft models.Service) (models.Service, error) {
	var out models.Service
	if err := c.do(ctx, http.MethodPost, "/services", draft, &out); err != nil {
		return models.Service{}, err
	}
	return out, nil
}

func (c *Client) UpdateService(ctx context.Context, id string, patch models.Service) (*models.Service, error) {
	return updateResource(ctx, c, "/services/"+id, patch)
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/services/"+id, nil, nil)
}

// Events

func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpcomingEvents(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	if err := c.do(ctx, http.MethodGet, "/events/upcoming", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateEvent(ctx context.Context, draft models.Event) (models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodPost, "/events", draft, &out); err != nil {
		return models.Event{}, err
	}
	return out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, patch models.Event) (*models.Event, error) {
	return updateResource(ctx, c, "/events/"+id, patch)
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+id, nil, nil)
}

// Stats

func (c *Client) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var out models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &out); err != nil {
		return models.DashboardStats{}, err
	}
	return out, nil
}

// updateResource PUTs a patch and decodes an echoed canonical record when
// the envelope carries one. Gateways that return no body (or a bare
// acknowledgement) yield a nil record without error.
func updateResource[T any](ctx context.Context, c *Client, path string, patch T) (*T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPut, path, patch, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, nil // acknowledgement without a canonical record
	}
	return &out, nil
}
