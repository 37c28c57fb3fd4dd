package store

import (
	"github.com/bako110/pausemanager/internal/gateway"
	"github.com/bako110/pausemanager/internal/models"
	"github.com/bako110/pausemanager/internal/validation"
)

// NewClientStore mirrors the /clients collection.
func NewClientStore(gw *gateway.Client) *Store[models.Client] {
	return &Store[models.Client]{
		id: func(c models.Client) string { return c.ID },
		validate: func(c *models.Client) validation.Violations {
			c.Normalize()
			return c.Validate()
		},
		merge: mergeClient,
		ops: ops[models.Client]{
			health: gw.Health,
			fetch:  gw.ListClients,
			create: gw.CreateClient,
			update: gw.UpdateClient,
			remove: gw.DeleteClient,
		},
	}
}

// NewServiceStore mirrors the /services catalog.
func NewServiceStore(gw *gateway.Client) *Store[models.Service] {
	return &Store[models.Service]{
		id: func(s models.Service) string { return s.ID },
		validate: func(s *models.Service) validation.Violations {
			return s.Validate()
		},
		merge: mergeService,
		ops: ops[models.Service]{
			health: gw.Health,
			fetch:  gw.ListServices,
			create: gw.CreateService,
			update: gw.UpdateService,
			remove: gw.DeleteService,
		},
	}
}

// NewEventStore mirrors the /events collection.
func NewEventStore(gw *gateway.Client) *Store[models.Event] {
	return &Store[models.Event]{
		id: func(e models.Event) string { return e.ID },
		validate: func(e *models.Event) validation.Violations {
			return e.Validate()
		},
		merge: mergeEvent,
		ops: ops[models.Event]{
			health: gw.Health,
			fetch:  gw.ListEvents,
			create: gw.CreateEvent,
			update: gw.UpdateEvent,
			remove: gw.DeleteEvent,
		},
	}
}

// The merge helpers fold a patch into the last-known record when the gateway
// acknowledges without echoing the canonical version. Identity and creation
// timestamps always come from the existing record.

func mergeClient(existing, patch models.Client) models.Client {
	patch.ID = existing.ID
	patch.CreatedAt = existing.CreatedAt
	if patch.UpdatedAt.IsZero() {
		patch.UpdatedAt = existing.UpdatedAt
	}
	return patch
}

// mergeService keeps type and status fixed: the edit flow only touches
// title, description and price.
func mergeService(existing, patch models.Service) models.Service {
	out := existing
	if patch.Title != "" {
		out.Title = patch.Title
	}
	if patch.Description != "" {
		out.Description = patch.Description
	}
	if patch.Price != "" {
		out.Price = patch.Price
	}
	return out
}

func mergeEvent(existing, patch models.Event) models.Event {
	out := existing
	if patch.Name != "" {
		out.Name = patch.Name
	}
	if patch.Date != "" {
		out.Date = patch.Date
	}
	if patch.StartTime != "" {
		out.StartTime = patch.StartTime
	}
	if patch.EndTime != "" {
		out.EndTime = patch.EndTime
	}
	if patch.Status != "" {
		out.Status = patch.Status
	}
	if patch.Location != "" {
		out.Location = patch.Location
	}
	if patch.Participants > 0 {
		out.Participants = patch.Participants
	}
	if patch.Notes != "" {
		out.Notes = patch.Notes
	}
	return out
}
