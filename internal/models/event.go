package models

import (
	"time"

	"github.com/bako110/pausemanager/internal/validation"
)

type EventType string

const (
	EventCoffee   EventType = "coffee"
	EventLunch    EventType = "lunch"
	EventCocktail EventType = "cocktail"
	EventMeeting  EventType = "meeting"
	EventTraining EventType = "training"
	EventOther    EventType = "other"
)

type EventStatus string

const (
	EventScheduled  EventStatus = "scheduled"
	EventConfirmed  EventStatus = "confirmed"
	EventInProgress EventStatus = "in-progress"
	EventCompleted  EventStatus = "completed"
	EventCancelled  EventStatus = "cancelled"
)

// EventClientRef and EventServiceRef are snapshots copied at creation time,
// not foreign keys. An event stays displayable even after the referenced
// client or service is deleted; later edits do not cascade into it.
type EventClientRef struct {
	Name    string `json:"name,omitempty"`
	Contact string `json:"contact,omitempty"`
}

type EventServiceRef struct {
	Title string `json:"title,omitempty"`
	Type  string `json:"type,omitempty"`
}

type Event struct {
	ID           string          `json:"_id,omitempty"`
	Name         string          `json:"name,omitempty"`
	Date         string          `json:"date,omitempty"`
	StartTime    string          `json:"startTime,omitempty"`
	EndTime      string          `json:"endTime,omitempty"`
	Type         EventType       `json:"type,omitempty"`
	Status       EventStatus     `json:"status,omitempty"`
	Client       EventClientRef  `json:"client,omitempty"`
	Service      EventServiceRef `json:"service,omitempty"`
	Participants int             `json:"participants,omitempty"`
	Location     string          `json:"location,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt,omitempty"`
	UpdatedAt    time.Time       `json:"updatedAt,omitempty"`
}

func (e Event) Validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("name", e.Name, v)
	validation.Required("date", e.Date, v)
	validation.Required("startTime", e.StartTime, v)
	validation.Required("location", e.Location, v)
	validation.Required("client.name", e.Client.Name, v)
	validation.Required("service.title", e.Service.Title, v)
	validation.PositiveInt("participants", e.Participants, v)
	return v
}

// TranslateStatus maps entity statuses to the French labels the console
// displays. Unknown statuses pass through unchanged.
func TranslateStatus(status string) string {
	switch status {
	case "scheduled":
		return "À venir"
	case "confirmed":
		return "Confirmé"
	case "in-progress":
		return "En cours"
	case "completed":
		return "Terminé"
	case "cancelled":
		return "Annulé"
	case "active":
		return "Actif"
	case "inactive":
		return "Inactif"
	default:
		return status
	}
}
