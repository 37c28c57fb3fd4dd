package models

import (
	"strings"
	"time"

	"github.com/bako110/pausemanager/internal/validation"
)

type ServiceType string

const (
	ServiceCoffee         ServiceType = "coffee"
	ServiceLunch          ServiceType = "lunch"
	ServiceCocktail       ServiceType = "cocktail"
	ServiceRoomRental     ServiceType = "room_rental"
	ServiceEnhancedCoffee ServiceType = "enhanced_coffee"
	ServiceReservation    ServiceType = "reservation"
)

// ServiceTypes lists the catalog categories in the order the tabs show them.
var ServiceTypes = []ServiceType{
	ServiceCoffee,
	ServiceLunch,
	ServiceCocktail,
	ServiceRoomRental,
	ServiceEnhancedCoffee,
	ServiceReservation,
}

type ServiceStatus string

const (
	ServiceActive  ServiceStatus = "active"
	ServiceNew     ServiceStatus = "new"
	ServiceLimited ServiceStatus = "limited"
)

// Service is a catalog entry (coffee break, lunch, cocktail, room rental...).
// Type and status are fixed after creation; only title, description and
// price are editable.
type Service struct {
	ID          string        `json:"_id,omitempty"`
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	Price       string        `json:"price,omitempty"`
	Status      ServiceStatus `json:"status,omitempty"`
	Type        ServiceType   `json:"type,omitempty"`
	CreatedAt   time.Time     `json:"createdAt,omitempty"`
	UpdatedAt   time.Time     `json:"updatedAt,omitempty"`
}

func (s Service) Validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("title", s.Title, v)
	validation.Required("description", s.Description, v)
	validation.Required("price", s.Price, v)
	types := make([]string, len(ServiceTypes))
	for i, t := range ServiceTypes {
		types[i] = string(t)
	}
	validation.OneOf("type", string(s.Type), types, v)
	return v
}

// DisplayPrice appends a unit suffix derived from the service type unless the
// stored price already carries one. Re-deriving on an already-suffixed string
// is a no-op: anything containing "/" or the euro sign passes through.
func (s Service) DisplayPrice() string {
	if strings.Contains(s.Price, "/") || strings.Contains(s.Price, "€") {
		return s.Price
	}
	switch s.Type {
	case ServiceCoffee, ServiceLunch, ServiceEnhancedCoffee:
		return s.Price + " € / personne"
	case ServiceCocktail:
		return s.Price + " € / événement"
	case ServiceRoomRental:
		return s.Price + " € / salle"
	case ServiceReservation:
		return s.Price + " € / réservation"
	default:
		return s.Price + " €"
	}
}

// Label is the French tab label for a catalog category.
func (t ServiceType) Label() string {
	switch t {
	case ServiceCoffee:
		return "Pauses café"
	case ServiceLunch:
		return "Déjeuners"
	case ServiceCocktail:
		return "Cocktails"
	case ServiceRoomRental:
		return "Location de salles"
	case ServiceEnhancedCoffee:
		return "Café renforcé"
	case ServiceReservation:
		return "Réservations"
	default:
		return string(t)
	}
}
