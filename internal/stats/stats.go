// Package stats derives the dashboard aggregates from the service catalog
// and reconciles them with the gateway-reported figures.
package stats

import (
	"regexp"
	"strconv"
	"time"

	"github.com/bako110/pausemanager/internal/models"
)

// NoneLabel is the sentinel shown when a category has no qualifying entry.
const NoneLabel = "Aucun"

// maxNextLen bounds the "next" label before an ellipsis is appended.
const maxNextLen = 20

var firstNumber = regexp.MustCompile(`\d+`)

// Compute aggregates the full service collection at the given moment. The
// caller supplies now explicitly; the function never reads the wall clock.
func Compute(services []models.Service, now time.Time) models.DashboardStats {
	buckets := map[models.ServiceType][]models.Service{}
	for _, s := range services {
		buckets[s.Type] = append(buckets[s.Type], s)
	}

	weekStart := startOfWeek(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	coffee := buckets[models.ServiceCoffee]
	lunch := buckets[models.ServiceLunch]
	reservation := buckets[models.ServiceReservation]
	enhanced := buckets[models.ServiceEnhancedCoffee]
	cocktail := buckets[models.ServiceCocktail]
	room := buckets[models.ServiceRoomRental]

	return models.DashboardStats{
		CoffeePauses: models.PauseStats{
			Today:    countToday(coffee, now),
			ThisWeek: countSince(coffee, weekStart),
			Next:     nextLabel(coffee),
		},
		Lunches: models.LunchStats{
			Today:          countToday(lunch, now),
			ReservedPlaces: reservedPlaces(lunch),
			Next:           nextLabel(lunch),
		},
		Reservations: models.ReservationStats{
			Ongoing:  countActive(reservation),
			ThisWeek: countSince(reservation, weekStart),
			Next:     nextLabel(reservation),
		},
		EnhancedCoffee: models.PauseStats{
			Today:    countToday(enhanced, now),
			ThisWeek: countSince(enhanced, weekStart),
			Next:     nextLabel(enhanced),
		},
		Cocktails: models.CocktailStats{
			Scheduled: countActive(cocktail),
			ThisMonth: countSince(cocktail, monthStart),
			Next:      nextLabel(cocktail),
		},
		RoomRentals: models.PauseStats{
			Today:    countToday(room, now),
			ThisWeek: countSince(room, weekStart),
			Next:     nextLabel(room),
		},
	}
}

// Merge reconciles gateway-reported stats with a locally computed set. The
// choice is per-category and all-or-nothing: a category from the backend wins
// only when its primary counter is strictly positive, otherwise the local
// computation is used wholesale. A backend zero therefore always loses, and a
// backend nonzero wins even if its "next" label is stale; both are observable
// behavior kept on purpose.
func Merge(backend, local models.DashboardStats) models.DashboardStats {
	merged := local
	if backend.CoffeePauses.Today > 0 {
		merged.CoffeePauses = backend.CoffeePauses
	}
	if backend.Lunches.Today > 0 {
		merged.Lunches = backend.Lunches
	}
	if backend.Reservations.Ongoing > 0 {
		merged.Reservations = backend.Reservations
	}
	if backend.EnhancedCoffee.Today > 0 {
		merged.EnhancedCoffee = backend.EnhancedCoffee
	}
	if backend.Cocktails.Scheduled > 0 {
		merged.Cocktails = backend.Cocktails
	}
	if backend.RoomRentals.Today > 0 {
		merged.RoomRentals = backend.RoomRentals
	}
	return merged
}

// Empty returns the all-zero aggregate with the sentinel in every category,
// used when the services fetch degrades.
func Empty() models.DashboardStats {
	return Compute(nil, time.Time{})
}

// startOfWeek returns Monday 00:00:00 of the week containing t.
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(weekday - 1))
}

// countToday counts records created on the same calendar day as now.
func countToday(services []models.Service, now time.Time) int {
	n := 0
	y, m, d := now.Date()
	for _, s := range services {
		sy, sm, sd := s.CreatedAt.In(now.Location()).Date()
		if sy == y && sm == m && sd == d {
			n++
		}
	}
	return n
}

// countSince counts records created at or after the window start.
func countSince(services []models.Service, start time.Time) int {
	n := 0
	for _, s := range services {
		if !s.CreatedAt.Before(start) {
			n++
		}
	}
	return n
}

func countActive(services []models.Service) int {
	n := 0
	for _, s := range services {
		if s.Status == models.ServiceActive {
			n++
		}
	}
	return n
}

// reservedPlaces estimates lunch headcount from prices: the first integer
// substring of each price counts, and a price with no digits contributes 1.
func reservedPlaces(services []models.Service) int {
	total := 0
	for _, s := range services {
		match := firstNumber.FindString(s.Price)
		if match == "" {
			total++
			continue
		}
		n, err := strconv.Atoi(match)
		if err != nil {
			total++
			continue
		}
		total += n
	}
	return total
}

// nextLabel names the active record with the earliest creation timestamp,
// truncated to 20 characters plus an ellipsis.
func nextLabel(services []models.Service) string {
	var next *models.Service
	for i := range services {
		s := &services[i]
		if s.Status != models.ServiceActive {
			continue
		}
		if next == nil || s.CreatedAt.Before(next.CreatedAt) {
			next = s
		}
	}
	if next == nil {
		return NoneLabel
	}
	return truncate(next.Title)
}

func truncate(title string) string {
	runes := []rune(title)
	if len(runes) <= maxNextLen {
		return title
	}
	return string(runes[:maxNextLen]) + "..."
}
