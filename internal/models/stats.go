package models

// Per-category counter shapes mirror the gateway's /dashboard/stats payload:
// each of the six categories carries two counters and a "next" label naming
// the soonest qualifying entry.

// PauseStats covers coffeePauses, enhancedCoffee and roomRentals.
type PauseStats struct {
	Today    int    `json:"today"`
	ThisWeek int    `json:"thisWeek"`
	Next     string `json:"next"`
}

type LunchStats struct {
	Today          int    `json:"today"`
	ReservedPlaces int    `json:"reservedPlaces"`
	Next           string `json:"next"`
}

type ReservationStats struct {
	Ongoing  int    `json:"ongoing"`
	ThisWeek int    `json:"thisWeek"`
	Next     string `json:"next"`
}

type CocktailStats struct {
	Scheduled int    `json:"scheduled"`
	ThisMonth int    `json:"thisMonth"`
	Next      string `json:"next"`
}

// DashboardStats is a derived aggregate, recomputed on every dashboard load
// and never persisted.
type DashboardStats struct {
	CoffeePauses   PauseStats       `json:"coffeePauses"`
	Lunches        LunchStats       `json:"lunches"`
	Reservations   ReservationStats `json:"reservations"`
	EnhancedCoffee PauseStats       `json:"enhancedCoffee"`
	Cocktails      CocktailStats    `json:"cocktails"`
	RoomRentals    PauseStats       `json:"roomRentals"`
}
