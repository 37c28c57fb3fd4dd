package models

import (
	"regexp"
	"testing"
	"time"
)

func TestDisplayPriceAddsUnitSuffix(t *testing.T) {
	cases := []struct {
		typ  ServiceType
		in   string
		want string
	}{
		{ServiceCoffee, "15", "15 € / personne"},
		{ServiceEnhancedCoffee, "22", "22 € / personne"},
		{ServiceLunch, "28", "28 € / personne"},
		{ServiceCocktail, "350", "350 € / événement"},
		{ServiceRoomRental, "200", "200 € / salle"},
		{ServiceReservation, "50", "50 € / réservation"},
	}
	for _, c := range cases {
		s := Service{Type: c.typ, Price: c.in}
		if got := s.DisplayPrice(); got != c.want {
			t.Errorf("DisplayPrice(%s, %q) = %q, want %q", c.typ, c.in, got, c.want)
		}
	}
}

func TestDisplayPriceIsIdempotent(t *testing.T) {
	s := Service{Type: ServiceCoffee, Price: "15"}
	once := Service{Type: ServiceCoffee, Price: s.DisplayPrice()}
	if got := once.DisplayPrice(); got != s.DisplayPrice() {
		t.Fatalf("second formatting changed the price: %q", got)
	}
	// Prices that already carry a unit pass through untouched.
	custom := Service{Type: ServiceLunch, Price: "sur devis / groupe"}
	if got := custom.DisplayPrice(); got != "sur devis / groupe" {
		t.Fatalf("custom price was rewritten: %q", got)
	}
}

func TestGenerateContractNumberFormat(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^CT-202403-\d{3}$`)
	for i := 0; i < 20; i++ {
		n := GenerateContractNumber(now)
		if !pattern.MatchString(n) {
			t.Fatalf("contract number %q does not match CT-YYYYMM-NNN", n)
		}
	}
}

func TestClientValidate(t *testing.T) {
	c := Client{
		Name:           "Acme SARL",
		Contact:        "Jean Dupont",
		Email:          "jean@acme.fr",
		ContractNumber: "CT-202403-042",
	}
	if v := c.Validate(); !v.Empty() {
		t.Fatalf("valid client rejected: %v", v)
	}

	c.Email = "not-an-email"
	v := c.Validate()
	if _, ok := v["email"]; !ok {
		t.Fatalf("bad email accepted: %v", v)
	}

	empty := Client{}
	v = empty.Validate()
	for _, field := range []string{"name", "contact", "email", "contractNumber"} {
		if _, ok := v[field]; !ok {
			t.Errorf("missing violation for %s", field)
		}
	}
}

func TestClientNormalize(t *testing.T) {
	c := Client{Name: "  Acme  ", Email: " Jean@ACME.FR "}
	c.Normalize()
	if c.Name != "Acme" {
		t.Errorf("name not trimmed: %q", c.Name)
	}
	if c.Email != "jean@acme.fr" {
		t.Errorf("email not normalized: %q", c.Email)
	}
}

func TestEventValidate(t *testing.T) {
	e := Event{
		Name:         "Pause café Acme",
		Date:         "2024-03-20",
		StartTime:    "10:00",
		Location:     "Salle A",
		Client:       EventClientRef{Name: "Acme"},
		Service:      EventServiceRef{Title: "Pause café classique"},
		Participants: 12,
	}
	if v := e.Validate(); !v.Empty() {
		t.Fatalf("valid event rejected: %v", v)
	}

	e.Participants = 0
	if v := e.Validate(); v.Empty() {
		t.Fatal("zero participants accepted")
	}
}

func TestTranslateStatus(t *testing.T) {
	cases := map[string]string{
		"scheduled":   "À venir",
		"confirmed":   "Confirmé",
		"in-progress": "En cours",
		"completed":   "Terminé",
		"cancelled":   "Annulé",
		"active":      "Actif",
		"inactive":    "Inactif",
	}
	for in, want := range cases {
		if got := TranslateStatus(in); got != want {
			t.Errorf("TranslateStatus(%q) = %q, want %q", in, got, want)
		}
	}
}
