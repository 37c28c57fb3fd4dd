package filter

import (
	"reflect"
	"testing"

	"github.com/bako110/pausemanager/internal/models"
)

func clientFields(c models.Client) []string {
	return []string{c.Name, c.Contact, c.Email, c.ContractNumber}
}

func TestMatchBySubstring(t *testing.T) {
	clients := []models.Client{
		{Name: "Acme Corp"},
		{Name: "Best Co"},
	}
	got := Match(clients, "acme", clientFields)
	if len(got) != 1 || got[0].Name != "Acme Corp" {
		t.Fatalf("expected only Acme Corp, got %+v", got)
	}
}

func TestMatchEmptyQueryReturnsFreshCopy(t *testing.T) {
	clients := []models.Client{
		{Name: "Acme Corp"},
		{Name: "Best Co"},
	}
	got := Match(clients, "", clientFields)
	if !reflect.DeepEqual(got, clients) {
		t.Fatalf("empty query must return the full list in order, got %+v", got)
	}
	got[0].Name = "mutated"
	if clients[0].Name != "Acme Corp" {
		t.Fatalf("result must not alias the source list")
	}
}

func TestMatchAnyField(t *testing.T) {
	clients := []models.Client{
		{Name: "Acme Corp", Email: "hello@acme.fr", ContractNumber: "CT-202403-001"},
		{Name: "Best Co", Email: "info@best.fr"},
	}
	cases := []struct {
		query string
		want  int
	}{
		{"ACME", 1},
		{"ct-202403", 1},
		{".fr", 2},
		{"missing", 0},
	}
	for _, tc := range cases {
		if got := Match(clients, tc.query, clientFields); len(got) != tc.want {
			t.Fatalf("query %q: expected %d matches, got %d", tc.query, tc.want, len(got))
		}
	}
}

func TestMatchSkipsMissingFields(t *testing.T) {
	clients := []models.Client{
		{Name: "Acme Corp"}, // email, contract missing
	}
	got := Match(clients, "acme", clientFields)
	if len(got) != 1 {
		t.Fatalf("missing fields must be skipped, not fatal; got %d matches", len(got))
	}
}

func TestMatchIsPure(t *testing.T) {
	events := []models.Event{
		{Name: "Séminaire", Location: "Paris"},
		{Name: "Formation", Location: "Lyon"},
	}
	fields := func(e models.Event) []string { return []string{e.Name, e.Location} }
	first := Match(events, "o", fields)
	second := Match(events, "o", fields)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs must yield equal results: %+v vs %+v", first, second)
	}
}
