package validation

import "testing"

func TestEmail(t *testing.T) {
	valid := []string{
		"jean@acme.fr",
		"jean.dupont@acme-group.fr",
		"j-d@mail.acme.com",
	}
	for _, e := range valid {
		v := Violations{}
		Email("email", e, v)
		if !v.Empty() {
			t.Errorf("valid address %q rejected: %v", e, v)
		}
	}

	invalid := []string{
		"",
		"jean",
		"jean@",
		"@acme.fr",
		"jean@acme",
		"jean @acme.fr",
	}
	for _, e := range invalid {
		v := Violations{}
		Email("email", e, v)
		if v.Empty() {
			t.Errorf("invalid address %q accepted", e)
		}
	}
}

func TestRequiredTrimsWhitespace(t *testing.T) {
	v := Violations{}
	Required("name", "   ", v)
	if v.Empty() {
		t.Fatal("whitespace-only value accepted")
	}
	Required("contact", "Jean", v)
	if _, ok := v["contact"]; ok {
		t.Fatal("non-empty value flagged")
	}
}

func TestOneOf(t *testing.T) {
	allowed := []string{"coffee", "lunch"}
	v := Violations{}
	OneOf("type", "coffee", allowed, v)
	if !v.Empty() {
		t.Fatalf("allowed value rejected: %v", v)
	}
	OneOf("type", "banquet", allowed, v)
	if _, ok := v["type"]; !ok {
		t.Fatal("unknown value accepted")
	}
}
