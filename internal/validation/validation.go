package validation

import (
	"regexp"
	"strings"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// emailPattern is the shape the backend accepts: local@domain.tld with a 2-3
// letter TLD, dots/dashes allowed inside segments.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// Messages are the French strings the forms display verbatim.
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "Ce champ est requis"
	}
}

func Email(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "Ce champ est requis"
		return
	}
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		v[field] = "Adresse email invalide"
	}
}

func PositiveInt(field string, val int, v Violations) {
	if val <= 0 {
		v[field] = "Doit être supérieur à zéro"
	}
}

func OneOf(field, value string, allowed []string, v Violations) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v[field] = "Valeur non reconnue"
}
