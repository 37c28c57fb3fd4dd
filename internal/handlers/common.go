// Package handlers drives the console pages: forms and tables on top of the
// entity stores, with mutations forwarded to the gateway.
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/bako110/pausemanager/internal/gateway"
	"github.com/bako110/pausemanager/internal/store"
	"github.com/bako110/pausemanager/internal/view"
)

// offlineMessage mirrors the wording the console shows when the gateway
// cannot be reached at all.
const offlineMessage = "Le serveur est indisponible. Vérifiez que le backend est démarré."

// classify maps an operation error onto the page state: Offline blocks all
// mutating actions until a retry succeeds, Notice is a dismissible message
// for a single failed call.
func classify(err error) (offline bool, notice string) {
	if err == nil {
		return false, ""
	}
	if errors.Is(err, gateway.ErrUnavailable) {
		return true, offlineMessage
	}
	var reqErr *gateway.RequestError
	if errors.As(err, &reqErr) {
		return false, reqErr.Error()
	}
	if errors.Is(err, store.ErrBusy) {
		// A fetch is already running; the page renders last-known data.
		return false, ""
	}
	return false, "Une erreur est survenue. Veuillez réessayer."
}

func render(w http.ResponseWriter, name string, data map[string]any) {
	renderStatus(w, http.StatusOK, name, data)
}

func renderStatus(w http.ResponseWriter, status int, name string, data map[string]any) {
	if err := view.RenderStatus(w, status, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// confirmed reads the explicit yes/no decision the delete forms carry.
func confirmed(r *http.Request) bool {
	return r.FormValue("confirmed") == "1"
}
