// Package httpx writes the console's JSON responses using the same envelope
// convention the remote gateway speaks, so API consumers see one shape on
// both sides.
package httpx

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// JSON writes a success envelope around payload.
func JSON(w http.ResponseWriter, status int, payload any) {
	write(w, status, envelope{Success: true, Data: payload})
}

// JSONError writes a failure envelope. details rides along in data when the
// caller has field-level context to report.
func JSONError(w http.ResponseWriter, status int, msg string, details any) {
	write(w, status, envelope{Success: false, Message: msg, Data: details})
}

func write(w http.ResponseWriter, status int, env envelope) {
	body, err := json.Marshal(env)
	if err != nil {
		// avoid writing partial JSON
		http.Error(w, `{"success":false,"message":"encode_error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
