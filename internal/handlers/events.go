package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bako110/pausemanager/internal/export"
	"github.com/bako110/pausemanager/internal/filter"
	"github.com/bako110/pausemanager/internal/models"
	"github.com/bako110/pausemanager/internal/store"
	"github.com/bako110/pausemanager/internal/validation"
)

type EventHandler struct {
	store *store.Store[models.Event]
}

func NewEventHandler(s *store.Store[models.Event]) *EventHandler {
	return &EventHandler{store: s}
}

func eventSearchFields(e models.Event) []string {
	return []string{e.Name, e.Location, e.Client.Name}
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	offline, notice := classify(h.store.Load(r.Context()))
	query := r.URL.Query().Get("q")
	render(w, "events.html", map[string]any{
		"Events":  filter.Match(h.store.Items(), query, eventSearchFields),
		"Query":   query,
		"Offline": offline,
		"Notice":  notice,
		"Form":    models.Event{},
		"Errors":  validation.Violations{},
	})
}

// Create captures the client and service references as denormalized
// snapshots; the form takes their fields directly, with no lookup against
// the client or service stores.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	participants, _ := strconv.Atoi(r.FormValue("participants"))
	draft := models.Event{
		Name:      r.FormValue("name"),
		Date:      r.FormValue("date"),
		StartTime: r.FormValue("startTime"),
		EndTime:   r.FormValue("endTime"),
		Type:      eventType(r.FormValue("type")),
		Status:    models.EventScheduled,
		Client: models.EventClientRef{
			Name:    r.FormValue("clientName"),
			Contact: r.FormValue("clientContact"),
		},
		Service: models.EventServiceRef{
			Title: r.FormValue("serviceTitle"),
			Type:  r.FormValue("serviceType"),
		},
		Participants: participants,
		Location:     r.FormValue("location"),
		Notes:        r.FormValue("notes"),
	}

	if _, err := h.store.Create(r.Context(), draft); err != nil {
		var vErr *store.ValidationError
		if errors.As(err, &vErr) {
			renderStatus(w, http.StatusBadRequest, "events.html", map[string]any{
				"Events": h.store.Items(),
				"Errors": vErr.Fields,
				"Form":   draft,
				"Query":  "",
			})
			return
		}
		h.renderListWithError(w, err, draft)
		return
	}
	http.Redirect(w, r, "/events", http.StatusSeeOther)
}

// UpdateStatus transitions an event through its lifecycle.
func (h *EventHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	id := mux.Vars(r)["id"]
	status := eventStatus(r.FormValue("status"))
	if status == "" {
		http.Error(w, "unknown status", http.StatusBadRequest)
		return
	}

	if err := h.store.Update(r.Context(), id, models.Event{Status: status}); err != nil {
		h.renderListWithError(w, err, models.Event{})
		return
	}
	http.Redirect(w, r, "/events", http.StatusSeeOther)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	err := h.store.Remove(r.Context(), id, confirmed(r))
	if err != nil && !errors.Is(err, store.ErrNotConfirmed) {
		h.renderListWithError(w, err, models.Event{})
		return
	}
	http.Redirect(w, r, "/events", http.StatusSeeOther)
}

func (h *EventHandler) Export(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Load(r.Context()); err != nil && !errors.Is(err, store.ErrBusy) {
		h.renderListWithError(w, err, models.Event{})
		return
	}
	query := r.URL.Query().Get("q")
	events := filter.Match(h.store.Items(), query, eventSearchFields)
	serveExport(w, r, "evenements", export.EventTable(events))
}

// renderListWithError re-renders the page around a failed gateway call,
// keeping whatever the operator had typed in the form.
func (h *EventHandler) renderListWithError(w http.ResponseWriter, err error, form models.Event) {
	offline, notice := classify(err)
	render(w, "events.html", map[string]any{
		"Events":  h.store.Items(),
		"Offline": offline,
		"Notice":  notice,
		"Form":    form,
		"Errors":  validation.Violations{},
		"Query":   "",
	})
}

func eventType(v string) models.EventType {
	switch models.EventType(v) {
	case models.EventLunch, models.EventCocktail, models.EventMeeting, models.EventTraining, models.EventOther:
		return models.EventType(v)
	default:
		return models.EventCoffee
	}
}

func eventStatus(v string) models.EventStatus {
	switch models.EventStatus(v) {
	case models.EventScheduled, models.EventConfirmed, models.EventInProgress, models.EventCompleted, models.EventCancelled:
		return models.EventStatus(v)
	default:
		return ""
	}
}
