package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bako110/pausemanager/internal/export"
	"github.com/bako110/pausemanager/internal/filter"
	"github.com/bako110/pausemanager/internal/models"
	"github.com/bako110/pausemanager/internal/store"
	"github.com/bako110/pausemanager/internal/validation"
)

type ServiceHandler struct {
	store *store.Store[models.Service]
}

func NewServiceHandler(s *store.Store[models.Service]) *ServiceHandler {
	return &ServiceHandler{store: s}
}

func serviceSearchFields(s models.Service) []string {
	return []string{s.Title, s.Description, s.Price}
}

// activeTab resolves the catalog category the page is scoped to. The tab
// drives both the displayed subset and the type of a newly added service.
func activeTab(r *http.Request) models.ServiceType {
	t := models.ServiceType(r.URL.Query().Get("type"))
	for _, known := range models.ServiceTypes {
		if t == known {
			return t
		}
	}
	return models.ServiceCoffee
}

// List renders the active category. The edit query parameter switches the
// form into edit mode, pre-filled with the matching record.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	offline, notice := classify(h.store.Load(r.Context()))
	tab := activeTab(r)
	query := r.URL.Query().Get("q")

	form := models.Service{}
	editID := ""
	if id := r.URL.Query().Get("edit"); id != "" {
		for _, s := range h.store.Items() {
			if s.ID == id {
				form = s
				editID = id
				break
			}
		}
	}

	shown := filter.Match(byType(h.store.Items(), tab), query, serviceSearchFields)
	render(w, "services.html", map[string]any{
		"Services": shown,
		"Tabs":     models.ServiceTypes,
		"Active":   tab,
		"Query":    query,
		"Offline":  offline,
		"Notice":   notice,
		"Form":     form,
		"EditID":   editID,
		"Errors":   validation.Violations{},
	})
}

// Create adds a catalog entry. The record's type comes from the active tab,
// never from a free-form field.
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	tab := models.ServiceType(r.FormValue("type"))
	draft := models.Service{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Status:      serviceStatus(r.FormValue("status")),
		Type:        tab,
	}

	if _, err := h.store.Create(r.Context(), draft); err != nil {
		var vErr *store.ValidationError
		if errors.As(err, &vErr) {
			renderStatus(w, http.StatusBadRequest, "services.html", map[string]any{
				"Services": byType(h.store.Items(), activeTab(r)),
				"Tabs":     models.ServiceTypes,
				"Active":   draft.Type,
				"Errors":   vErr.Fields,
				"Form":     draft,
				"EditID":   "",
				"Query":    "",
			})
			return
		}
		h.renderListWithError(w, r, err, draft, "")
		return
	}
	http.Redirect(w, r, "/services?type="+string(tab), http.StatusSeeOther)
}

// Update edits title, description and price only; type and status are fixed
// after creation.
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	id := mux.Vars(r)["id"]
	patch := models.Service{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
	}

	if err := h.store.Update(r.Context(), id, patch); err != nil {
		h.renderListWithError(w, r, err, patch, id)
		return
	}
	http.Redirect(w, r, "/services?type="+string(activeTab(r)), http.StatusSeeOther)
}

func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	err := h.store.Remove(r.Context(), id, confirmed(r))
	if err != nil && !errors.Is(err, store.ErrNotConfirmed) {
		h.renderListWithError(w, r, err, models.Service{}, "")
		return
	}
	http.Redirect(w, r, "/services?type="+string(activeTab(r)), http.StatusSeeOther)
}

func (h *ServiceHandler) Export(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Load(r.Context()); err != nil && !errors.Is(err, store.ErrBusy) {
		h.renderListWithError(w, r, err, models.Service{}, "")
		return
	}
	tab := activeTab(r)
	services := byType(h.store.Items(), tab)
	serveExport(w, r, "services-"+string(tab), export.ServiceTable(tab.Label(), services))
}

// renderListWithError re-renders the page around a failed gateway call,
// keeping whatever the operator had typed in the form.
func (h *ServiceHandler) renderListWithError(w http.ResponseWriter, r *http.Request, err error, form models.Service, editID string) {
	offline, notice := classify(err)
	render(w, "services.html", map[string]any{
		"Services": byType(h.store.Items(), activeTab(r)),
		"Tabs":     models.ServiceTypes,
		"Active":   activeTab(r),
		"Offline":  offline,
		"Notice":   notice,
		"Form":     form,
		"EditID":   editID,
		"Errors":   validation.Violations{},
		"Query":    "",
	})
}

func byType(services []models.Service, t models.ServiceType) []models.Service {
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}

func serviceStatus(v string) models.ServiceStatus {
	switch models.ServiceStatus(v) {
	case models.ServiceNew:
		return models.ServiceNew
	case models.ServiceLimited:
		return models.ServiceLimited
	default:
		return models.ServiceActive
	}
}
