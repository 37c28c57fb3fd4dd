package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bako110/pausemanager/internal/export"
	"github.com/bako110/pausemanager/internal/filter"
	"github.com/bako110/pausemanager/internal/models"
	"github.com/bako110/pausemanager/internal/store"
	"github.com/bako110/pausemanager/internal/validation"
)

type ClientHandler struct {
	store *store.Store[models.Client]
}

func NewClientHandler(s *store.Store[models.Client]) *ClientHandler {
	return &ClientHandler{store: s}
}

func clientSearchFields(c models.Client) []string {
	return []string{c.Name, c.Contact, c.Email, c.ContractNumber}
}

// List renders the client table. The edit query parameter switches the form
// into edit mode, pre-filled with the matching record.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	offline, notice := classify(h.store.Load(r.Context()))
	query := r.URL.Query().Get("q")

	form := models.Client{}
	editID := ""
	if id := r.URL.Query().Get("edit"); id != "" {
		for _, c := range h.store.Items() {
			if c.ID == id {
				form = c
				editID = id
				break
			}
		}
	}
	suggested := form.ContractNumber
	if suggested == "" {
		suggested = models.GenerateContractNumber(time.Now())
	}

	render(w, "clients.html", map[string]any{
		"Clients":           filter.Match(h.store.Items(), query, clientSearchFields),
		"Query":             query,
		"Offline":           offline,
		"Notice":            notice,
		"Form":              form,
		"EditID":            editID,
		"Errors":            validation.Violations{},
		"SuggestedContract": suggested,
	})
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	draft := clientFromForm(r)

	if _, err := h.store.Create(r.Context(), draft); err != nil {
		var vErr *store.ValidationError
		if errors.As(err, &vErr) {
			renderStatus(w, http.StatusBadRequest, "clients.html", map[string]any{
				"Clients":           h.store.Items(),
				"Errors":            vErr.Fields,
				"Form":              draft,
				"SuggestedContract": draft.ContractNumber,
				"Query":             "",
			})
			return
		}
		h.renderListWithError(w, err, draft, "")
		return
	}
	http.Redirect(w, r, "/clients", http.StatusSeeOther)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	id := mux.Vars(r)["id"]
	patch := clientFromForm(r)
	patch.Normalize()
	if v := patch.Validate(); !v.Empty() {
		renderStatus(w, http.StatusBadRequest, "clients.html", map[string]any{
			"Clients":           h.store.Items(),
			"Errors":            v,
			"Form":              patch,
			"EditID":            id,
			"SuggestedContract": patch.ContractNumber,
			"Query":             "",
		})
		return
	}

	if err := h.store.Update(r.Context(), id, patch); err != nil {
		h.renderListWithError(w, err, patch, id)
		return
	}
	http.Redirect(w, r, "/clients", http.StatusSeeOther)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	err := h.store.Remove(r.Context(), id, confirmed(r))
	if err != nil && !errors.Is(err, store.ErrNotConfirmed) {
		h.renderListWithError(w, err, models.Client{}, "")
		return
	}
	http.Redirect(w, r, "/clients", http.StatusSeeOther)
}

func (h *ClientHandler) Export(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Load(r.Context()); err != nil && !errors.Is(err, store.ErrBusy) {
		h.renderListWithError(w, err, models.Client{}, "")
		return
	}
	query := r.URL.Query().Get("q")
	clients := filter.Match(h.store.Items(), query, clientSearchFields)
	serveExport(w, r, "liste-clients", export.ClientTable(clients))
}

// renderListWithError re-renders the page around a failed gateway call,
// keeping whatever the operator had typed in the form.
func (h *ClientHandler) renderListWithError(w http.ResponseWriter, err error, form models.Client, editID string) {
	offline, notice := classify(err)
	suggested := form.ContractNumber
	if suggested == "" {
		suggested = models.GenerateContractNumber(time.Now())
	}
	render(w, "clients.html", map[string]any{
		"Clients":           h.store.Items(),
		"Offline":           offline,
		"Notice":            notice,
		"Form":              form,
		"EditID":            editID,
		"Errors":            validation.Violations{},
		"SuggestedContract": suggested,
		"Query":             "",
	})
}

func clientFromForm(r *http.Request) models.Client {
	status := models.ClientStatus(r.FormValue("status"))
	if status != models.ClientInactive {
		status = models.ClientActive
	}
	return models.Client{
		Name:           r.FormValue("name"),
		Contact:        r.FormValue("contact"),
		Email:          r.FormValue("email"),
		Phone:          r.FormValue("phone"),
		Address:        r.FormValue("address"),
		ContractNumber: r.FormValue("contractNumber"),
		Status:         status,
		Notes:          r.FormValue("notes"),
	}
}
