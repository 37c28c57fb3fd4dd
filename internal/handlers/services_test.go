package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/bako110/pausemanager/internal/gateway"
	"github.com/bako110/pausemanager/internal/store"
	"github.com/bako110/pausemanager/internal/view"
)

func newServicePage(t *testing.T, mux *http.ServeMux) *ServiceHandler {
	t.Helper()
	view.SetBaseDir("../../templates")
	t.Cleanup(func() { view.SetBaseDir("templates") })

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	gw := gateway.New(gateway.Config{BaseURL: srv.URL, Timeout: time.Second})
	return NewServiceHandler(store.NewServiceStore(gw))
}

func serviceGatewayMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success":true}`))
	})
	mux.HandleFunc("GET /services", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success":true,"data":[{"_id":"s1","title":"Pause gourmande","description":"Café et viennoiseries","price":"12","type":"coffee","status":"active"}]}`))
	})
	return mux
}

func TestServiceListOffersEditForm(t *testing.T) {
	h := newServicePage(t, serviceGatewayMux(t))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/services?type=coffee", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `href="/services?type=coffee&edit=s1"`) {
		t.Error("edit link missing for listed service")
	}

	rec = httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/services?type=coffee&edit=s1", nil))
	body = rec.Body.String()
	if !strings.Contains(body, `action="/services/s1?type=coffee"`) {
		t.Fatal("edit form does not target /services/s1")
	}
	if !strings.Contains(body, `value="Pause gourmande"`) {
		t.Error("edit form not pre-filled with the record")
	}
	// Status is fixed after creation; the edit form must not offer it.
	if strings.Contains(body, `name="status"`) {
		t.Error("edit form exposes the status select")
	}
}

func TestServiceUpdateReachesGateway(t *testing.T) {
	updated := ""
	gwMux := serviceGatewayMux(t)
	gwMux.HandleFunc("PUT /services/{id}", func(w http.ResponseWriter, r *http.Request) {
		updated = r.PathValue("id")
		w.Write([]byte(`{"success":true,"data":{"_id":"s1","title":"Pause royale","type":"coffee"}}`))
	})
	h := newServicePage(t, gwMux)
	if err := h.store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	form := url.Values{"title": {"Pause royale"}, "description": {"Café, jus et viennoiseries"}, "price": {"15"}}
	req := httptest.NewRequest(http.MethodPost, "/services/s1?type=coffee", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = mux.SetURLVars(req, map[string]string{"id": "s1"})
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if updated != "s1" {
		t.Fatalf("gateway saw update for %q, want s1", updated)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("got status %d, want redirect", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/services?type=coffee" {
		t.Errorf("redirected to %q", got)
	}
}
