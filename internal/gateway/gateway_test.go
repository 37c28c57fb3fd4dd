package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(Config{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
		Token:   func() string { return "tok-123" },
	})
	return c, srv
}

func TestListClientsDecodesEnvelope(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("missing bearer token, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"count":2,"data":[{"_id":"a","name":"Acme Corp"},{"_id":"b","name":"Best Co"}]}`))
	}))

	clients, err := c.ListClients(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clients) != 2 || clients[0].ID != "a" || clients[1].Name != "Best Co" {
		t.Fatalf("bad decode: %+v", clients)
	}
}

func TestSuccessFalseIsRequestError(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"quota dépassé"}`))
	}))

	_, err := c.ListServices(context.Background())
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Message != "quota dépassé" {
		t.Fatalf("expected gateway message, got %q", reqErr.Message)
	}
	if errors.Is(err, ErrUnavailable) {
		t.Fatalf("a refused call on a reachable gateway is not an outage")
	}
}

func TestNotFoundIsRequestErrorWithStatus(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	err := c.DeleteClient(context.Background(), "missing")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", reqErr.StatusCode)
	}
}

func TestMalformedEnvelopeIsUnavailable(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))

	_, err := c.ListEvents(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("malformed envelope must read as unavailable, got %v", err)
	}
}

func TestHealthNon2xxIsUnavailable(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	if err := c.Health(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestNetworkErrorIsUnavailable(t *testing.T) {
	c := New(Config{BaseURL: "http://127.0.0.1:1", Timeout: 500 * time.Millisecond})
	if err := c.Health(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if _, err := c.ListClients(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestLoginReadsBareBody(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"token":"jwt-abc","user":{"firstname":"Awa","lastname":"Diallo","email":"awa@pause.fr"}}`))
	}))

	res, err := c.Login(context.Background(), Credentials{Email: "awa@pause.fr", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Token != "jwt-abc" || res.User.FirstName != "Awa" {
		t.Fatalf("bad decode: %+v", res)
	}
}

func TestLoginWithoutTokenFails(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	if _, err := c.Login(context.Background(), Credentials{}); err == nil {
		t.Fatal("a login response without a token must fail")
	}
}

func TestUpdateReturnsCanonicalRecordWhenEchoed(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		w.Write([]byte(`{"success":true,"data":{"_id":"s1","title":"Pause premium","price":"7,50"}}`))
	}))

	rec, err := c.UpdateService(context.Background(), "s1", testServicePatch())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil || rec.Title != "Pause premium" {
		t.Fatalf("expected canonical record, got %+v", rec)
	}
}

func TestUpdateWithoutEchoReturnsNil(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))

	rec, err := c.UpdateService(context.Background(), "s1", testServicePatch())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil record for bare acknowledgement, got %+v", rec)
	}
}
