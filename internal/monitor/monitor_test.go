package monitor

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bako110/pausemanager/internal/gateway"
)

func TestProbeTransitions(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	gw := gateway.New(gateway.Config{BaseURL: srv.URL, Timeout: time.Second})
	m := New(gw, nil)
	if m.Status() != StatusChecking {
		t.Fatalf("initial status must be checking, got %s", m.Status())
	}

	m.Probe()
	if m.Status() != StatusOnline {
		t.Fatalf("expected online, got %s", m.Status())
	}

	healthy = false
	m.Probe()
	if m.Status() != StatusOffline {
		t.Fatalf("expected offline, got %s", m.Status())
	}
}
