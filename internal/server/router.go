package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bako110/pausemanager/internal/gateway"
	"github.com/bako110/pausemanager/internal/handlers"
	"github.com/bako110/pausemanager/internal/httpx"
	"github.com/bako110/pausemanager/internal/models"
	"github.com/bako110/pausemanager/internal/monitor"
	"github.com/bako110/pausemanager/internal/session"
	"github.com/bako110/pausemanager/internal/store"
	"github.com/bako110/pausemanager/internal/ws"
)

// Deps bundles everything the router wires together.
type Deps struct {
	Gateway  *gateway.Client
	Sessions *session.Store
	Monitor  *monitor.Monitor
	Hub      *ws.Hub

	Clients  *store.Store[models.Client]
	Services *store.Store[models.Service]
	Events   *store.Store[models.Event]
}

// New constructs the root handler with all routes and middlewares applied.
func New(d Deps) http.Handler {
	r := mux.NewRouter()
	r.Use(withRecover, withLogging)

	// Entry points, reachable without a session.
	auth := handlers.NewAuthHandler(d.Gateway, d.Sessions)
	r.HandleFunc("/login", auth.LoginForm).Methods(http.MethodGet)
	r.HandleFunc("/login", auth.Login).Methods(http.MethodPost)
	r.HandleFunc("/register", auth.RegisterForm).Methods(http.MethodGet)
	r.HandleFunc("/register", auth.Register).Methods(http.MethodPost)

	// Console liveness, distinct from the remote gateway's /health.
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Everything below requires a signed-in operator. The guard checks token
	// presence only.
	protected := r.NewRoute().Subrouter()
	protected.Use(handlers.RequireSession(d.Sessions))

	protected.HandleFunc("/logout", auth.Logout).Methods(http.MethodPost)

	dash := handlers.NewDashboardHandler(d.Gateway, d.Monitor)
	protected.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard", dash.Show).Methods(http.MethodGet)

	ch := handlers.NewClientHandler(d.Clients)
	protected.HandleFunc("/clients", ch.List).Methods(http.MethodGet)
	protected.HandleFunc("/clients", ch.Create).Methods(http.MethodPost)
	protected.HandleFunc("/clients/export", ch.Export).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}", ch.Update).Methods(http.MethodPost)
	protected.HandleFunc("/clients/{id}/delete", ch.Delete).Methods(http.MethodPost)

	sh := handlers.NewServiceHandler(d.Services)
	protected.HandleFunc("/services", sh.List).Methods(http.MethodGet)
	protected.HandleFunc("/services", sh.Create).Methods(http.MethodPost)
	protected.HandleFunc("/services/export", sh.Export).Methods(http.MethodGet)
	protected.HandleFunc("/services/{id}", sh.Update).Methods(http.MethodPost)
	protected.HandleFunc("/services/{id}/delete", sh.Delete).Methods(http.MethodPost)

	eh := handlers.NewEventHandler(d.Events)
	protected.HandleFunc("/events", eh.List).Methods(http.MethodGet)
	protected.HandleFunc("/events", eh.Create).Methods(http.MethodPost)
	protected.HandleFunc("/events/export", eh.Export).Methods(http.MethodGet)
	protected.HandleFunc("/events/{id}/status", eh.UpdateStatus).Methods(http.MethodPost)
	protected.HandleFunc("/events/{id}/delete", eh.Delete).Methods(http.MethodPost)

	protected.HandleFunc("/api/status", handlers.Status(d.Monitor, d.Hub)).Methods(http.MethodGet)
	protected.HandleFunc("/ws", handlers.StatusSocket(d.Hub)).Methods(http.MethodGet)

	return r
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, wrapped.status, time.Since(start))
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
