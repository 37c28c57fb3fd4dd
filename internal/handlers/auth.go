package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/bako110/pausemanager/internal/gateway"
	"github.com/bako110/pausemanager/internal/session"
)

type AuthHandler struct {
	gw       *gateway.Client
	sessions *session.Store
}

func NewAuthHandler(gw *gateway.Client, sessions *session.Store) *AuthHandler {
	return &AuthHandler{gw: gw, sessions: sessions}
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.sessions.Token() != "" {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	data := map[string]any{"HideNav": true}
	if r.URL.Query().Get("registered") == "1" {
		data["Info"] = "Compte créé. Vous pouvez vous connecter."
	}
	render(w, "login.html", data)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	creds := gateway.Credentials{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	res, err := h.gw.Login(r.Context(), creds)
	if err != nil {
		msg := "Identifiants invalides."
		var reqErr *gateway.RequestError
		if errors.Is(err, gateway.ErrUnavailable) {
			msg = offlineMessage
		} else if errors.As(err, &reqErr) && reqErr.Message != "" {
			msg = reqErr.Message
		}
		renderStatus(w, http.StatusUnauthorized, "login.html", map[string]any{"HideNav": true, "Error": msg, "Email": creds.Email})
		return
	}

	if err := h.sessions.SignIn(res.Token, res.User.Email, res.User.FirstName, res.User.LastName); err != nil {
		log.Printf("persisting session: %v", err)
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	render(w, "register.html", map[string]any{"HideNav": true})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	reg := gateway.Registration{
		LastName:  r.FormValue("lastname"),
		FirstName: r.FormValue("firstname"),
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
	}

	if err := h.gw.RegisterAccount(r.Context(), reg); err != nil {
		offline, notice := classify(err)
		if offline {
			notice = offlineMessage
		}
		renderStatus(w, http.StatusBadRequest, "register.html", map[string]any{
			"HideNav":   true,
			"Error":     notice,
			"LastName":  reg.LastName,
			"FirstName": reg.FirstName,
			"Email":     reg.Email,
		})
		return
	}
	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

// Logout tears the session down and forces navigation back to the entry page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(); err != nil {
		log.Printf("clearing session: %v", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// RequireSession guards the authenticated routes. It checks token presence
// only; the gateway rejects expired tokens on its own.
func RequireSession(sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sessions.Token() == "" {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
