package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/mybookstore/web/internal/auth"
	"github.com/mybookstore/web/internal/render"
)

// AuthHandler handles the back-office login and logout.
type AuthHandler struct {
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	authenticator  auth.Authenticator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(renderer *render.Renderer, sm *scs.SessionManager, authenticator auth.Authenticator) *AuthHandler {
	return &AuthHandler{
		renderer:       renderer,
		sessionManager: sm,
		authenticator:  authenticator,
	}
}

// LoginData is the template payload for the login page.
type LoginData struct {
	Username string
	Error    string
}

// LoginForm renders the login page. An already-authenticated manager is
// sent straight to the listing.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.sessionManager.GetBool(r.Context(), auth.SessionKeyManager) {
		http.Redirect(w, r, RouteManager+RouteManagerAllBooks, http.StatusSeeOther)
		return
	}

	renderOrError(w, r, h.renderer, "auth/login", render.TemplateData{
		Title: "BackOffice Login",
		Data:  LoginData{},
	})
}

// Login handles the login form submission. Any mismatch produces the same
// generic inline message; success sets the session flag and redirects to
// the management listing.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, RouteLogin, "Invalid form data")
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	if err := h.authenticator.Authenticate(username, password); err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			slog.Error("authenticator error", "error", err)
		}
		slog.Debug("failed login attempt", "username", username)
		renderOrError(w, r, h.renderer, "auth/login", render.TemplateData{
			Title: "BackOffice Login",
			Data: LoginData{
				Username: username,
				Error:    "Invalid username or password",
			},
		})
		return
	}

	// Regenerate session ID to prevent session fixation
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}

	h.sessionManager.Put(r.Context(), auth.SessionKeyManager, true)
	slog.Info("manager logged in")

	http.Redirect(w, r, RouteManager+RouteManagerAllBooks, http.StatusSeeOther)
}

// Logout destroys the session and returns to the login page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("session destroy error", "error", err)
	}
	slog.Info("manager logged out")

	flashAndRedirect(w, r, h.renderer, RouteLogin, "You have been logged out", "info")
}
