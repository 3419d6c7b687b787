// Package middleware provides HTTP middleware for the store manager gate
// and response hardening.
package middleware

import (
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/mybookstore/web/internal/auth"
)

// RequireManager creates middleware that gates the store manager routes.
// It checks the session flag set at login and redirects to the login page
// when the flag is unset. This is a UX gate mirroring the storefront's
// behavior, not a security boundary: there is no identity behind the flag.
func RequireManager(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sm.GetBool(r.Context(), auth.SessionKeyManager) {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsManager reports whether the current request carries an active manager
// session. Used by templates to toggle the back-office navigation links.
func IsManager(sm *scs.SessionManager, r *http.Request) bool {
	return sm.GetBool(r.Context(), auth.SessionKeyManager)
}
