// Package auth provides the credential check behind the back-office login.
//
// The gate is deliberately demo-grade: a single fixed credential pair and a
// boolean session marker, matching the behavior of the storefront it fronts.
// The Authenticator interface isolates the check so a real credential or
// token service can replace it without touching the handlers.
package auth

import (
	"crypto/subtle"
	"errors"
)

// Default demo credentials. Overridable via configuration.
const (
	DefaultUsername = "bookstoreadmin"
	DefaultPassword = "ManageBook68"
)

// SessionKeyManager is the session key holding the "admin session active"
// flag. Absence or false means unauthenticated; there is no expiry beyond
// the session lifetime and no associated identity.
const SessionKeyManager = "manager_authenticated"

// ErrInvalidCredentials is returned on any mismatch. It is intentionally
// generic: the caller must not learn which field was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Authenticator validates a credential pair.
type Authenticator interface {
	Authenticate(username, password string) error
}

// StaticCredentials authenticates against a fixed username/password pair.
type StaticCredentials struct {
	username string
	password string
}

// NewStaticCredentials creates a StaticCredentials authenticator. Empty
// values fall back to the demo defaults.
func NewStaticCredentials(username, password string) *StaticCredentials {
	if username == "" {
		username = DefaultUsername
	}
	if password == "" {
		password = DefaultPassword
	}
	return &StaticCredentials{username: username, password: password}
}

// Authenticate compares both fields in constant time and returns
// ErrInvalidCredentials unless both match exactly.
func (c *StaticCredentials) Authenticate(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.password)) == 1
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}
