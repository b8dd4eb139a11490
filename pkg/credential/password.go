// Package credential gates diary access behind a local password or a
// server-verified PIN. The gate owns the credential record and the
// session authentication flag; it never touches diary storage keys.
package credential

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"deardiary.dev/diary/pkg/kv"
)

const (
	// PasswordKey is the persistent key holding the bcrypt password hash.
	PasswordKey = "diary-password"
	// AuthKey is the session-scoped key holding the unlocked flag.
	AuthKey = "diary-auth-status"

	minPasswordLen = 4
)

// ErrPasswordTooShort rejects passwords under four characters at setup.
var ErrPasswordTooShort = errors.New("credential: password must be at least 4 characters")

// Gate implements the local password policy: a single global credential in
// persistent storage and an unlocked flag in session storage.
type Gate struct {
	store   kv.Store
	session kv.Store
}

// NewGate builds a gate over persistent and session-scoped stores.
func NewGate(store, session kv.Store) *Gate {
	return &Gate{store: store, session: session}
}

// Has reports whether a password has been set.
func (g *Gate) Has() bool {
	_, ok := g.store.Raw(PasswordKey)
	return ok
}

// Set hashes and stores the password, and marks the session authenticated.
func (g *Gate) Set(password string) error {
	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("credential: hash password: %w", err)
	}
	if !g.store.Set(PasswordKey, string(hash)) {
		return errors.New("credential: store password")
	}
	g.SetAuthenticated(true)
	return nil
}

// Verify compares the stored hash against password. A match marks the
// session authenticated; a mismatch leaves session state untouched. An unset
// password verifies false without revealing that nothing is set.
func (g *Gate) Verify(password string) bool {
	hash, ok := g.store.Raw(PasswordKey)
	if !ok {
		return false
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return false
	}
	g.SetAuthenticated(true)
	return true
}

// Clear removes the password record and the session flag together. The
// caller owns the companion step of wiping the diary collection; that is an
// explicit, irreversible choice surfaced to the user first.
func (g *Gate) Clear() {
	g.store.Remove(PasswordKey)
	g.ClearAuthenticated()
}

// Authenticated reports the session flag, defaulting to locked.
func (g *Gate) Authenticated() bool {
	raw, ok := g.session.Raw(AuthKey)
	return ok && string(raw) == "true"
}

// SetAuthenticated records the session flag.
func (g *Gate) SetAuthenticated(v bool) {
	g.session.Set(AuthKey, fmt.Sprintf("%t", v))
}

// ClearAuthenticated drops the session flag.
func (g *Gate) ClearAuthenticated() {
	g.session.Remove(AuthKey)
}
