package remote

import "context"

// Session is what the CLI consumes from the identity collaborator: a user id
// when signed in, empty otherwise.
type Session struct {
	UserID string
}

// Authenticated reports whether a user is present.
func (s Session) Authenticated() bool {
	return s.UserID != ""
}

// Identity is the hosted auth provider at the interface it presents. The
// provider itself (sign-up, OAuth, refresh) is outside this repo; commands
// only need the current session.
type Identity interface {
	CurrentSession(ctx context.Context) (Session, error)
	SignOut(ctx context.Context) error
}

// StaticIdentity satisfies Identity with a fixed user id from config. It is
// the deployment mode where the operator supplies their hosted user id
// directly.
type StaticIdentity struct {
	ID string
}

func (s StaticIdentity) CurrentSession(context.Context) (Session, error) {
	return Session{UserID: s.ID}, nil
}

func (s StaticIdentity) SignOut(context.Context) error {
	return nil
}
