package credential

import (
	"errors"
	"testing"

	"deardiary.dev/diary/pkg/kv"
)

func newTestGate() *Gate {
	return NewGate(kv.NewSession(), kv.NewSession())
}

func TestGateLifecycle(t *testing.T) {
	g := newTestGate()

	if g.Has() {
		t.Fatalf("fresh gate should have no credential")
	}
	if g.Authenticated() {
		t.Fatalf("fresh gate should be locked")
	}
	if g.Verify("anything") {
		t.Fatalf("verify must fail with no credential set")
	}

	if err := g.Set("hunter2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !g.Has() {
		t.Fatalf("credential missing after set")
	}
	if !g.Authenticated() {
		t.Fatalf("set must mark the session authenticated")
	}
}

func TestGateVerify(t *testing.T) {
	g := newTestGate()
	if err := g.Set("hunter2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	g.ClearAuthenticated()

	if g.Verify("wrong") {
		t.Fatalf("wrong password accepted")
	}
	if g.Authenticated() {
		t.Fatalf("failed verify must not authenticate the session")
	}

	// Repeated failures then success; no lockout is enforced here.
	for i := 0; i < 5; i++ {
		g.Verify("still wrong")
	}
	if !g.Verify("hunter2") {
		t.Fatalf("correct password rejected")
	}
	if !g.Authenticated() {
		t.Fatalf("successful verify must authenticate the session")
	}
}

func TestGateClear(t *testing.T) {
	g := newTestGate()
	if err := g.Set("hunter2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	g.Clear()
	if g.Has() {
		t.Fatalf("credential survived clear")
	}
	if g.Authenticated() {
		t.Fatalf("session flag survived clear")
	}
	if g.Verify("hunter2") {
		t.Fatalf("verify must fail after clear")
	}
}

func TestGateRejectsShortPassword(t *testing.T) {
	g := newTestGate()
	if err := g.Set("abc"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	if g.Has() {
		t.Fatalf("rejected password must not be stored")
	}
}

func TestAuthenticatedFlag(t *testing.T) {
	g := newTestGate()
	g.SetAuthenticated(true)
	if !g.Authenticated() {
		t.Fatalf("flag not set")
	}
	g.SetAuthenticated(false)
	if g.Authenticated() {
		t.Fatalf("flag should read false")
	}
	g.SetAuthenticated(true)
	g.ClearAuthenticated()
	if g.Authenticated() {
		t.Fatalf("flag survived clear")
	}
}
