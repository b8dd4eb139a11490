package unlock

import (
	"context"
	"strings"
	"testing"

	"deardiary.dev/diary/pkg/credential"
	"deardiary.dev/diary/pkg/kv"
)

func newGate(t *testing.T, password string) *credential.Gate {
	t.Helper()
	gate := credential.NewGate(kv.NewSession(), kv.NewSession())
	if password != "" {
		if err := gate.Set(password); err != nil {
			t.Fatalf("Set password: %v", err)
		}
		gate.ClearAuthenticated()
	}
	return gate
}

func TestNoPasswordPassesThrough(t *testing.T) {
	u := Unlock{Gate: newGate(t, "")}
	if err := u.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
}

func TestPasswordFlag(t *testing.T) {
	gate := newGate(t, "hunter2")

	u := Unlock{Gate: gate, Password: "hunter2"}
	if err := u.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	if !gate.Authenticated() {
		t.Fatal("verify did not mark the session")
	}

	bad := Unlock{Gate: newGate(t, "hunter2"), Password: "wrong"}
	if err := bad.Do(context.Background()); err == nil {
		t.Fatal("expected an error for a wrong password")
	}
}

func TestPromptRetriesUntilCorrect(t *testing.T) {
	gate := newGate(t, "hunter2")

	u := Unlock{Gate: gate, In: strings.NewReader("nope\nhunter2\n")}
	if err := u.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	if !gate.Authenticated() {
		t.Fatal("prompt verify did not mark the session")
	}
}

func TestPromptEOFAborts(t *testing.T) {
	gate := newGate(t, "hunter2")

	u := Unlock{Gate: gate, In: strings.NewReader("nope\n")}
	if err := u.Do(context.Background()); err == nil {
		t.Fatal("expected an error when input runs out")
	}
}
