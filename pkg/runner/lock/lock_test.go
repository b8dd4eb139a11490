package lock

import (
	"context"
	"strings"
	"testing"
	"time"

	"deardiary.dev/diary/pkg/credential"
	"deardiary.dev/diary/pkg/diary"
	"deardiary.dev/diary/pkg/kv"
)

func seeded(t *testing.T) (*credential.Gate, *diary.Store) {
	t.Helper()
	disk := kv.NewSession()
	gate := credential.NewGate(disk, kv.NewSession())
	entries := diary.NewStore(disk)

	if err := gate.Set("hunter2"); err != nil {
		t.Fatalf("Set password: %v", err)
	}
	if !entries.Save(time.Now(), diary.Entry{Content: "dear diary"}) {
		t.Fatal("seed save failed")
	}
	return gate, entries
}

func TestVerifyWrongPassword(t *testing.T) {
	gate, _ := seeded(t)
	v := Verify{Password: "wrong", Gate: gate}
	if err := v.Do(context.Background()); err == nil {
		t.Fatal("expected an error for a wrong password")
	}
}

func TestClearKeepsEntries(t *testing.T) {
	gate, entries := seeded(t)
	c := Clear{Gate: gate}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	if gate.Has() {
		t.Fatal("password still set after clear")
	}
	if len(entries.All()) != 1 {
		t.Fatal("clear must not touch entries")
	}
}

func TestResetWipesEverything(t *testing.T) {
	gate, entries := seeded(t)
	r := Reset{Confirm: true, Gate: gate, Entries: entries}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	if gate.Has() {
		t.Fatal("password survived reset")
	}
	if len(entries.All()) != 0 {
		t.Fatal("entries survived reset")
	}
}

func TestResetPromptAccepts(t *testing.T) {
	gate, entries := seeded(t)
	r := Reset{Gate: gate, Entries: entries, In: strings.NewReader("yes\n")}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	if gate.Has() || len(entries.All()) != 0 {
		t.Fatal("confirmed reset did not run")
	}
}

func TestResetPromptAborts(t *testing.T) {
	gate, entries := seeded(t)
	r := Reset{Gate: gate, Entries: entries, In: strings.NewReader("no\n")}
	if err := r.Do(context.Background()); err == nil {
		t.Fatal("expected reset to abort")
	}
	if !gate.Has() {
		t.Fatal("aborted reset removed the password")
	}
	if len(entries.All()) != 1 {
		t.Fatal("aborted reset removed entries")
	}
}
