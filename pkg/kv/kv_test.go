package kv

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }
func (c *testConfig) DSN() string      { return "" }
func (c *testConfig) User() string     { return "" }

func newDisk(t *testing.T) *Disk {
	t.Helper()
	s, err := Open(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open disk store: %v", err)
	}
	return s
}

func TestDiskSetGetStructured(t *testing.T) {
	s := newDisk(t)

	in := map[string]any{"content": "went hiking", "mood": float64(4)}
	if ok := s.Set("diary-entries", in); !ok {
		t.Fatalf("set returned false")
	}

	got, ok := s.Get("diary-entries").(map[string]any)
	if !ok {
		t.Fatalf("expected decoded map, got %T", s.Get("diary-entries"))
	}
	if got["content"] != "went hiking" || got["mood"] != float64(4) {
		t.Fatalf("round trip mismatch: %#v", got)
	}
}

func TestDiskSetGetPlainString(t *testing.T) {
	s := newDisk(t)

	if ok := s.Set("diary-password", "$2a$12$not-json-at-all"); !ok {
		t.Fatalf("set returned false")
	}
	got, ok := s.Get("diary-password").(string)
	if !ok {
		t.Fatalf("expected string, got %T", s.Get("diary-password"))
	}
	if got != "$2a$12$not-json-at-all" {
		t.Fatalf("raw string changed: %q", got)
	}
}

func TestDiskGetAbsentReturnsNil(t *testing.T) {
	s := newDisk(t)
	if got := s.Get("never-set"); got != nil {
		t.Fatalf("expected nil for absent key, got %#v", got)
	}
	if _, ok := s.Raw("never-set"); ok {
		t.Fatalf("expected raw miss for absent key")
	}
}

func TestDiskRemoveIdempotent(t *testing.T) {
	s := newDisk(t)
	s.Set("k", "v")
	if !s.Remove("k") {
		t.Fatalf("first remove failed")
	}
	if !s.Remove("k") {
		t.Fatalf("second remove should be a no-op success")
	}
	if got := s.Get("k"); got != nil {
		t.Fatalf("expected nil after remove, got %#v", got)
	}
}

func TestDiskCorruptValueComesBackRaw(t *testing.T) {
	base := t.TempDir()
	s, err := Open(&testConfig{path: base})
	if err != nil {
		t.Fatalf("open disk store: %v", err)
	}

	// Write malformed JSON behind the store's back.
	if err := os.WriteFile(filepath.Join(base, "diary-entries"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt value: %v", err)
	}

	got, ok := s.Get("diary-entries").(string)
	if !ok {
		t.Fatalf("expected raw string fallback, got %T", s.Get("diary-entries"))
	}
	if got != "{not json" {
		t.Fatalf("raw fallback changed: %q", got)
	}
}

func TestSessionStore(t *testing.T) {
	s := NewSession()

	if got := s.Get("diary-auth-status"); got != nil {
		t.Fatalf("expected nil before set, got %#v", got)
	}
	s.Set("diary-auth-status", "true")
	if got := s.Get("diary-auth-status"); got != true {
		// "true" parses as JSON boolean.
		t.Fatalf("expected true, got %#v", got)
	}
	s.Remove("diary-auth-status")
	if got := s.Get("diary-auth-status"); got != nil {
		t.Fatalf("expected nil after remove, got %#v", got)
	}
}
