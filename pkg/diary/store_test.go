package diary

import (
	"testing"
	"time"

	"deardiary.dev/diary/pkg/kv"
	"deardiary.dev/diary/pkg/mood"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(kv.NewSession())
}

func TestSaveGetRoundTrip(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	if ok := s.Save(day, Entry{Content: "Went hiking", Mood: mood.Good}); !ok {
		t.Fatalf("save failed")
	}

	// Same calendar day, different time of day.
	lookup := time.Date(2024, 3, 15, 23, 59, 0, 0, time.Local)
	got, ok := s.Get(lookup)
	if !ok {
		t.Fatalf("same-day lookup missed")
	}
	if got.Content != "Went hiking" {
		t.Fatalf("content mismatch: %q", got.Content)
	}
	if got.Mood != mood.Good {
		t.Fatalf("mood mismatch: %v", got.Mood)
	}
	if got.WordCount != 2 {
		t.Fatalf("word count = %d, want 2", got.WordCount)
	}
	if got.UpdatedAt.Before(got.CreatedAt.Time) {
		t.Fatalf("updatedAt %v before createdAt %v", got.UpdatedAt, got.CreatedAt)
	}
	if got.Title == "" {
		t.Fatalf("title should default to the display date")
	}
}

func TestOverwritePreservesCreatedAt(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)

	t0 := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return t0 }
	s.Save(day, Entry{Content: "Went hiking", Mood: mood.Good})

	first, _ := s.Get(day)

	t1 := t0.Add(2 * time.Hour)
	s.now = func() time.Time { return t1 }
	s.Save(day, Entry{Content: "Went hiking. Great day.", Mood: mood.Good})

	second, ok := s.Get(day)
	if !ok {
		t.Fatalf("entry vanished on overwrite")
	}
	if second.WordCount != 4 {
		t.Fatalf("word count = %d, want 4", second.WordCount)
	}
	if !second.CreatedAt.Equal(first.CreatedAt.Time) {
		t.Fatalf("createdAt changed on overwrite: %v -> %v", first.CreatedAt, second.CreatedAt)
	}
	if !second.UpdatedAt.After(first.UpdatedAt.Time) {
		t.Fatalf("updatedAt did not advance: %v -> %v", first.UpdatedAt, second.UpdatedAt)
	}
	if len(s.DateKeys()) != 1 {
		t.Fatalf("overwrite must not duplicate keys: %v", s.DateKeys())
	}
}

func TestDeleteIdempotent(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	s.Save(day, Entry{Content: "something"})

	if !s.Delete(day) {
		t.Fatalf("first delete failed")
	}
	if !s.Delete(day) {
		t.Fatalf("second delete should succeed")
	}
	if _, ok := s.Get(day); ok {
		t.Fatalf("entry survived delete")
	}
}

func TestSearch(t *testing.T) {
	s := newTestStore(t)
	s.Save(time.Date(2024, 3, 14, 0, 0, 0, 0, time.Local), Entry{Content: "Rainy day inside"})
	s.Save(time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local), Entry{Content: "Went HIKING up the ridge"})
	s.Save(time.Date(2024, 3, 16, 0, 0, 0, 0, time.Local), Entry{Content: "More hiking, sore legs"})

	if got := s.Search(""); len(got) != 0 {
		t.Fatalf("empty term must match nothing, got %d", len(got))
	}
	if got := s.Search("   "); len(got) != 0 {
		t.Fatalf("whitespace term must match nothing, got %d", len(got))
	}

	got := s.Search("hiking")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Date != "2024-03-16" || got[1].Date != "2024-03-15" {
		t.Fatalf("matches out of order: %s, %s", got[0].Date, got[1].Date)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestStore(t)
	s.Save(time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local), Entry{Content: "Went hiking", Mood: mood.Good})
	s.Save(time.Date(2024, 3, 16, 0, 0, 0, 0, time.Local), Entry{Title: "Rest day", Content: "Slept in"})

	blob, err := s.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	other := newTestStore(t)
	if err := other.Import(blob); err != nil {
		t.Fatalf("import: %v", err)
	}

	want := s.All()
	got := other.All()
	if len(got) != len(want) {
		t.Fatalf("collection size changed: %d -> %d", len(want), len(got))
	}
	for key, w := range want {
		g, ok := got[key]
		if !ok {
			t.Fatalf("key %s lost in round trip", key)
		}
		if g.Content != w.Content || g.Mood != w.Mood || g.Title != w.Title ||
			g.WordCount != w.WordCount || !g.CreatedAt.Equal(w.CreatedAt.Time) ||
			!g.UpdatedAt.Equal(w.UpdatedAt.Time) {
			t.Fatalf("entry %s changed in round trip:\n  want %#v\n  got  %#v", key, w, g)
		}
	}
}

func TestCorruptBlobYieldsEmptyCollection(t *testing.T) {
	store := kv.NewSession()
	store.Set(EntriesKey, "{definitely not json")
	s := NewStore(store)
	if got := s.All(); len(got) != 0 {
		t.Fatalf("expected empty collection for corrupt blob, got %d entries", len(got))
	}
}

func TestWipe(t *testing.T) {
	s := newTestStore(t)
	s.Save(time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local), Entry{Content: "secret"})
	if !s.Wipe() {
		t.Fatalf("wipe failed")
	}
	if len(s.All()) != 0 {
		t.Fatalf("entries survived wipe")
	}
}

func TestEmptyPredicate(t *testing.T) {
	cases := []struct {
		e    Entry
		want bool
	}{
		{Entry{}, true},
		{Entry{Content: "   \n\t "}, true},
		{Entry{Content: "hello"}, false},
		{Entry{Title: "A day"}, false},
		{Entry{Mood: mood.Neutral}, false},
	}
	for i, tc := range cases {
		if got := tc.e.Empty(); got != tc.want {
			t.Fatalf("case %d: Empty() = %v, want %v", i, got, tc.want)
		}
	}
}

func TestCountWords(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"Went hiking", 2},
		{"Went hiking. Great day.", 4},
		{"one\ntwo\t three", 3},
	}
	for _, tc := range cases {
		if got := CountWords(tc.in); got != tc.want {
			t.Fatalf("CountWords(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
