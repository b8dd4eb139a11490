package diary

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"deardiary.dev/diary/pkg/kv"
	"deardiary.dev/diary/pkg/timeutil"
)

// EntriesKey is the storage key holding the whole entry collection as one
// JSON blob.
const EntriesKey = "diary-entries"

// Collection maps date keys to entries.
type Collection map[string]Entry

// Match is a search result: the entry plus the date key it was found under.
type Match struct {
	Date string
	Entry
}

// Store is date-keyed CRUD over the collection blob. Every mutation reloads
// the full collection, merges, and writes it back in one piece.
type Store struct {
	kv  kv.Store
	now func() time.Time
}

// NewStore wraps the provided key-value store.
func NewStore(s kv.Store) *Store {
	return &Store{kv: s, now: time.Now}
}

// All loads the collection. Absence or a corrupt blob yields an empty
// collection; corruption is logged, not fatal.
func (s *Store) All() Collection {
	data, ok := s.kv.Raw(EntriesKey)
	if !ok {
		return Collection{}
	}
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		fmt.Fprintf(os.Stderr, "diary: corrupt entry collection, starting empty: %v\n", err)
		return Collection{}
	}
	if c == nil {
		return Collection{}
	}
	return c
}

// Get returns the entry for the calendar day of t.
func (s *Store) Get(t time.Time) (Entry, bool) {
	e, ok := s.All()[timeutil.DateKey(t)]
	return e, ok
}

// Save merges e into the record for the calendar day of t and writes the
// collection back. The first save stamps CreatedAt; every save recomputes
// the word count, defaults the title to the display date, and advances
// UpdatedAt. The store does not reject empty entries; callers apply
// Entry.Empty before saving.
func (s *Store) Save(t time.Time, e Entry) bool {
	key := timeutil.DateKey(t)
	all := s.All()

	now := s.now()
	e.Date = key
	e.Content = strings.TrimSpace(e.Content)
	e.WordCount = CountWords(e.Content)
	if e.Title == "" {
		e.Title = timeutil.DisplayDate(t)
	}
	if existing, ok := all[key]; ok && !existing.CreatedAt.IsZero() {
		e.CreatedAt = existing.CreatedAt
	} else if e.CreatedAt.IsZero() {
		e.CreatedAt = Timestamp{now}
	}
	e.UpdatedAt = Timestamp{now}

	all[key] = e
	return s.write(all)
}

// Delete removes the record for the calendar day of t. Deleting an absent
// day is not an error.
func (s *Store) Delete(t time.Time) bool {
	key := timeutil.DateKey(t)
	all := s.All()
	if _, ok := all[key]; !ok {
		return true
	}
	delete(all, key)
	return s.write(all)
}

// Search finds entries whose content contains term, case-insensitively,
// most recent day first. An empty or whitespace-only term matches nothing;
// "no filter" is the caller's case to handle.
func (s *Store) Search(term string) []Match {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}
	var out []Match
	for key, e := range s.All() {
		if strings.Contains(strings.ToLower(e.Content), needle) {
			out = append(out, Match{Date: key, Entry: e})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// DateKeys lists the days that currently have entries, order unspecified.
func (s *Store) DateKeys() []string {
	all := s.All()
	keys := make([]string, 0, len(all))
	for key := range all {
		keys = append(keys, key)
	}
	return keys
}

// Export serializes the full collection for a user-initiated backup.
func (s *Store) Export() ([]byte, error) {
	data, err := json.MarshalIndent(s.All(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("diary: export: %w", err)
	}
	return data, nil
}

// Import replaces the collection wholesale with a previously exported blob.
func (s *Store) Import(data []byte) error {
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("diary: import: %w", err)
	}
	if c == nil {
		c = Collection{}
	}
	if !s.write(c) {
		return fmt.Errorf("diary: import: write failed")
	}
	return nil
}

// Wipe removes the whole collection. Used by the credential reset flow.
func (s *Store) Wipe() bool {
	return s.kv.Remove(EntriesKey)
}

func (s *Store) write(c Collection) bool {
	return s.kv.Set(EntriesKey, c)
}
