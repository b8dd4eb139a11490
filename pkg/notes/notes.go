// Package notes stores short free-text notes, separate from the diary.
package notes

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"deardiary.dev/diary/pkg/kv"
)

// NotesKey is the storage key holding all notes as one JSON array.
const NotesKey = "notes-data"

// ErrEmptyContent rejects notes with nothing in them.
var ErrEmptyContent = errors.New("notes: content required")

// ErrNotFound reports an unknown note id.
var ErrNotFound = errors.New("notes: note not found")

// Note is a single quick note.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store is CRUD over the notes array held under one key-value entry.
type Store struct {
	kv  kv.Store
	now func() time.Time
}

// NewStore wraps the provided key-value store.
func NewStore(s kv.Store) *Store {
	return &Store{kv: s, now: time.Now}
}

// All loads every note, newest first. Absence or corruption yields an empty
// list; corruption is logged.
func (s *Store) All() []Note {
	data, ok := s.kv.Raw(NotesKey)
	if !ok {
		return nil
	}
	var list []Note
	if err := json.Unmarshal(data, &list); err != nil {
		fmt.Fprintf(os.Stderr, "notes: corrupt notes list, starting empty: %v\n", err)
		return nil
	}
	return list
}

// Add creates a note and persists the list.
func (s *Store) Add(content string) (Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Note{}, ErrEmptyContent
	}
	now := s.now()
	n := Note{
		ID:        uuid.NewString(),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	list := append([]Note{n}, s.All()...)
	if !s.write(list) {
		return Note{}, errors.New("notes: write failed")
	}
	return n, nil
}

// Update rewrites the content of the note with the given id.
func (s *Store) Update(id, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyContent
	}
	list := s.All()
	for i := range list {
		if list[i].ID == id {
			list[i].Content = content
			list[i].UpdatedAt = s.now()
			if !s.write(list) {
				return errors.New("notes: write failed")
			}
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the note with the given id. Removing an unknown id is not
// an error.
func (s *Store) Remove(id string) bool {
	list := s.All()
	kept := list[:0]
	for _, n := range list {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(list) {
		return true
	}
	return s.write(kept)
}

// Search finds notes whose content contains term, case-insensitively. An
// empty or whitespace-only term matches nothing.
func (s *Store) Search(term string) []Note {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}
	var out []Note
	for _, n := range s.All() {
		if strings.Contains(strings.ToLower(n.Content), needle) {
			out = append(out, n)
		}
	}
	return out
}

func (s *Store) write(list []Note) bool {
	return s.kv.Set(NotesKey, list)
}
