// Package note implements the quick-note verbs. Notes live beside the diary
// but are not date-keyed and are never behind the credential gate.
package note

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"deardiary.dev/diary/pkg/notes"
	"deardiary.dev/diary/pkg/printers"
)

type Add struct {
	Content string

	Notes *notes.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Notes == nil {
		return errors.New("can not add note, no note store")
	}
	saved, err := n.Notes.Add(n.Content)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Note added")
	pp.Notes(saved)
	return nil
}

type Get struct {
	Notes *notes.Store
}

func (n *Get) Do(ctx context.Context) error {
	if n.Notes == nil {
		return errors.New("can not get notes, no note store")
	}
	all := n.Notes.All()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Notes", len(all))
	pp.Notes(all...)
	return nil
}

type Remove struct {
	ID string

	Notes *notes.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Notes == nil {
		return errors.New("can not remove note, no note store")
	}
	if n.ID == "" {
		return errors.New("a note id is required")
	}

	// Listings show truncated ids, so accept a unique prefix.
	id := n.ID
	var hits []string
	for _, note := range n.Notes.All() {
		if strings.HasPrefix(note.ID, id) {
			hits = append(hits, note.ID)
		}
	}
	switch len(hits) {
	case 0:
		return fmt.Errorf("no note with id %s", id)
	case 1:
		id = hits[0]
	default:
		return fmt.Errorf("id %s is ambiguous, %d notes match", id, len(hits))
	}

	if !n.Notes.Remove(id) {
		return fmt.Errorf("failed to remove note %s", id)
	}
	fmt.Printf("Removed note %s.\n", id)
	return nil
}

type Search struct {
	Term string

	Notes *notes.Store
}

func (n *Search) Do(ctx context.Context) error {
	if n.Notes == nil {
		return errors.New("can not search notes, no note store")
	}
	if strings.TrimSpace(n.Term) == "" {
		return errors.New("a search term is required")
	}
	found := n.Notes.Search(n.Term)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount(fmt.Sprintf("Notes matching %q", n.Term), len(found))
	pp.Notes(found...)
	return nil
}
