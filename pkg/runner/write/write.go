package write

import (
	"context"
	"errors"
	"fmt"

	"deardiary.dev/diary/pkg/diary"
	"deardiary.dev/diary/pkg/mood"
	"deardiary.dev/diary/pkg/printers"
	"deardiary.dev/diary/pkg/timeutil"

	"time"
)

// Write is the non-interactive save path. It merges the given fields into
// the day's entry; fields left zero keep their stored value.
type Write struct {
	On      time.Time
	Message string
	Title   string
	Mood    mood.Mood

	Entries *diary.Store
}

func (n *Write) Do(ctx context.Context) error {
	if n.Entries == nil {
		return errors.New("can not write, no entry store")
	}

	e, _ := n.Entries.Get(n.On)
	if n.Message != "" {
		e.Content = n.Message
	}
	if n.Title != "" {
		e.Title = n.Title
	}
	if n.Mood.Valid() {
		e.Mood = n.Mood
	}

	if e.Empty() {
		return errors.New("nothing to save: entry needs content, a title, or a mood")
	}

	if !n.Entries.Save(n.On, e) {
		return fmt.Errorf("failed to save entry for %s", timeutil.DateKey(n.On))
	}

	saved, _ := n.Entries.Get(n.On)
	pp := printers.PrettyPrint{}
	fmt.Println("Diary entry saved!")
	pp.Entry(saved)
	return nil
}
