package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"deardiary.dev/diary/pkg/credential"
	"deardiary.dev/diary/pkg/diary"
	"deardiary.dev/diary/pkg/tui/editor"
)

// UI opens the entry editor for a day.
type UI struct {
	On time.Time

	Entries *diary.Store
	Gate    *credential.Gate
	Watch   editor.WatchFunc
}

func (n *UI) Do(ctx context.Context) error {
	if n.Entries == nil {
		return errors.New("can not open the editor, no entry store")
	}

	m := editor.New(editor.Config{
		Entries: n.Entries,
		Gate:    n.Gate,
		Day:     n.On,
		Watch:   n.Watch,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
