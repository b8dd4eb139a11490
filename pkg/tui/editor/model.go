// Package editor is the interactive entry editor: one day, one entry, with
// debounced autosave while typing.
package editor

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/v2/textarea"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"deardiary.dev/diary/pkg/autosave"
	"deardiary.dev/diary/pkg/credential"
	"deardiary.dev/diary/pkg/diary"
	"deardiary.dev/diary/pkg/kv"
	"deardiary.dev/diary/pkg/mood"
	"deardiary.dev/diary/pkg/timeutil"
)

// WatchFunc feeds external store changes into the editor so it can reload a
// clean buffer when another process writes the entry blob.
type WatchFunc func(ctx context.Context) (<-chan kv.Event, error)

type focusField int

const (
	fieldTitle focusField = iota
	fieldMood
	fieldContent
)

// warnAfter failed unlock attempts, the lock screen starts nagging. It never
// locks the user out.
const warnAfter = 5

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	moodOnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	warnStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214"))
)

// draft is the handoff point between the UI goroutine and the autosave
// timer. The timer reads whatever the user typed last.
type draft struct {
	mu sync.Mutex
	e  diary.Entry
}

func (d *draft) set(e diary.Entry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.e = e
}

func (d *draft) get() diary.Entry {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.e
}

type tickMsg time.Time

type watchStartedMsg struct {
	ch  <-chan kv.Event
	err error
}

type watchEventMsg struct {
	event kv.Event
	ok    bool
}

// Config wires the editor's collaborators.
type Config struct {
	Entries *diary.Store
	Gate    *credential.Gate
	Day     time.Time
	Watch   WatchFunc
}

// Model is the editor program state.
type Model struct {
	entries *diary.Store
	gate    *credential.Gate
	day     time.Time

	locked   bool
	attempts int
	password textinput.Model

	title   textinput.Model
	content textarea.Model
	mood    mood.Mood
	focus   focusField

	draft *draft
	saver *autosave.Coordinator

	watch   WatchFunc
	watchCh <-chan kv.Event

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
	status string
}

// New builds the editor for the given day. The buffer starts locked when a
// password is set and the session has not been verified yet.
func New(cfg Config) *Model {
	pw := textinput.New()
	pw.Placeholder = "password"
	pw.Prompt = "> "
	pw.EchoMode = textinput.EchoPassword

	title := textinput.New()
	title.Placeholder = timeutil.DisplayDate(cfg.Day)
	title.Prompt = ""

	content := textarea.New()
	content.Placeholder = "Dear diary…"
	content.ShowLineNumbers = false

	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		entries:  cfg.Entries,
		gate:     cfg.Gate,
		day:      cfg.Day,
		password: pw,
		title:    title,
		content:  content,
		focus:    fieldContent,
		draft:    &draft{},
		watch:    cfg.Watch,
		ctx:      ctx,
		cancel:   cancel,
	}

	m.locked = cfg.Gate != nil && cfg.Gate.Has() && !cfg.Gate.Authenticated()
	m.saver = autosave.New(autosave.DefaultDelay, m.persistDraft)

	if !m.locked {
		m.load()
	}
	return m
}

// persistDraft runs on the autosave timer. Empty drafts are skipped, they
// are not worth a record.
func (m *Model) persistDraft() bool {
	e := m.draft.get()
	if e.Empty() {
		return true
	}
	return m.entries.Save(m.day, e)
}

// load replaces the buffer with the stored entry for the day.
func (m *Model) load() {
	e, _ := m.entries.Get(m.day)
	if e.Title != timeutil.DisplayDate(m.day) {
		m.title.SetValue(e.Title)
	} else {
		m.title.SetValue("")
	}
	m.content.SetValue(e.Content)
	m.mood = e.Mood
	m.draft.set(m.current())
}

// current assembles the entry as typed.
func (m *Model) current() diary.Entry {
	return diary.Entry{
		Title:   m.title.Value(),
		Content: m.content.Value(),
		Mood:    m.mood,
	}
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick()}
	if m.locked {
		cmds = append(cmds, m.password.Focus())
	} else {
		cmds = append(cmds, m.content.Focus())
	}
	if m.watch != nil {
		cmds = append(cmds, m.startWatch())
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) startWatch() tea.Cmd {
	return func() tea.Msg {
		ch, err := m.watch(m.ctx)
		return watchStartedMsg{ch: ch, err: err}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	ch := m.watchCh
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-ch
		return watchEventMsg{event: event, ok: ok}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applySizes()
		return m, nil

	case tickMsg:
		return m, tick()

	case watchStartedMsg:
		if msg.err != nil {
			m.status = "watch unavailable"
			return m, nil
		}
		m.watchCh = msg.ch
		return m, m.waitForWatch()

	case watchEventMsg:
		if !msg.ok {
			m.watchCh = nil
			return m, nil
		}
		// Reload only a clean buffer; never clobber unsaved typing.
		if !m.locked && msg.event.Key == diary.EntriesKey && !m.saver.Dirty() {
			m.load()
			m.status = "reloaded external changes"
		}
		return m, m.waitForWatch()

	case tea.KeyPressMsg:
		if m.locked {
			return m.updateLocked(msg)
		}
		if handled, cmd := m.handleEditorKey(msg); handled {
			return m, cmd
		}
	}

	before := m.current()
	switch m.focus {
	case fieldTitle:
		var cmd tea.Cmd
		m.title, cmd = m.title.Update(msg)
		cmds = append(cmds, cmd)
	case fieldContent:
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		cmds = append(cmds, cmd)
	}
	if after := m.current(); after != before {
		m.markEdit(after)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) markEdit(e diary.Entry) {
	m.draft.set(e)
	m.saver.Edit()
	m.status = ""
}

func (m *Model) updateLocked(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.teardown()
		return m, tea.Quit
	case "enter":
		if m.gate.Verify(m.password.Value()) {
			m.locked = false
			m.attempts = 0
			m.load()
			return m, m.content.Focus()
		}
		m.attempts++
		m.password.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	return m, cmd
}

// handleEditorKey deals with the chrome keys. Everything else falls through
// to the focused input.
func (m *Model) handleEditorKey(msg tea.KeyPressMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.teardown()
		return true, tea.Quit

	case "esc":
		// Exit saves pending edits first so nothing typed is lost.
		if m.saver.Dirty() && !m.saver.Flush() {
			m.status = "save failed, ctrl+c to discard"
			return true, nil
		}
		m.teardown()
		return true, tea.Quit

	case "ctrl+s":
		if m.saver.Flush() {
			m.status = "Diary entry saved!"
		} else {
			m.status = "save failed"
		}
		return true, nil

	case "tab":
		m.cycleFocus(1)
		return true, m.focusCmd()

	case "shift+tab":
		m.cycleFocus(-1)
		return true, m.focusCmd()
	}

	if m.focus == fieldMood {
		switch s := msg.String(); s {
		case "1", "2", "3", "4", "5":
			n, _ := strconv.Atoi(s)
			m.markEdit(m.withMood(mood.Mood(n)))
			return true, nil
		case "0", "backspace", "delete":
			m.markEdit(m.withMood(mood.Unset))
			return true, nil
		}
	}

	return false, nil
}

func (m *Model) withMood(v mood.Mood) diary.Entry {
	m.mood = v
	return m.current()
}

func (m *Model) cycleFocus(dir int) {
	m.focus = focusField((int(m.focus) + dir + 3) % 3)
}

func (m *Model) focusCmd() tea.Cmd {
	m.title.Blur()
	m.content.Blur()
	switch m.focus {
	case fieldTitle:
		return m.title.Focus()
	case fieldContent:
		return m.content.Focus()
	}
	return nil
}

func (m *Model) applySizes() {
	w := m.width - 2
	if w < 20 {
		w = 20
	}
	m.title.SetWidth(w)
	m.password.SetWidth(w)
	m.content.SetWidth(w)
	h := m.height - 8
	if h < 3 {
		h = 3
	}
	m.content.SetHeight(h)
}

// teardown stops the autosave timer and the watch feed. It does not save:
// esc flushes before calling this, ctrl+c discards on purpose.
func (m *Model) teardown() {
	m.saver.Close()
	m.cancel()
}

func (m *Model) View() string {
	if m.locked {
		return m.lockView()
	}

	header := headerStyle.Render(timeutil.DisplayDate(m.day))

	moods := "mood: "
	for _, g := range mood.DefaultGlyphs() {
		label := fmt.Sprintf(" %d %s ", int(g.Mood), g.Emoji)
		if g.Mood == m.mood {
			moods += moodOnStyle.Render(label)
		} else {
			moods += faintStyle.Render(label)
		}
	}
	if m.focus == fieldMood {
		moods += faintStyle.Render("  (1-5 to set, 0 to clear)")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.title.View(),
		moods,
		m.content.View(),
		m.statusBar(),
	)
}

func (m *Model) statusBar() string {
	words := diary.CountWords(m.content.Value())

	var save string
	switch {
	case m.status != "":
		save = m.status
	case m.saver.State() == autosave.Saving:
		save = "saving…"
	case m.saver.Dirty():
		save = "unsaved changes"
	default:
		if e, ok := m.entries.Get(m.day); ok && !e.UpdatedAt.IsZero() {
			save = "saved " + timeutil.Clock(e.UpdatedAt.Time)
		} else {
			save = "new entry"
		}
	}

	left := fmt.Sprintf("%d words · %s", words, save)
	help := "tab focus · ctrl+s save · esc quit"
	return faintStyle.Render(left + "   " + help)
}

func (m *Model) lockView() string {
	lines := []string{
		headerStyle.Render("This diary is locked"),
		"Enter your password to continue.",
		m.password.View(),
	}
	if m.attempts > 0 {
		lines = append(lines, "Incorrect password.")
	}
	if m.attempts >= warnAfter {
		lines = append(lines, warnStyle.Render(fmt.Sprintf("%d failed attempts", m.attempts)))
	}
	lines = append(lines, faintStyle.Render("enter unlock · esc quit"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
