package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"deardiary.dev/diary/pkg/diary"
	"deardiary.dev/diary/pkg/mood"
	"deardiary.dev/diary/pkg/notes"
	"deardiary.dev/diary/pkg/timeutil"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entry renders one full diary entry: the day header, the mood line, the
// content, and a faint footer with word count and last-modified clock.
func (pp *PrettyPrint) Entry(e diary.Entry) {
	p := color.New()
	f := color.New(color.Faint)
	i := color.New(color.Italic)

	header := e.Title
	if day, err := timeutil.ParseDateKey(e.Date); err == nil {
		display := timeutil.DisplayDate(day)
		pp.Title(display)
		if header != "" && header != display {
			_, _ = i.Println(header)
		}
	} else {
		pp.Title(header)
	}

	if e.Mood.Valid() {
		g := e.Mood.Glyph()
		_, _ = p.Printf("%s %s\n", g.Emoji, g.Name)
	}
	if e.Content != "" {
		_, _ = p.Println(wordwrap.String(e.Content, 76))
	}

	switch {
	case e.UpdatedAt.IsZero():
		_, _ = f.Printf("%d words\n", e.WordCount)
	default:
		_, _ = f.Printf("%d words · last saved %s\n", e.WordCount, timeutil.Clock(e.UpdatedAt.Time))
	}
	pp.NewLine()
}

// Matches renders search results or a listing as a table, one row per day.
func (pp *PrettyPrint) Matches(matches ...diary.Match) {
	if len(matches) == 0 {
		none := color.New(color.Faint, color.Italic)
		_, _ = none.Print(" none\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("DATE", "MOOD", "WORDS", "TITLE")
	for _, m := range matches {
		table.AddRow(m.Date, m.Entry.Mood.Emoji(), m.Entry.WordCount, m.Entry.Title)
	}
	fmt.Println(table)
	pp.NewLine()
}

// MoodStats renders the tally per mood as faint bars, lowest mood first.
func (pp *PrettyPrint) MoodStats(counts map[mood.Mood]int, total int) {
	p := color.New()
	f := color.New(color.Faint)

	for _, g := range mood.DefaultGlyphs() {
		n := counts[g.Mood]
		_, _ = p.Printf("%s %-8s", g.Emoji, g.Name)
		_, _ = f.Printf("%s %d\n", strings.Repeat("▇", n), n)
	}
	_, _ = f.Printf("%d entries with a mood\n\n", total)
}

// Stats renders the headline numbers.
func (pp *PrettyPrint) Stats(total, thisMonth, streak int) {
	p := color.New()
	_, _ = p.Printf("total entries  %d\n", total)
	_, _ = p.Printf("this month     %d\n", thisMonth)
	switch streak {
	case 1:
		_, _ = p.Printf("streak         1 day\n")
	default:
		_, _ = p.Printf("streak         %d days\n", streak)
	}
	pp.NewLine()
}

// Notes renders quick notes newest first.
func (pp *PrettyPrint) Notes(list ...notes.Note) {
	if len(list) == 0 {
		none := color.New(color.Faint, color.Italic)
		_, _ = none.Print(" none\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	table.AddRow("ID", "CREATED", "NOTE")
	for _, n := range list {
		table.AddRow(shortID(n.ID), timeutil.DateKey(n.CreatedAt), n.Content)
	}
	fmt.Println(table)
	pp.NewLine()
}

// Moods renders the scale legend.
func (pp *PrettyPrint) Moods() {
	p := color.New()
	f := color.New(color.Faint, color.Italic)
	for _, g := range mood.DefaultGlyphs() {
		_, _ = p.Printf("%d %s %-8s", int(g.Mood), g.Emoji, g.Name)
		_, _ = f.Printf(" %s\n", g.Meaning)
	}
	pp.NewLine()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
