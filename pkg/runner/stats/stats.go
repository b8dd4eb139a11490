package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"deardiary.dev/diary/pkg/diary"
	"deardiary.dev/diary/pkg/printers"
)

type Stats struct {
	// Window widens or narrows the recent-activity line, e.g. "2w".
	Window      time.Duration
	WindowLabel string

	Entries *diary.Store

	// now is injectable for tests.
	Now func() time.Time
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Entries == nil {
		return errors.New("can not show stats, no entry store")
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}

	c := n.Entries.All()
	counts, total := c.MoodCounts()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Diary stats")
	pp.Stats(len(c), c.EntriesInMonth(now()), c.Streak(now()))
	if n.Window > 0 {
		since := now().Add(-n.Window)
		fmt.Printf("last %-8s %d entries\n\n", n.WindowLabel, c.EntriesSince(since))
	}
	pp.MoodStats(counts, total)
	return nil
}
