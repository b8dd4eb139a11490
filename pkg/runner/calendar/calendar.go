package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"deardiary.dev/diary/pkg/diary"
	"deardiary.dev/diary/pkg/printers"
)

// Calendar prints the month grid, marking days that have an entry.
type Calendar struct {
	Month time.Time

	Entries *diary.Store
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Entries == nil {
		return errors.New("can not show calendar, no entry store")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Calendar(n.Month, n.Entries.All())
	return nil
}
