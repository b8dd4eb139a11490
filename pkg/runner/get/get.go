package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"deardiary.dev/diary/pkg/diary"
	"deardiary.dev/diary/pkg/printers"
	"deardiary.dev/diary/pkg/timeutil"
)

type Get struct {
	On  time.Time
	All bool

	Entries *diary.Store
}

func (n *Get) Do(ctx context.Context) error {
	if n.Entries == nil {
		return errors.New("can not get, no entry store")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	if n.All {
		all := n.Entries.All()
		pp.TitleWithCount("Diary", len(all))
		pp.Matches(all.Recent(0)...)
		return nil
	}

	e, ok := n.Entries.Get(n.On)
	if !ok {
		pp.Title(timeutil.DisplayDate(n.On))
		pp.Matches()
		return nil
	}
	pp.Entry(e)
	return nil
}
