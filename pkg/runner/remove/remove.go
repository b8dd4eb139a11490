package remove

import (
	"context"
	"errors"
	"fmt"
	"time"

	"deardiary.dev/diary/pkg/diary"
	"deardiary.dev/diary/pkg/timeutil"
)

// Remove deletes the entry for a day. Removing a day with no entry is fine.
type Remove struct {
	On time.Time

	Entries *diary.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Entries == nil {
		return errors.New("can not remove, no entry store")
	}

	key := timeutil.DateKey(n.On)
	if !n.Entries.Delete(n.On) {
		return fmt.Errorf("failed to remove entry for %s", key)
	}
	fmt.Printf("Removed entry for %s.\n", key)
	return nil
}
