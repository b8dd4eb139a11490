package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"deardiary.dev/diary/pkg/diary"
	"deardiary.dev/diary/pkg/printers"
)

type Search struct {
	Term string

	Entries *diary.Store
}

func (n *Search) Do(ctx context.Context) error {
	if n.Entries == nil {
		return errors.New("can not search, no entry store")
	}
	if strings.TrimSpace(n.Term) == "" {
		return errors.New("a search term is required")
	}

	matches := n.Entries.Search(n.Term)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount(fmt.Sprintf("Entries matching %q", n.Term), len(matches))
	pp.Matches(matches...)
	return nil
}
