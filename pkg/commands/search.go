package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"deardiary.dev/diary/pkg/commands/options"
	"deardiary.dev/diary/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	po := &options.PasswordOptions{}

	cmd := &cobra.Command{
		Use:   "search TERM",
		Short: "Search entry content.",
		Example: `
diary search hiking
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openStores()
			if err != nil {
				return err
			}
			if err := s.mustUnlock(context.Background(), po.Password); err != nil {
				return oo.HandleError(err)
			}
			r := search.Search{
				Term:    strings.Join(args, " "),
				Entries: s.entries,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddPasswordArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
