package commands

import (
	"context"

	"github.com/spf13/cobra"

	"deardiary.dev/diary/pkg/commands/options"
	"deardiary.dev/diary/pkg/runner/stats"
	"deardiary.dev/diary/pkg/timeutil"
)

func addStats(topLevel *cobra.Command) {
	po := &options.PasswordOptions{}
	window := ""

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Entry counts, writing streak, and mood tallies.",
		Example: `
diary stats
diary stats --window 2w
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openStores()
			if err != nil {
				return err
			}
			if err := s.mustUnlock(context.Background(), po.Password); err != nil {
				return oo.HandleError(err)
			}
			dur, label, err := timeutil.ParseWindow(window)
			if err != nil {
				return err
			}
			r := stats.Stats{
				Window:      dur,
				WindowLabel: label,
				Entries:     s.entries,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddPasswordArgs(cmd, po)
	cmd.Flags().StringVar(&window, "window", "",
		`Recent-activity window, example: --window=2w. Defaults to 1w.`)

	topLevel.AddCommand(cmd)
}
