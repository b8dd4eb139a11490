package commands

import (
	"context"

	"github.com/spf13/cobra"

	"deardiary.dev/diary/pkg/commands/options"
	"deardiary.dev/diary/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	do := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the entry editor.",
		Example: `
diary ui
diary ui --on 2026-02-28
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openStores()
			if err != nil {
				return err
			}
			on, err := do.GetOn()
			if err != nil {
				return err
			}
			i := ui.UI{
				On:      on,
				Entries: s.entries,
				Gate:    s.gate,
				Watch:   s.disk.Watch,
			}
			err = i.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
