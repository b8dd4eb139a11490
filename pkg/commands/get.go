package commands

import (
	"context"

	"github.com/spf13/cobra"

	"deardiary.dev/diary/pkg/commands/options"
	"deardiary.dev/diary/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	do := &options.OnOptions{}
	po := &options.PasswordOptions{}
	all := false

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a diary entry.",
		Example: `
diary get
diary get --on 2026-02-28
diary get --all
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
			on, err := do.GetOn()
			if err != nil {
				return err
			}
			g := get.Get{
				On:      on,
				All:     all,
				Entries: s.entries,
			}
			err = g.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, do)
	options.AddPasswordArgs(cmd, po)
	cmd.Flags().BoolVar(&all, "all", false, "List every entry.")

	topLevel.AddCommand(cmd)
}
