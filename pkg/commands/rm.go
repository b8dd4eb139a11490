package commands

import (
	"context"

	"github.com/spf13/cobra"

	"deardiary.dev/diary/pkg/commands/options"
	"deardiary.dev/diary/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	do := &options.OnOptions{}
	po := &options.PasswordOptions{}

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove a diary entry.",
		Example: `
diary rm --on 2026-02-28
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
			r := remove.Remove{
				On:      on,
				Entries: s.entries,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, do)
	options.AddPasswordArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
