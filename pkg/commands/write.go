package commands

import (
	"context"

	"github.com/spf13/cobra"

	"deardiary.dev/diary/pkg/commands/options"
	"deardiary.dev/diary/pkg/runner/write"
)

func addWrite(topLevel *cobra.Command) {
	do := &options.OnOptions{}
	eo := &options.EntryOptions{}
	po := &options.PasswordOptions{}

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write or update a diary entry.",
		Example: `
diary write -m "Today I went hiking"
diary write --on 2026-02-28 --mood great -m "What a day"
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
			m, err := eo.GetMood()
			if err != nil {
				return err
			}
			w := write.Write{
				On:      on,
				Message: eo.Message,
				Title:   eo.Title,
				Mood:    m,
				Entries: s.entries,
			}
			err = w.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, do)
	options.AddEntryArgs(cmd, eo)
	options.AddPasswordArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
