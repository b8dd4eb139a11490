package commands

import (
	"context"

	"github.com/spf13/cobra"

	"deardiary.dev/diary/pkg/commands/options"
	"deardiary.dev/diary/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	po := &options.PasswordOptions{}

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show which days of a month have entries.",
		Example: `
diary calendar
diary calendar --month 2026-02
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
			month, err := mo.GetMonth()
			if err != nil {
				return err
			}
			c := calendar.Calendar{
				Month:   month,
				Entries: s.entries,
			}
			err = c.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddPasswordArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
