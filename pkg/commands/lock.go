package commands

import (
	"context"

	"github.com/spf13/cobra"

	"deardiary.dev/diary/pkg/commands/options"
	"deardiary.dev/diary/pkg/runner/lock"
)

func addLock(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Manage the local diary password.",
		Example: `
diary lock set -p hunter2
diary lock verify -p hunter2
diary lock clear -p hunter2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addLockSet(cmd)
	addLockVerify(cmd)
	addLockClear(cmd)

	topLevel.AddCommand(cmd)
}

func addLockSet(topLevel *cobra.Command) {
	po := &options.PasswordOptions{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the password. At least 4 characters.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openStores()
			if err != nil {
				return err
			}
			// Changing an existing password requires the old one first.
			if s.gate.Has() {
				if err := s.mustUnlock(context.Background(), ""); err != nil {
					return oo.HandleError(err)
				}
			}
			r := lock.Set{Password: po.Password, Gate: s.gate}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddPasswordArgs(cmd, po)

	topLevel.AddCommand(cmd)
}

func addLockVerify(topLevel *cobra.Command) {
	po := &options.PasswordOptions{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a password against the stored one.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openStores()
			if err != nil {
				return err
			}
			r := lock.Verify{Password: po.Password, Gate: s.gate}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddPasswordArgs(cmd, po)

	topLevel.AddCommand(cmd)
}

func addLockClear(topLevel *cobra.Command) {
	po := &options.PasswordOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the password. Entries are kept.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openStores()
			if err != nil {
				return err
			}
			if err := s.mustUnlock(context.Background(), po.Password); err != nil {
				return oo.HandleError(err)
			}
			r := lock.Clear{Gate: s.gate}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddPasswordArgs(cmd, po)

	topLevel.AddCommand(cmd)
}

func addReset(topLevel *cobra.Command) {
	confirm := false

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forgot the password: remove it and delete every entry.",
		Example: `
diary reset
diary reset --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openStores()
			if err != nil {
				return err
			}
			r := lock.Reset{
				Confirm: confirm,
				Gate:    s.gate,
				Entries: s.entries,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&confirm, "yes", "y", false, "Skip the confirmation prompt.")

	topLevel.AddCommand(cmd)
}
