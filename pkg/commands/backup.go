package commands

import (
	"context"

	"github.com/spf13/cobra"

	"deardiary.dev/diary/pkg/commands/options"
	"deardiary.dev/diary/pkg/runner/backup"
)

func addExport(topLevel *cobra.Command) {
	fo := &options.FileOptions{}
	po := &options.PasswordOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every entry to a JSON backup.",
		Example: `
diary export
diary export -f my-diary.json
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
			e := backup.Export{
				File:    fo.File,
				Entries: s.entries,
			}
			err = e.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFileArgs(cmd, fo)
	options.AddPasswordArgs(cmd, po)

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	fo := &options.FileOptions{}
	po := &options.PasswordOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace every entry with a previously exported backup.",
		Example: `
diary import -f diary-backup-2026-02-28.json
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
			i := backup.Import{
				File:    fo.File,
				Entries: s.entries,
			}
			err = i.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFileArgs(cmd, fo)
	options.AddPasswordArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
