package options

import (
	"github.com/spf13/cobra"
)

// FileOptions names a backup file for export and import.
type FileOptions struct {
	File string
}

func AddFileArgs(cmd *cobra.Command, o *FileOptions) {
	cmd.Flags().StringVarP(&o.File, "file", "f", "",
		"The backup file. Export defaults to diary-backup-<date>.json.")
}
