package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"deardiary.dev/diary/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "diary",
		Short: base.Wrap80("A personal diary and quick notes on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addWrite(topLevel)
	addGet(topLevel)
	addRemove(topLevel)
	addSearch(topLevel)
	addCalendar(topLevel)
	addStats(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addLock(topLevel)
	addReset(topLevel)
	addPin(topLevel)
	addNote(topLevel)
	addVersion(topLevel)
}
