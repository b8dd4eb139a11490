package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"deardiary.dev/diary/pkg/notes"
	"deardiary.dev/diary/pkg/runner/note"
)

func addNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Quick notes beside the diary.",
		Example: `
diary note add remember the milk
diary note get
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addNoteAdd(cmd)
	addNoteGet(cmd)
	addNoteRemove(cmd)
	addNoteSearch(cmd)

	topLevel.AddCommand(cmd)
}

func noteStore() (*notes.Store, error) {
	s, err := openStores()
	if err != nil {
		return nil, err
	}
	return notes.NewStore(s.disk), nil
}

func addNoteAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add NOTE",
		Short: "Add a note.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ns, err := noteStore()
			if err != nil {
				return err
			}
			r := note.Add{Content: strings.Join(args, " "), Notes: ns}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addNoteGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "List notes, newest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ns, err := noteStore()
			if err != nil {
				return err
			}
			r := note.Get{Notes: ns}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addNoteRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a note by id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ns, err := noteStore()
			if err != nil {
				return err
			}
			r := note.Remove{ID: args[0], Notes: ns}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addNoteSearch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "search TERM",
		Short: "Search note content.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ns, err := noteStore()
			if err != nil {
				return err
			}
			r := note.Search{Term: strings.Join(args, " "), Notes: ns}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
