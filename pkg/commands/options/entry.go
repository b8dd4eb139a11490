package options

import (
	"github.com/spf13/cobra"

	"deardiary.dev/diary/pkg/mood"
)

// EntryOptions carries the writable fields of a diary entry.
type EntryOptions struct {
	Message    string
	Title      string
	MoodString string
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Message, "message", "m", "",
		"The entry content.")
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"The entry title. Defaults to the display date.")
	cmd.Flags().StringVar(&o.MoodString, "mood", "",
		`The mood, 1-5 or a name ("sad", "low", "neutral", "good", "great").`)
}

func (o *EntryOptions) GetMood() (mood.Mood, error) {
	return mood.Parse(o.MoodString)
}
