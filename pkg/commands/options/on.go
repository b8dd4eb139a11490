package options

import (
	"time"

	"github.com/spf13/cobra"

	"deardiary.dev/diary/pkg/timeutil"
)

// OnOptions selects the calendar day a command operates on. The default is
// today.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify the day, example: --on="2026-02-28". Defaults to today.`)
}

func (o *OnOptions) GetOn() (time.Time, error) {
	if o.OnString == "" {
		return time.Now(), nil
	}
	return timeutil.ParseDateKey(o.OnString)
}

// MonthOptions selects a month for calendar views, default the current one.
type MonthOptions struct {
	MonthString string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVar(&o.MonthString, "month", "",
		`Specify the month, example: --month="2026-02". Defaults to this month.`)
}

func (o *MonthOptions) GetMonth() (time.Time, error) {
	if o.MonthString == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01", o.MonthString, time.Local)
}
