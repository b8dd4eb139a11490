package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"deardiary.dev/diary/pkg/diary"
	"deardiary.dev/diary/pkg/timeutil"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month containing on as a grid. Days with an entry are
// bold, empty days faint, and the current day underlined.
func (pp *PrettyPrint) Calendar(on time.Time, c diary.Collection) {
	then := time.Date(on.Local().Year(), on.Local().Month(), 1, 1, 0, 0, 0, time.Local)
	days := DaysIn(then)

	marked := make([]bool, days)
	for key := range c {
		day, err := timeutil.ParseDateKey(key)
		if err != nil {
			continue
		}
		if day.Year() == then.Year() && day.Month() == then.Month() {
			marked[day.Day()-1] = true
		}
	}

	pp.PrintMonthMarks(then, marked)
}

// PrintMonthMarks renders the grid for the month of then, highlighting days
// whose index in marked is true.
func (pp *PrettyPrint) PrintMonthMarks(then time.Time, marked []bool) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", then.Month().String(), then.Year())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	empty := color.New(color.Faint, color.FgWhite)
	full := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.Underline, color.FgHiYellow)

	now := time.Now().Local()
	for i := 0; i < days; i++ {
		printer := empty
		if i < len(marked) && marked[i] {
			printer = full
		}
		if now.Year() == then.Year() && now.Month() == then.Month() && now.Day() == i+1 {
			printer = today
		}
		printer.Printf("%2d", i+1)
		fmt.Print(" ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Local().Year(), then.Local().Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Local().Year(), then.Local().Month()+1, 0, 0, 0, 0, 0, time.Local).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Local().Year(), then.Local().Month(), 1, 1, 0, 0, 0, time.Local).Weekday()
}
