// ABOUTME: CLI command for viewing a single day's practice record.
// ABOUTME: Shows per-task minutes, completion marks, and the entry log.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/practice/internal/models"
	"github.com/harperreed/practice/internal/tracker"
	"github.com/spf13/cobra"
)

var dayCmd = &cobra.Command{
	Use:     "day [date]",
	Aliases: []string{"d"},
	Short:   "Show a day's practice record",
	Long: `Show one day's practice in detail: per-task minutes with completion
marks, followed by the individual entries in the order they were logged.

The alternate rule (vocal or conducting) also passes when the previous
calendar day had an alternate session.

Examples:
  practice day                # today
  practice day 2025-03-08     # a specific day`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}
		date, err := resolveDate(arg)
		if err != nil {
			return err
		}

		day := app.Recorded(date)
		faint := color.New(color.Faint)

		fmt.Printf("%s", date)
		switch app.DayStatusOn(date) {
		case tracker.StatusDone:
			color.Green("  ✓ complete")
		case tracker.StatusPartial:
			color.Yellow("  ~ in progress")
		default:
			fmt.Println(faint.Sprint("  (empty)"))
		}
		fmt.Println()

		daily := tracker.IsDailyDone(day)
		alt := tracker.IsAlternateDone(day, app.CalendarPrev(date))

		printTaskLine := func(task models.Task) {
			mins := 0.0
			if day != nil {
				mins = day.MinutesFor(task)
			}
			mark := faint.Sprint("·")
			if mins > 0 {
				mark = color.GreenString("✓")
			}
			fmt.Printf("  %s %s %.1f min\n", mark, padRight(models.TaskLabels[task], 14), mins)
		}

		fmt.Println("Daily", checkMark(daily))
		for _, task := range models.DailyTasks {
			printTaskLine(task)
		}
		fmt.Println("Alternate", checkMark(alt))
		for _, task := range models.AlternateTasks {
			printTaskLine(task)
		}

		if day != nil && len(day.Entries) > 0 {
			fmt.Println()
			for _, e := range day.Entries {
				title := ""
				if e.Title != "" {
					title = " " + faint.Sprint(e.Title)
				}
				fmt.Printf("  %s %s %s %.1f min%s\n",
					faint.Sprint(e.ID.String()[:8]),
					faint.Sprint(e.CreatedAt.Format("15:04")),
					padRight(string(e.Task), 10),
					e.Minutes, title)
			}
		}

		if day != nil {
			fmt.Printf("\nTotal: %.1f min\n", day.TotalMinutes())
		}
		return nil
	},
}

func checkMark(ok bool) string {
	if ok {
		return color.GreenString("✓")
	}
	return color.RedString("✗")
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	rootCmd.AddCommand(dayCmd)
}
