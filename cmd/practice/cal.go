// ABOUTME: CLI command for the month calendar view.
// ABOUTME: Colors each day by completion status, with a legend.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/practice/internal/dates"
	"github.com/harperreed/practice/internal/tracker"
	"github.com/spf13/cobra"
)

var calCmd = &cobra.Command{
	Use:     "cal [date]",
	Aliases: []string{"calendar", "c"},
	Short:   "Show the month calendar",
	Long: `Show a calendar for the month, coloring each day by status:

  green    fully complete (daily tasks plus the alternate rule)
  red      some practice logged but incomplete
  faint    nothing logged

Today is marked with brackets.

Examples:
  practice cal                # current month
  practice cal 2025-02-01     # any date in the month to show`,
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

		monthDates := dates.MonthDates(date)
		first := dates.Parse(monthDates[0])
		today := app.Today()

		fmt.Println(first.Format("January 2006"))
		fmt.Println(" Mo  Tu  We  Th  Fr  Sa  Su")

		// Monday-first column offset for the 1st of the month.
		col := (int(first.Weekday()) + 6) % 7
		for i := 0; i < col; i++ {
			fmt.Print("    ")
		}

		for _, d := range monthDates {
			fmt.Print(calCell(d, d == today))
			col++
			if col == 7 {
				fmt.Println()
				col = 0
			}
		}
		if col != 0 {
			fmt.Println()
		}

		fmt.Println()
		fmt.Printf("%s done  %s partial  %s empty   streak: %d\n",
			color.GreenString("■"), color.RedString("■"),
			color.New(color.Faint).Sprint("■"), app.Streak())
		return nil
	},
}

// calCell renders one 4-column calendar cell, colored by day status.
func calCell(date string, isToday bool) string {
	var c *color.Color
	switch app.DayStatusOn(date) {
	case tracker.StatusDone:
		c = color.New(color.FgGreen)
	case tracker.StatusPartial:
		c = color.New(color.FgRed)
	default:
		c = color.New(color.Faint)
	}

	num := c.Sprintf("%2d", dates.Parse(date).Day())
	if isToday {
		return fmt.Sprintf("[%s] ", num)
	}
	return fmt.Sprintf(" %s  ", num)
}

func init() {
	rootCmd.AddCommand(calCmd)
}
