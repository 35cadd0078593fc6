// ABOUTME: CLI command for logging practice minutes.
// ABOUTME: Validates the task and minutes, then commits via the tracker.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/practice/internal/dates"
	"github.com/harperreed/practice/internal/models"
	"github.com/spf13/cobra"
)

var (
	logTitle string
	logDate  string
)

var logCmd = &cobra.Command{
	Use:     "log <task> <minutes>",
	Aliases: []string{"l", "add"},
	Short:   "Log practice minutes",
	Long: `Log minutes against a practice task.

TASKS:

  piano, solfege, study     required every day
  vocal, conducting         at least one today or yesterday

Minutes are rounded to one decimal place and credit the task's
experience track immediately.

Examples:
  practice log piano 30
  practice log vocal 20 --title "Caro mio ben"
  practice log study 15 --date 2025-03-08`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		task := args[0]
		if !models.IsValidTask(task) {
			return fmt.Errorf("unknown task: %s\nValid tasks: piano, solfege, study, vocal, conducting", task)
		}

		minutes, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid minutes: %s", args[1])
		}
		if minutes <= 0 {
			return fmt.Errorf("minutes must be positive, got %v", minutes)
		}

		date, err := resolveDate(logDate)
		if err != nil {
			return err
		}

		e, err := app.AddEntry(date, models.Task(task), minutes, logTitle)
		if err != nil {
			return fmt.Errorf("failed to log practice: %w", err)
		}

		color.Green("✓ Logged %s", models.TaskLabels[e.Task])
		fmt.Printf("  %s %.1f min on %s\n",
			color.New(color.Faint).Sprint(e.ID.String()[:8]),
			e.Minutes, date)

		if app.DayDone(date) {
			color.Green("✓ %s complete -- streak: %d", date, app.Streak())
		}
		return nil
	},
}

// resolveDate validates an optional date argument, defaulting to today.
func resolveDate(date string) (string, error) {
	if date == "" {
		return app.Today(), nil
	}
	if dates.Parse(date).IsZero() {
		return "", fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", date)
	}
	return date, nil
}

func init() {
	logCmd.Flags().StringVarP(&logTitle, "title", "t", "", "what was practiced (piece, exercise, chapter)")
	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "date to log against (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(logCmd)
}
