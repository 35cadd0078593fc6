// ABOUTME: CLI command for removing logged practice minutes.
// ABOUTME: Drops the newest matching entry and refunds its experience.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/practice/internal/models"
	"github.com/spf13/cobra"
)

var undoDate string

var undoCmd = &cobra.Command{
	Use:     "undo <task> <minutes>",
	Aliases: []string{"u"},
	Short:   "Remove logged practice minutes",
	Long: `Remove minutes from a task, dropping the most recent matching entry.

The removal is clamped at the minutes actually logged, and the task's
experience track gives back exactly what was removed.

Examples:
  practice undo piano 30
  practice undo vocal 20 --date 2025-03-08`,
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

		date, err := resolveDate(undoDate)
		if err != nil {
			return err
		}

		removed, err := app.RemoveLast(date, models.Task(task), minutes)
		if err != nil {
			return fmt.Errorf("failed to undo practice: %w", err)
		}

		if removed == 0 {
			fmt.Printf("Nothing to remove for %s on %s.\n", task, date)
			return nil
		}

		color.Green("✓ Removed %.1f min of %s", removed, models.TaskLabels[models.Task(task)])
		fmt.Printf("  %s now at %.1f min on %s\n",
			color.New(color.Faint).Sprint(task),
			app.Day(date).MinutesFor(models.Task(task)), date)
		return nil
	},
}

func init() {
	undoCmd.Flags().StringVarP(&undoDate, "date", "d", "", "date to undo on (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(undoCmd)
}
