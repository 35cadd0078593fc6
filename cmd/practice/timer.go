// ABOUTME: CLI command for timing a live practice session.
// ABOUTME: Runs a stopwatch until Enter or Ctrl-C, then commits the minutes.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/harperreed/practice/internal/models"
	"github.com/harperreed/practice/internal/tracker"
	"github.com/spf13/cobra"
)

var timerTitle string

var timerCmd = &cobra.Command{
	Use:     "timer <task>",
	Aliases: []string{"t"},
	Short:   "Time a practice session",
	Long: `Start a stopwatch for a task. Press Enter or Ctrl-C to stop; the
elapsed time is logged automatically, rounded to one decimal minute.
Sessions shorter than 3 seconds round to zero and are discarded.

Examples:
  practice timer piano
  practice timer vocal --title "Caro mio ben"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task := args[0]
		if !models.IsValidTask(task) {
			return fmt.Errorf("unknown task: %s\nValid tasks: piano, solfege, study, vocal, conducting", task)
		}

		fmt.Printf("Timing %s. Press Enter or Ctrl-C to stop.\n", models.TaskLabels[models.Task(task)])

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			<-sigChan
			cancel()
		}()
		go func() {
			bufio.NewReader(os.Stdin).ReadString('\n')
			cancel()
		}()

		sw := tracker.NewStopwatch(tracker.SystemClock())
		seconds := sw.Run(ctx, func(s int) {
			fmt.Printf("\r  %02d:%02d ", s/60, s%60)
		})
		fmt.Println()

		minutes := tracker.ElapsedMinutes(seconds)
		if minutes == 0 {
			fmt.Println("Session too short, nothing logged.")
			return nil
		}

		e, err := app.AddEntry(app.Today(), models.Task(task), minutes, timerTitle)
		if err != nil {
			return fmt.Errorf("failed to log session: %w", err)
		}

		color.Green("✓ Logged %.1f min of %s", e.Minutes, models.TaskLabels[e.Task])
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(e.ID.String()[:8]))
		return nil
	},
}

func init() {
	timerCmd.Flags().StringVarP(&timerTitle, "title", "t", "", "what is being practiced")
	rootCmd.AddCommand(timerCmd)
}
