// ABOUTME: CLI commands for resetting a day or the whole history.
// ABOUTME: Both are gated behind a confirmation prompt unless --yes is set.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetSkipConfirm bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset practice data",
	Long: `Reset practice data. Both forms ask for confirmation first;
pass --yes to skip the prompt.

COMMANDS:

  day [date]   Erase one day's entries and refund its experience
  all          Erase ALL history and return every track to level 1`,
}

var resetDayCmd = &cobra.Command{
	Use:   "day [date]",
	Short: "Erase one day's practice",
	Long: `Erase everything logged on a day. Each task's minutes are
subtracted from its experience track, so levels roll back too, then the
day becomes a fresh empty record.

Examples:
  practice reset day                # today
  practice reset day 2025-03-08     # a specific day
  practice reset day -y             # skip the prompt`,
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

		ran, err := app.ResetDay(date, promptConfirm)
		if err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		if !ran {
			fmt.Println("Canceled.")
			return nil
		}

		color.Green("✓ Reset %s", date)
		fmt.Println("  Entries erased and experience refunded.")
		return nil
	},
}

var resetAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Erase all practice history",
	Long: `Erase ALL practice history and levels.

This is a DESTRUCTIVE operation: every recorded day is deleted and
every experience track returns to level 1. Only a fresh, empty record
for today remains.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ran, err := app.ResetAll(promptConfirm)
		if err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		if !ran {
			fmt.Println("Canceled.")
			return nil
		}

		color.Green("✓ All practice history erased")
		fmt.Println("  Every track is back to level 1.")
		return nil
	},
}

// promptConfirm asks y/N on the terminal; --yes bypasses it.
func promptConfirm(prompt string) bool {
	if resetSkipConfirm {
		return true
	}
	fmt.Printf("%s [y/N] ", prompt)
	response, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

func init() {
	resetCmd.PersistentFlags().BoolVarP(&resetSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	resetCmd.AddCommand(resetDayCmd)
	resetCmd.AddCommand(resetAllCmd)
	rootCmd.AddCommand(resetCmd)
}
