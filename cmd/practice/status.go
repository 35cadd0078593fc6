// ABOUTME: CLI command for the streak, today's progress, and track levels.
// ABOUTME: Renders a small dashboard with experience bars.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/practice/internal/models"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show streak, today's progress, and levels",
	Long: `Show the current streak of fully complete days, today's total
minutes, and each experience track's level with a progress bar toward
the next level.

Example:
  practice status`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		today := app.Today()

		streak := app.Streak()
		if streak > 0 {
			color.Green("Streak: %d day(s)", streak)
		} else {
			fmt.Println("Streak: 0 days")
		}

		total := 0.0
		if day := app.Recorded(today); day != nil {
			total = day.TotalMinutes()
		}
		fmt.Printf("Today (%s): %.1f min", today, total)
		if app.DayDone(today) {
			color.Green("  ✓ complete")
		} else {
			fmt.Println()
		}
		fmt.Println()

		ledger := app.Ledger()
		for _, track := range models.AllTracks {
			st := ledger.State(track)
			required := models.RequirementFor(st.Level)
			fmt.Printf("%s  Lv %d  %s %.0f/%.0f\n",
				padRight(models.TrackLabels[track], 11),
				st.Level, xpBar(st.XP, required, 20), st.XP, required)
		}
		return nil
	},
}

// xpBar renders progress toward the next level as a fixed-width bar.
func xpBar(xp, required float64, width int) string {
	filled := 0
	if required > 0 {
		filled = int(xp / required * float64(width))
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return color.New(color.Faint).Sprint("[") + bar + color.New(color.Faint).Sprint("]")
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
