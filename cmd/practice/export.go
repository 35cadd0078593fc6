// ABOUTME: CLI command for exporting practice data as JSON.
// ABOUTME: Dumps the day and ledger snapshots in their wire form.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/practice/internal/models"
	"github.com/harperreed/practice/internal/storage"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export practice data as JSON",
	Long: `Export all practice data as JSON, in the same shape the store
persists: the day map and the experience ledger.

OPTIONS:

  --output, -o   Write to file instead of stdout

EXAMPLES:

  practice export                   # Print to stdout
  practice export -o backup.json    # Save to file`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		daysJSON, err := storage.EncodeDays(daysMap())
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		ledgerJSON, err := storage.EncodeLedger(app.Ledger())
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		dump := map[string]json.RawMessage{
			"days":   daysJSON,
			"ledger": ledgerJSON,
		}
		data, err := json.MarshalIndent(dump, "", "  ")
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}
		return nil
	},
}

func daysMap() map[string]*models.DayRecord {
	out := make(map[string]*models.DayRecord)
	for _, d := range app.Days() {
		out[d.Date] = d
	}
	return out
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
