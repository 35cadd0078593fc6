// ABOUTME: Root Cobra command for practice CLI.
// ABOUTME: Handles storage and tracker lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/practice/internal/config"
	"github.com/harperreed/practice/internal/storage"
	"github.com/harperreed/practice/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository
	app  *tracker.Tracker
)

var rootCmd = &cobra.Command{
	Use:     "practice",
	Version: "1.0.0",
	Short:   "Daily music practice tracker",
	Long: `Practice is a CLI tool for tracking daily music practice.

WHAT IT TRACKS:

  Daily tasks      piano, solfege, study -- all three required every day
  Alternate tasks  vocal, conducting -- at least one today or yesterday

  A day counts toward your streak only when both rules are satisfied.
  Minutes feed three experience tracks: piano/solfege/study share the
  basic track, vocal and conducting each have their own.

QUICK START:

  $ practice log piano 30               # Log 30 minutes of piano
  $ practice log vocal 20 -t "Caro mio ben"
  $ practice timer piano                # Time a session live
  $ practice status                     # Streak, levels, today's progress
  $ practice day                        # Today's record in detail
  $ practice cal                        # Month calendar, color-coded

FIXING MISTAKES:

  $ practice undo piano 30              # Remove the last 30-min piano entry
  $ practice reset day                  # Wipe today and refund experience
  $ practice reset all                  # Wipe everything (asks first)

SYNC (AUTOMATIC):

  Sync practice data across devices using Charm Cloud.
  Data is E2E encrypted with your SSH key.

  $ practice sync link      # Link device to your Charm account
  $ practice sync status    # Check sync status
  $ practice sync wipe      # Delete cloud and local data

MCP INTEGRATION:

  Run 'practice mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants. Add to your
  Claude config:

  {
    "mcpServers": {
      "practice": { "command": "practice", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in Charm KV at ~/.local/share/charm/kv/practice by default.
  Set {"backend": "badger"} in ~/.config/practice/config.json for a
  purely local store. Sync is automatic on each write operation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		app, err = tracker.Load(repo, tracker.SystemClock())
		if err != nil {
			return fmt.Errorf("failed to load practice data: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			err := repo.Close()
			repo = nil
			return err
		}
		return nil
	},
}
