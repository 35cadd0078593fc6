// ABOUTME: Repository interface for practice data storage.
// ABOUTME: Backends persist whole-object snapshots of the day store and ledger.
package storage

import (
	"os"
	"path/filepath"

	"github.com/harperreed/practice/internal/models"
)

// Repository defines the storage contract. Every save is a full overwrite
// of the persisted snapshot; there is no write batching. Loads never fail
// on malformed data: a snapshot that cannot be decoded is treated as
// absent and yields a fresh empty state.
type Repository interface {
	LoadDays() (map[string]*models.DayRecord, error)
	SaveDays(days map[string]*models.DayRecord) error
	LoadLedger() (*models.Ledger, error)
	SaveLedger(ledger *models.Ledger) error
	Close() error
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "practice")
}
