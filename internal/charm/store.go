// ABOUTME: Repository implementation backed by the Charm KV client.
// ABOUTME: Stores the two whole-state snapshots under fixed keys.
package charm

import (
	"fmt"

	"github.com/harperreed/practice/internal/models"
	"github.com/harperreed/practice/internal/storage"
)

// LoadDays reads the day snapshot from the KV store. An absent or
// malformed snapshot yields an empty store.
func (c *Client) LoadDays() (map[string]*models.DayRecord, error) {
	data, err := c.get(storage.DaysKey)
	if err != nil {
		return nil, fmt.Errorf("load days: %w", err)
	}
	return storage.DecodeDays(data), nil
}

// SaveDays overwrites the day snapshot wholesale and syncs.
func (c *Client) SaveDays(days map[string]*models.DayRecord) error {
	data, err := storage.EncodeDays(days)
	if err != nil {
		return fmt.Errorf("encode days: %w", err)
	}
	if err := c.set(storage.DaysKey, data); err != nil {
		return fmt.Errorf("save days: %w", err)
	}
	return nil
}

// LoadLedger reads the ledger snapshot from the KV store. An absent or
// malformed snapshot yields a fresh ledger.
func (c *Client) LoadLedger() (*models.Ledger, error) {
	data, err := c.get(storage.LedgerKey)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return storage.DecodeLedger(data), nil
}

// SaveLedger overwrites the ledger snapshot wholesale and syncs.
func (c *Client) SaveLedger(l *models.Ledger) error {
	data, err := storage.EncodeLedger(l)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := c.set(storage.LedgerKey, data); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}
