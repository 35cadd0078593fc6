// ABOUTME: In-memory Repository for the MCP server's tests and ephemeral use.
// ABOUTME: Round-trips through the wire codec so it behaves like a real backend.
package storage

import (
	"github.com/harperreed/practice/internal/models"
)

// MemoryStore is a Repository that keeps snapshots in memory. It encodes
// and decodes through the same JSON shapes as the persistent backends.
type MemoryStore struct {
	days   []byte
	ledger []byte
	saves  int
}

// NewMemoryStore creates an empty in-memory repository.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadDays() (map[string]*models.DayRecord, error) {
	return DecodeDays(s.days), nil
}

func (s *MemoryStore) SaveDays(days map[string]*models.DayRecord) error {
	data, err := EncodeDays(days)
	if err != nil {
		return err
	}
	s.days = data
	s.saves++
	return nil
}

func (s *MemoryStore) LoadLedger() (*models.Ledger, error) {
	return DecodeLedger(s.ledger), nil
}

func (s *MemoryStore) SaveLedger(ledger *models.Ledger) error {
	data, err := EncodeLedger(ledger)
	if err != nil {
		return err
	}
	s.ledger = data
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// Saves returns how many times the day snapshot was written.
func (s *MemoryStore) Saves() int { return s.saves }
