// ABOUTME: Local-only Badger KV backend for practice snapshots.
// ABOUTME: Stores the day collection and ledger under two fixed keys.
package storage

import (
	"fmt"
	"os"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/practice/internal/models"
)

// BadgerStore is a Repository backed by a local Badger database.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens or creates a Badger database at the given directory.
func OpenBadger(dir string) (*BadgerStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadDays reads the day snapshot, returning an empty store when the key
// is absent or the snapshot is malformed.
func (s *BadgerStore) LoadDays() (map[string]*models.DayRecord, error) {
	data, err := s.get(DaysKey)
	if err != nil {
		return nil, fmt.Errorf("load days: %w", err)
	}
	return DecodeDays(data), nil
}

// SaveDays overwrites the persisted day snapshot.
func (s *BadgerStore) SaveDays(days map[string]*models.DayRecord) error {
	data, err := EncodeDays(days)
	if err != nil {
		return fmt.Errorf("encode days: %w", err)
	}
	return s.set(DaysKey, data)
}

// LoadLedger reads the ledger snapshot, returning a fresh ledger when the
// key is absent or the snapshot is malformed.
func (s *BadgerStore) LoadLedger() (*models.Ledger, error) {
	data, err := s.get(LedgerKey)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return DecodeLedger(data), nil
}

// SaveLedger overwrites the persisted ledger snapshot.
func (s *BadgerStore) SaveLedger(ledger *models.Ledger) error {
	data, err := EncodeLedger(ledger)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	return s.set(LedgerKey, data)
}

// get returns the value for key, or nil when the key does not exist.
func (s *BadgerStore) get(key string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *BadgerStore) set(key string, data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}
