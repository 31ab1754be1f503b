// Package csvstore provides a flat-file implementation of the storage.Store
// interface. Each collection is a comma-separated file with a header row.
package csvstore

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/mmynk/clevermart/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

const (
	DefaultInventoryFile    = "inventory.csv"
	DefaultTransactionsFile = "transactions.csv"
)

// Store implements storage.Store on two CSV files.
type Store struct {
	inventoryPath    string
	transactionsPath string
}

// New creates a Store for the given file paths.
// Parent directories are created on first save, not here.
func New(inventoryPath, transactionsPath string) *Store {
	return &Store{
		inventoryPath:    inventoryPath,
		transactionsPath: transactionsPath,
	}
}

// NewInDir creates a Store using the default file names inside dir.
func NewInDir(dir string) *Store {
	return New(
		filepath.Join(dir, DefaultInventoryFile),
		filepath.Join(dir, DefaultTransactionsFile),
	)
}

// InventoryPath returns the path of the inventory file.
func (s *Store) InventoryPath() string { return s.inventoryPath }

// TransactionsPath returns the path of the ledger file.
func (s *Store) TransactionsPath() string { return s.transactionsPath }

// Close is a no-op; files are opened per operation.
func (s *Store) Close() error { return nil }

// readRows decodes path into out. A missing or empty file leaves out
// untouched and reports found=false.
func readRows(path string, out any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return false, nil
	}
	if err := gocsv.UnmarshalBytes(data, out); err != nil {
		return true, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return true, nil
}

// writeRows encodes rows to a temp file next to path and renames it into
// place, so a failed write never leaves a truncated file behind.
func writeRows(path string, rows any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := gocsv.Marshal(rows, tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode rows: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
