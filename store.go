package stockbroker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists the ledger's full book set after mutations. The processor
// calls it once per accepted order, so a subsequent process start resumes
// from the latest state.
type Store interface {
	SaveBooks(ledger *Ledger) error
}

// FileStore writes the books to a CSV file. The write goes through a
// temporary file renamed over the target, so a crash mid-write never leaves
// a truncated orders file behind.
type FileStore struct {
	Path string
}

func (s *FileStore) SaveBooks(ledger *Ledger) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := EncodeBooks(tmp, ledger); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.Path)
}

// LoadLedger reads the orders file into a ledger seeded with the given
// netting policy. A file that does not exist yet is a fresh empty ledger;
// any other failure is fatal.
func LoadLedger(path string, policy NettingPolicy) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedgerWith(policy), nil
	}
	if err != nil {
		return nil, storageUnavailable(path, err)
	}
	defer f.Close()

	ledger, err := DecodeBooks(f, policy)
	if err != nil {
		return nil, storageUnavailable(path, err)
	}
	return ledger, nil
}

// LoadStockCodes reads the stock-code file. Unlike the orders file, a
// missing stock-code file is fatal: without it no order can ever be
// accepted, so the process should not enter either mode.
func LoadStockCodes(path string) (*StockCodeSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, storageUnavailable(path, err)
	}
	defer f.Close()

	codes, err := DecodeStockCodes(f)
	if err != nil {
		return nil, storageUnavailable(path, err)
	}
	return codes, nil
}
