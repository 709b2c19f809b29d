package stockbroker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "orders.csv")

	ledger := NewLedger()
	ledger.Reconcile(mustOrder(t, "buy AAPL 150.00 100"))
	ledger.Reconcile(mustOrder(t, "sell GOOG 10.00 5"))

	store := &FileStore{Path: path}
	if err := store.SaveBooks(ledger); err != nil {
		t.Fatalf("SaveBooks failed: %v", err)
	}

	reloaded, err := LoadLedger(path, SameActionNetting{})
	if err != nil {
		t.Fatalf("LoadLedger failed: %v", err)
	}
	if reloaded.Len() != 2 {
		t.Fatalf("reloaded %d books, want 2", reloaded.Len())
	}
	if got := reloaded.Lookup(BookKey{Buy, "AAPL", "150.00"}).Volume; got != 100 {
		t.Errorf("reloaded volume = %d, want 100", got)
	}
}

func TestFileStore_RewritesInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	store := &FileStore{Path: path}

	ledger := NewLedger()
	ledger.Reconcile(mustOrder(t, "buy AAPL 150.00 100"))
	if err := store.SaveBooks(ledger); err != nil {
		t.Fatalf("first SaveBooks failed: %v", err)
	}
	ledger.Reconcile(mustOrder(t, "buy AAPL 150.00 50"))
	if err := store.SaveBooks(ledger); err != nil {
		t.Fatalf("second SaveBooks failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "buy,AAPL,150.00,150\n"
	if string(data) != want {
		t.Errorf("orders file = %q, want %q", string(data), want)
	}
}

func TestLoadLedger_MissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	ledger, err := LoadLedger(path, SameActionNetting{})
	if err != nil {
		t.Fatalf("LoadLedger failed: %v", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("fresh ledger holds %d books, want 0", ledger.Len())
	}
}

func TestLoadLedger_CorruptFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	if err := os.WriteFile(path, []byte("not,a,book\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadLedger(path, SameActionNetting{})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("LoadLedger error = %v, want ErrStorageUnavailable", err)
	}
}

func TestLoadStockCodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stockcode.csv")
	if err := os.WriteFile(path, []byte("AAPL\nGOOG\n"), 0644); err != nil {
		t.Fatal(err)
	}
	codes, err := LoadStockCodes(path)
	if err != nil {
		t.Fatalf("LoadStockCodes failed: %v", err)
	}
	if !codes.Has("AAPL") || !codes.Has("GOOG") {
		t.Error("loaded set is missing codes")
	}
}

func TestLoadStockCodes_MissingFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stockcode.csv")
	_, err := LoadStockCodes(path)
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("LoadStockCodes error = %v, want ErrStorageUnavailable", err)
	}
}
