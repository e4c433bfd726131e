package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenCreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpenCreatesNestedDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "c", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestGetMissingKey(t *testing.T) {
	store := openTestStore(t)

	value, err := store.Get("no-such-key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "" {
		t.Errorf("Get() on missing key = %q, want empty string", value)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("classic-highscore", "1250"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, err := store.Get("classic-highscore")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "1250" {
		t.Errorf("Get() = %q, want %q", value, "1250")
	}
}

func TestSetOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("classic-highscore", "100"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set("classic-highscore", "200"); err != nil {
		t.Fatalf("Set() second write error = %v", err)
	}

	value, err := store.Get("classic-highscore")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "200" {
		t.Errorf("Get() after overwrite = %q, want %q", value, "200")
	}
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("classic-highscore", "300"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Delete("classic-highscore"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	value, err := store.Get("classic-highscore")
	if err != nil {
		t.Fatalf("Get() after delete error = %v", err)
	}
	if value != "" {
		t.Errorf("Get() after delete = %q, want empty string", value)
	}
}

func TestDeleteMissingKey(t *testing.T) {
	store := openTestStore(t)

	if err := store.Delete("never-set"); err != nil {
		t.Errorf("Delete() on missing key error = %v, want nil", err)
	}
}

func TestPersistenceAcrossOpens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := store.Set("classic-highscore", "4200"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	value, err := reopened.Get("classic-highscore")
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if value != "4200" {
		t.Errorf("Get() after reopen = %q, want %q", value, "4200")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}
