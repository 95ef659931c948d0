// Package testutil provides shared test helpers for setting up state
// directories and cache databases.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/cookbook/internal/cache"
	"github.com/starford/cookbook/internal/storage"
)

// TestCache creates a temporary cache database that is automatically
// cleaned up.
func TestCache(t *testing.T) *cache.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "cookbook-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := cache.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestStateDir creates a temporary state directory with a storage.Provider.
func TestStateDir(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// TestImage writes a small file with an image extension and returns its
// path. Attachment validation checks extension and existence only.
func TestImage(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("not-really-a-jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
