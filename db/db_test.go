package db

import (
	"path/filepath"
	"testing"
)

// setupTestDB points the global pool at a fresh throwaway database.
func setupTestDB(t *testing.T) {
	t.Helper()
	InitDBAt(filepath.Join(t.TempDir(), "lvlreq-test.db"))
	t.Cleanup(func() { DB.Close() })
}
