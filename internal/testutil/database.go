// Package testutil provides shared test helpers.
package testutil

import (
	"context"
	"testing"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/storage"
)

// SetupTestDB creates an in-memory SQLite store with migrations applied and
// registers cleanup with the test.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
