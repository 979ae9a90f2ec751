package services

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avaldezp/pizzeria-be/internal/database"
)

// newTestDB opens an in-memory sqlite database with the full schema. A single
// connection is enforced so every statement sees the same in-memory store.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New("file::memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func ptr[T any](v T) *T {
	return &v
}
