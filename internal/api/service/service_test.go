package service

import (
	"testing"
	"whlin31/CarHub/internal/db"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// testDB opens a fresh in-memory SQLite database with the full schema.
// A single connection keeps every query on the same in-memory instance.
func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	pool, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	pool.SetMaxOpenConns(1)
	t.Cleanup(func() { pool.Close() })

	require.NoError(t, db.Initialize(pool))
	return pool
}
