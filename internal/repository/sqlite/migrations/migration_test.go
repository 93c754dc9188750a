package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, RunMigrations(db))

	// The time_entries table and its running-entry guard index exist.
	var name string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='time_entries'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "time_entries", name)

	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='index' AND name='idx_time_entries_one_running'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "idx_time_entries_one_running", name)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := loadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	assert.Equal(t, 1, migrations[0].Version)
	assert.NotEmpty(t, migrations[0].Up)
	assert.NotEmpty(t, migrations[0].Down)
}
