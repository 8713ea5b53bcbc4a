package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "manifest.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db))

	// version table must exist and be empty after a fresh migration
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM manifest_version`).Scan(&count))
	assert.Zero(t, count)

	// running migrations twice is a no-op
	assert.NoError(t, Migrate(db))
}

func TestMigrate_SingleRowConstraint(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "manifest.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db))

	_, err = db.Exec(`INSERT INTO manifest_version (id, version) VALUES (1, 'v1')`)
	require.NoError(t, err)

	// a second row violates the id = 1 check
	_, err = db.Exec(`INSERT INTO manifest_version (id, version) VALUES (2, 'v2')`)
	assert.Error(t, err)
}
