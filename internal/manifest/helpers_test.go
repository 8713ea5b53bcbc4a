package manifest

import (
	"archive/zip"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/osheron/destinykit/internal/logger"
	"github.com/osheron/destinykit/internal/store"
)

type stagingRow struct {
	id   int64
	json string
}

// buildStagingDB creates a SQLite file shaped like an extracted world-content
// database: one (id, json) table per entry in tables.
func buildStagingDB(t *testing.T, tables map[string][]stagingRow) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "staging.content")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	for name, rows := range tables {
		_, err = db.Exec(fmt.Sprintf(`CREATE TABLE %q (id INTEGER PRIMARY KEY NOT NULL, json BLOB)`, name))
		require.NoError(t, err)

		for _, row := range rows {
			_, err = db.Exec(fmt.Sprintf(`INSERT INTO %q (id, json) VALUES (?, ?)`, name), row.id, []byte(row.json))
			require.NoError(t, err)
		}
	}

	return path
}

// buildBundle zips the file at contentPath into a fresh archive, mirroring
// how Bungie publishes the world-content database.
func buildBundle(t *testing.T, contentPath string) []byte {
	t.Helper()

	content, err := os.ReadFile(contentPath)
	require.NoError(t, err)

	archivePath := filepath.Join(t.TempDir(), "bundle.zip")
	f, err := os.Create(archivePath)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	entry, err := zw.Create("world_sql_content.content")
	require.NoError(t, err)
	_, err = entry.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	raw, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	return raw
}

// corruptVendorTable adds a recognized vendor table whose columns do not
// match the expected (id, json) layout, so reading it fails mid-import.
func corruptVendorTable(t *testing.T, stagingPath string) {
	t.Helper()

	db, err := sql.Open("sqlite3", stagingPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE DestinyVendorDefinition (key TEXT, blob TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO DestinyVendorDefinition (key, blob) VALUES ('x', 'y')`)
	require.NoError(t, err)
}

// writeGarbageFile writes bytes that are not a SQLite database.
func writeGarbageFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("definitely not sqlite"), 0o600))
}

// newTestContentStore opens a fresh migrated content store.
func newTestContentStore(t *testing.T) (*store.DB, store.ContentRepository) {
	t.Helper()

	conn, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "manifest.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := store.NewDB(conn, logger.Nop())
	require.NoError(t, db.Migrate())

	return db, store.NewContentRepository(db, logger.Nop())
}
