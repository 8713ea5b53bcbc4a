// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 destinykit contributors

package store

import "fmt"

// Definition tables mirror the layout of the upstream world-content
// database: one INTEGER key (the signed storage form of a uint32 content
// hash) and one opaque JSON payload. Table names are always derived from the
// closed [models.DefinitionTable] set, never from user input.
const (
	createDefinitionTable = `
		CREATE TABLE IF NOT EXISTS %q (
			id   INTEGER PRIMARY KEY NOT NULL,
			json BLOB NOT NULL
		);`

	createDefinitionIndex = `
		CREATE INDEX IF NOT EXISTS %q ON %q (id);`

	deleteAllDefinitions = `DELETE FROM %q;`

	upsertManifestVersion = `
		INSERT INTO manifest_version (id, version, imported_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			version     = excluded.version,
			imported_at = excluded.imported_at;`

	selectManifestVersion = `SELECT version FROM manifest_version WHERE id = 1;`

	tableExists = `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?;`
)

// SignedHash converts a 32-bit unsigned content hash into the signed form
// used as the INTEGER key, matching how the upstream mobile databases store
// hashes above math.MaxInt32 as negative values.
func SignedHash(hash uint32) int64 {
	return int64(int32(hash))
}

// UnsignedHash is the inverse of [SignedHash].
func UnsignedHash(id int64) uint32 {
	return uint32(int32(id))
}

func definitionIndexName(tableName string) string {
	return fmt.Sprintf("idx_%s_id", tableName)
}
