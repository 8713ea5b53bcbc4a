package store

import (
	"context"
	"database/sql"

	"github.com/osheron/destinykit/models"
)

// Querier is the subset of database/sql operations the content repository
// needs. Both *sql.DB and *sql.Tx satisfy it, which is how the importer runs
// every write of one import inside a single transaction while reads keep
// using the plain connection.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ContentRow is one definition entry: the signed storage form of the 32-bit
// content hash plus the serialized JSON payload.
type ContentRow struct {
	ID   int64
	JSON []byte
}

// ContentRepository is the persistence contract of the manifest content
// store: per-category definition tables plus the single-row version record.
//
// Write methods (EnsureTable, ReplaceAll, RecordVersion) take an explicit
// [Querier] so the caller controls the transaction boundary; read methods
// run on the store's own connection and may be called concurrently with an
// in-flight import, observing either the pre- or post-import state in full.
type ContentRepository interface {
	// EnsureTable idempotently creates the destination table and its key
	// index for the given category. Existing data is never touched.
	EnsureTable(ctx context.Context, q Querier, table models.DefinitionTable) error

	// ReplaceAll deletes every existing row of the category's table and
	// inserts rows. Atomicity is the caller's transaction's.
	ReplaceAll(ctx context.Context, q Querier, table models.DefinitionTable, rows []ContentRow) error

	// Lookup returns the stored payload for hash in the given category, or
	// [ErrDefinitionNotFound] if the category has never been populated or
	// the hash is unknown.
	Lookup(ctx context.Context, table models.DefinitionTable, hash uint32) ([]byte, error)

	// CurrentVersion returns the recorded snapshot version, or
	// [ErrNoVersion] when nothing has been imported yet.
	CurrentVersion(ctx context.Context) (string, error)

	// RecordVersion overwrites the single version record. Must only be
	// called inside the import transaction, as its final write.
	RecordVersion(ctx context.Context, q Querier, version string) error
}
