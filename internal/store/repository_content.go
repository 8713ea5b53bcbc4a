package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/osheron/destinykit/internal/logger"
	"github.com/osheron/destinykit/models"
)

// insertBatchSize caps the number of rows per INSERT statement. SQLite
// limits the number of bound parameters per statement; 500 rows at two
// parameters each stays comfortably below it.
const insertBatchSize = 500

// contentRepository is the SQLite-backed implementation of
// [ContentRepository]. Write methods execute against the Querier supplied by
// the caller (the import transaction); reads use the embedded [*DB]
// connection directly.
type contentRepository struct {
	*DB
	logger *logger.Logger
}

// NewContentRepository constructs a [ContentRepository] backed by the
// provided database connection and logger.
func NewContentRepository(db *DB, logger *logger.Logger) ContentRepository {
	return &contentRepository{
		DB:     db,
		logger: logger,
	}
}

// EnsureTable implements [ContentRepository]. It is a no-op when the table
// and index already exist; existing rows are never touched.
func (r *contentRepository) EnsureTable(ctx context.Context, q Querier, table models.DefinitionTable) error {
	name := table.TableName()

	if _, err := q.ExecContext(ctx, fmt.Sprintf(createDefinitionTable, name)); err != nil {
		return fmt.Errorf("%w: create table %s: %v", ErrExecutingQuery, name, err)
	}

	if _, err := q.ExecContext(ctx, fmt.Sprintf(createDefinitionIndex, definitionIndexName(name), name)); err != nil {
		return fmt.Errorf("%w: create index for %s: %v", ErrExecutingQuery, name, err)
	}

	return nil
}

// ReplaceAll implements [ContentRepository]. The delete and the batched
// inserts are indivisible only within the caller's transaction; ReplaceAll
// itself opens none.
func (r *contentRepository) ReplaceAll(ctx context.Context, q Querier, table models.DefinitionTable, rows []ContentRow) error {
	name := table.TableName()

	if _, err := q.ExecContext(ctx, fmt.Sprintf(deleteAllDefinitions, name)); err != nil {
		return fmt.Errorf("%w: clear table %s: %v", ErrExecutingQuery, name, err)
	}

	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))

		builder := sq.Insert(name).Columns("id", "json")
		for _, row := range rows[start:end] {
			builder = builder.Values(row.ID, row.JSON)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("%w: insert into %s: %v", ErrBuildingSQLQuery, name, err)
		}

		if _, err = q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: insert into %s: %v", ErrExecutingQuery, name, err)
		}
	}

	r.logger.Debug().
		Str("table", name).
		Int("rows", len(rows)).
		Msg("replaced definition table contents")

	return nil
}

// Lookup implements [ContentRepository]. A category whose table has never
// been created reports [ErrDefinitionNotFound], the same as an unknown hash,
// so callers cannot tell "never synced" from "no such definition" here —
// CurrentVersion is the way to ask whether a snapshot is present.
func (r *contentRepository) Lookup(ctx context.Context, table models.DefinitionTable, hash uint32) ([]byte, error) {
	name := table.TableName()

	exists, err := r.definitionTableExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s[%d]", ErrDefinitionNotFound, name, hash)
	}

	query, args, err := sq.Select("json").
		From(name).
		Where(sq.Eq{"id": SignedHash(hash)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: lookup in %s: %v", ErrBuildingSQLQuery, name, err)
	}

	var payload []byte
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s[%d]", ErrDefinitionNotFound, name, hash)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: lookup in %s: %v", ErrExecutingQuery, name, err)
	}

	return payload, nil
}

// CurrentVersion implements [ContentRepository].
func (r *contentRepository) CurrentVersion(ctx context.Context) (string, error) {
	var version string
	err := r.DB.QueryRowContext(ctx, selectManifestVersion).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoVersion
	}
	if err != nil {
		return "", fmt.Errorf("%w: read manifest version: %v", ErrExecutingQuery, err)
	}

	return version, nil
}

// RecordVersion implements [ContentRepository].
func (r *contentRepository) RecordVersion(ctx context.Context, q Querier, version string) error {
	if _, err := q.ExecContext(ctx, upsertManifestVersion, version); err != nil {
		return fmt.Errorf("%w: record manifest version: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (r *contentRepository) definitionTableExists(ctx context.Context, name string) (bool, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, tableExists, name).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: check table %s: %v", ErrExecutingQuery, name, err)
	}

	return count > 0, nil
}
