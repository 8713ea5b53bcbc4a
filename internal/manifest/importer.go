// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 destinykit contributors

package manifest

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/osheron/destinykit/internal/logger"
	"github.com/osheron/destinykit/internal/store"
	"github.com/osheron/destinykit/models"
)

// Importer copies recognized definition tables from an extracted staging
// database into the content store. One call is one transaction: either every
// matched category is replaced and the version record updated, or nothing
// changes at all.
type Importer struct {
	db     *store.DB
	repo   store.ContentRepository
	logger *logger.Logger
}

// NewImporter constructs an [*Importer] writing into db through repo.
func NewImporter(db *store.DB, repo store.ContentRepository, log *logger.Logger) *Importer {
	return &Importer{
		db:     db,
		repo:   repo,
		logger: logger.OrNop(log),
	}
}

// ImportFrom walks the staging database at stagingPath and replaces the
// contents of every recognized definition table in the content store,
// recording version as the snapshot identifier. Tables that do not follow
// the Destiny<Category>Definition convention, or whose category this build
// does not know, are skipped silently so unknown upstream additions never
// break an import.
//
// All failures wrap [ErrImportFailed] and leave the store untouched.
// ImportFrom never retries; retry policy belongs to the caller.
func (i *Importer) ImportFrom(ctx context.Context, stagingPath, version string) error {
	staging, err := sql.Open("sqlite3", "file:"+stagingPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("%w: open staging database: %v", ErrImportFailed, err)
	}
	defer staging.Close()

	tables, err := i.matchStagingTables(ctx, staging)
	if err != nil {
		return err
	}

	tx, err := i.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", ErrImportFailed, err)
	}
	defer tx.Rollback()

	for _, table := range tables {
		if err := i.importTable(ctx, tx, staging, table); err != nil {
			return err
		}
	}

	if err := i.repo.RecordVersion(ctx, tx, version); err != nil {
		return fmt.Errorf("%w: %v", ErrImportFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrImportFailed, err)
	}

	i.logger.Info().
		Str("version", version).
		Int("tables", len(tables)).
		Msg("imported manifest snapshot")

	return nil
}

// matchStagingTables enumerates the staging database and returns the
// recognized categories in deterministic (sorted) order.
func (i *Importer) matchStagingTables(ctx context.Context, staging *sql.DB) ([]models.DefinitionTable, error) {
	rows, err := staging.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table'`)
	if err != nil {
		return nil, fmt.Errorf("%w: enumerate staging tables: %v", ErrImportFailed, err)
	}
	defer rows.Close()

	var tables []models.DefinitionTable
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: scan staging table name: %v", ErrImportFailed, err)
		}

		table, ok := models.ParseDefinitionTable(name)
		if !ok {
			i.logger.Debug().Str("table", name).Msg("skipping unrecognized staging table")
			continue
		}
		tables = append(tables, table)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate staging tables: %v", ErrImportFailed, err)
	}

	sort.Slice(tables, func(a, b int) bool { return tables[a] < tables[b] })

	return tables, nil
}

func (i *Importer) importTable(ctx context.Context, tx *sql.Tx, staging *sql.DB, table models.DefinitionTable) error {
	if err := i.repo.EnsureTable(ctx, tx, table); err != nil {
		return fmt.Errorf("%w: %v", ErrImportFailed, err)
	}

	contentRows, err := readStagingRows(ctx, staging, table)
	if err != nil {
		return err
	}

	if err := i.repo.ReplaceAll(ctx, tx, table, contentRows); err != nil {
		return fmt.Errorf("%w: %v", ErrImportFailed, err)
	}

	return nil
}

func readStagingRows(ctx context.Context, staging *sql.DB, table models.DefinitionTable) ([]store.ContentRow, error) {
	name := table.TableName()

	rows, err := staging.QueryContext(ctx, fmt.Sprintf(`SELECT id, json FROM %q`, name))
	if err != nil {
		return nil, fmt.Errorf("%w: read staging table %s: %v", ErrImportFailed, name, err)
	}
	defer rows.Close()

	var contentRows []store.ContentRow
	for rows.Next() {
		var row store.ContentRow
		if err := rows.Scan(&row.ID, &row.JSON); err != nil {
			return nil, fmt.Errorf("%w: scan staging row of %s: %v", ErrImportFailed, name, err)
		}
		contentRows = append(contentRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate staging table %s: %v", ErrImportFailed, name, err)
	}

	return contentRows, nil
}
