package store

import (
	"database/sql"

	"github.com/osheron/destinykit/internal/logger"
	"github.com/osheron/destinykit/migrations"
)

// DB wraps the content store's SQLite connection. Embedding *sql.DB exposes
// the full database/sql API to the repositories built on top.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewDB wraps an already opened connection. Most callers use
// [NewConnectSQLite]; NewDB exists for embedding applications that manage
// the connection lifecycle themselves.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:     conn,
		logger: logger.OrNop(log),
	}
}

// Migrate applies the fixed part of the content store schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
