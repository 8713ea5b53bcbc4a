package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"database/sql"

	"github.com/osheron/destinykit/internal/config"
	"github.com/osheron/destinykit/internal/logger"
)

// NewConnectSQLite opens (creating if necessary) the SQLite content store at
// cfg.Path, verifies the connection with a ping, and returns the wrapped
// [*DB]. All failures wrap [ErrStoreUnavailable].
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.Path); err != nil {
		log.Err(err).Str("path", cfg.Path).Msg("error creating database file")
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	conn, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		log.Err(err).Str("path", cfg.Path).Msg("error connecting database")
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("path", cfg.Path).Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	log.Debug().Str("path", cfg.Path).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
