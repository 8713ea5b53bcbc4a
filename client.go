// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 destinykit contributors

// Package destinykit is a client SDK for the Bungie.net platform API. Its
// core is the manifest subsystem: a locally synced SQLite snapshot of the
// Destiny world-content database, queried by definition category and hash.
package destinykit

import (
	"context"
	"fmt"

	"github.com/osheron/destinykit/internal/api"
	"github.com/osheron/destinykit/internal/config"
	"github.com/osheron/destinykit/internal/logger"
	"github.com/osheron/destinykit/internal/manifest"
	"github.com/osheron/destinykit/internal/store"
	"github.com/osheron/destinykit/models"
)

// Client is the assembled SDK: HTTP transport, local content store, and the
// manifest sync service, wired from one configuration.
type Client struct {
	cfg      *config.ClientConfig
	api      *api.Client
	db       *store.DB
	manifest *manifest.Service
	logger   *logger.Logger
}

// New builds a ready-to-use [*Client]: it opens (creating if necessary) the
// content store at cfg.Storage.DB.Path, applies schema migrations, and wires
// the API client and manifest service on top. Close must be called when the
// client is no longer needed.
func New(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*Client, error) {
	log = logger.OrNop(log)

	apiClient, err := api.NewClient(cfg.API, cfg.OAuth, log)
	if err != nil {
		return nil, fmt.Errorf("building api client: %w", err)
	}

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	repo := store.NewContentRepository(db, log)

	return &Client{
		cfg:      cfg,
		api:      apiClient,
		db:       db,
		manifest: manifest.NewService(db, repo, apiClient, cfg.Storage.TempDir, log),
		logger:   log,
	}, nil
}

// API exposes the underlying platform API client for direct endpoint calls.
func (c *Client) API() *api.Client {
	return c.api
}

// Manifest exposes the manifest sync service.
func (c *Client) Manifest() *manifest.Service {
	return c.manifest
}

// SyncManifest fetches the current manifest descriptor, compares it against
// the locally imported snapshot, and runs a full sync when they differ. It
// reports whether a sync was performed. The locale comes from
// cfg.Manifest.Locale; onProgress may be nil.
func (c *Client) SyncManifest(ctx context.Context, onProgress manifest.ProgressFunc) (bool, error) {
	descriptor, err := c.api.GetDestinyManifest(ctx)
	if err != nil {
		return false, err
	}

	needed, err := c.manifest.NeedsUpdate(ctx, descriptor)
	if err != nil {
		return false, err
	}
	if !needed {
		c.logger.Debug().Str("version", descriptor.Version).Msg("manifest already current")
		return false, nil
	}

	if err := c.manifest.Sync(ctx, descriptor, c.cfg.Manifest.Locale, onProgress); err != nil {
		return false, err
	}
	return true, nil
}

// Lookup returns the raw JSON payload of one definition from the local
// snapshot. For typed decoding use [manifest.Lookup] with c.Manifest().
func (c *Client) Lookup(ctx context.Context, table models.DefinitionTable, hash uint32) ([]byte, error) {
	return c.manifest.Lookup(ctx, table, hash)
}

// Close releases the content store connection.
func (c *Client) Close() error {
	return c.db.Close()
}
