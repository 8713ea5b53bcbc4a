// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 destinykit contributors

// Package manifest implements the manifest synchronization subsystem: it
// keeps a local SQLite cache of the versioned Destiny world-content database
// and serves point lookups over it.
package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/osheron/destinykit/internal/logger"
	"github.com/osheron/destinykit/internal/store"
	"github.com/osheron/destinykit/models"
)

// ProgressFunc receives download progress as a fraction in [0.0, 1.0].
// Values are monotonically non-decreasing and end with 1.0 on success; after
// a failure no further calls are made.
type ProgressFunc func(fraction float64)

// Downloader is the transport dependency of the sync pipeline, satisfied by
// the api package's client.
type Downloader interface {
	// ResolveContentURL turns a manifest content path into an absolute URL.
	ResolveContentURL(path string) string

	// DownloadToFile streams the content at url into destPath, reporting
	// progress. On failure no partial file remains at destPath.
	DownloadToFile(ctx context.Context, url, destPath string, onProgress func(fraction float64)) error
}

// Service orchestrates one manifest sync: staleness check, download, unpack,
// import. A failed sync leaves the previously imported content fully intact
// and queryable.
//
// Service permits one sync at a time; concurrent reads (Lookup,
// CurrentVersion) during a sync observe either the pre- or post-sync state
// in full, guaranteed by the single import transaction.
type Service struct {
	downloader Downloader
	unpacker   *Unpacker
	importer   *Importer
	tracker    *VersionTracker
	repo       store.ContentRepository
	tempDir    string
	logger     *logger.Logger

	mu      sync.Mutex
	syncing bool
}

// NewService wires a [*Service] over an opened content store.
func NewService(db *store.DB, repo store.ContentRepository, downloader Downloader, tempDir string, log *logger.Logger) *Service {
	log = logger.OrNop(log)
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	return &Service{
		downloader: downloader,
		unpacker:   NewUnpacker(tempDir, log),
		importer:   NewImporter(db, repo, log),
		tracker:    NewVersionTracker(repo, log),
		repo:       repo,
		tempDir:    tempDir,
		logger:     log,
	}
}

// NeedsUpdate reports whether the remotely published snapshot differs from
// the locally imported one. A store that has never imported always reports
// true.
func (s *Service) NeedsUpdate(ctx context.Context, descriptor models.ManifestDescriptor) (bool, error) {
	return s.tracker.NeedsUpdate(ctx, descriptor.Version)
}

// CurrentVersion returns the version of the locally imported snapshot, or
// [store.ErrNoVersion] when nothing has been imported yet.
func (s *Service) CurrentVersion(ctx context.Context) (string, error) {
	return s.tracker.CurrentVersion(ctx)
}

// Lookup returns the raw payload of one definition. See
// [store.ContentRepository.Lookup].
func (s *Service) Lookup(ctx context.Context, table models.DefinitionTable, hash uint32) ([]byte, error) {
	return s.repo.Lookup(ctx, table, hash)
}

// Sync drives one full synchronization attempt for the given locale:
// download → unpack → import. Temporary files are cleaned up best-effort on
// every exit path; cleanup failures are logged, never surfaced, so they can
// neither mask a successful import nor double-fault a failed one.
//
// Sync performs no staleness check itself — callers gate on [Service.NeedsUpdate]
// — and never retries; a failed sync leaves the old snapshot current.
func (s *Service) Sync(ctx context.Context, descriptor models.ManifestDescriptor, locale string, onProgress ProgressFunc) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	contentPath, ok := descriptor.MobileWorldContentPaths[locale]
	if !ok {
		return fmt.Errorf("%w: %q (version %s)", ErrLocaleUnavailable, locale, descriptor.Version)
	}

	url := s.downloader.ResolveContentURL(contentPath)
	archivePath := filepath.Join(s.tempDir, uuid.NewString()+".zip")
	defer s.removeTemp(archivePath)

	s.logger.Info().
		Str("version", descriptor.Version).
		Str("locale", locale).
		Str("url", url).
		Msg("downloading manifest content bundle")

	if err := s.downloader.DownloadToFile(ctx, url, archivePath, onProgress); err != nil {
		return err
	}

	stagingPath, err := s.unpacker.Unpack(archivePath)
	if err != nil {
		return err
	}
	defer s.removeTemp(stagingPath)

	if err := s.importer.ImportFrom(ctx, stagingPath, descriptor.Version); err != nil {
		return err
	}

	s.logger.Info().
		Str("version", descriptor.Version).
		Str("locale", locale).
		Msg("manifest sync complete")

	return nil
}

func (s *Service) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.syncing {
		return ErrSyncInProgress
	}
	s.syncing = true
	return nil
}

func (s *Service) release() {
	s.mu.Lock()
	s.syncing = false
	s.mu.Unlock()
}

// removeTemp deletes a temporary file best-effort.
func (s *Service) removeTemp(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn().Err(err).Str("path", path).Msg("failed to remove temporary file")
	}
}
