package manifest

import (
	"context"
	"errors"
	"fmt"

	"github.com/osheron/destinykit/internal/logger"
	"github.com/osheron/destinykit/internal/store"
)

// VersionTracker answers staleness questions about the locally imported
// snapshot. Recording a version is not exposed here: it happens only as the
// final write of the import transaction, driven by the [Importer].
type VersionTracker struct {
	repo   store.ContentRepository
	logger *logger.Logger
}

// NewVersionTracker constructs a [*VersionTracker] over the content store.
func NewVersionTracker(repo store.ContentRepository, log *logger.Logger) *VersionTracker {
	return &VersionTracker{
		repo:   repo,
		logger: logger.OrNop(log),
	}
}

// NeedsUpdate reports whether remoteVersion differs from the recorded local
// version. A store with no recorded version always needs an update.
//
// Comparison is pure string inequality: upstream version stamps are opaque
// build identifiers, so a server-side rollback also triggers a re-import.
func (t *VersionTracker) NeedsUpdate(ctx context.Context, remoteVersion string) (bool, error) {
	current, err := t.repo.CurrentVersion(ctx)
	if errors.Is(err, store.ErrNoVersion) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read current version: %w", err)
	}

	return current != remoteVersion, nil
}

// CurrentVersion returns the recorded snapshot version, or
// [store.ErrNoVersion] when nothing has been imported yet.
func (t *VersionTracker) CurrentVersion(ctx context.Context) (string, error) {
	return t.repo.CurrentVersion(ctx)
}
