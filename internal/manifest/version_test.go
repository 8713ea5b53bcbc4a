package manifest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osheron/destinykit/internal/logger"
	"github.com/osheron/destinykit/internal/store"
)

func TestVersionTracker_NeedsUpdate(t *testing.T) {
	db, repo := newTestContentStore(t)
	tracker := NewVersionTracker(repo, logger.Nop())
	ctx := context.Background()

	// empty store always wants an update
	needed, err := tracker.NeedsUpdate(ctx, "229977.25.02.11.1800-1")
	require.NoError(t, err)
	assert.True(t, needed)

	require.NoError(t, repo.RecordVersion(ctx, db, "229977.25.02.11.1800-1"))

	tests := []struct {
		name   string
		remote string
		needed bool
	}{
		{name: "identical version", remote: "229977.25.02.11.1800-1", needed: false},
		{name: "newer version", remote: "229978.25.02.18.1900-1", needed: true},
		// versions are opaque strings: any inequality is stale, even one
		// that would compare as older
		{name: "older-looking version", remote: "100000.24.01.01.0000-1", needed: true},
		{name: "empty remote version", remote: "", needed: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			needed, err := tracker.NeedsUpdate(ctx, tt.remote)
			require.NoError(t, err)
			assert.Equal(t, tt.needed, needed)
		})
	}
}

func TestVersionTracker_CurrentVersion(t *testing.T) {
	db, repo := newTestContentStore(t)
	tracker := NewVersionTracker(repo, logger.Nop())
	ctx := context.Background()

	_, err := tracker.CurrentVersion(ctx)
	assert.ErrorIs(t, err, store.ErrNoVersion)

	require.NoError(t, repo.RecordVersion(ctx, db, "v1"))

	version, err := tracker.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v1", version)
}
