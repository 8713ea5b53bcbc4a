package manifest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/osheron/destinykit/internal/api"
	"github.com/osheron/destinykit/internal/config"
	"github.com/osheron/destinykit/internal/logger"
	"github.com/osheron/destinykit/internal/mock"
	"github.com/osheron/destinykit/internal/store"
	"github.com/osheron/destinykit/models"
)

type testEnv struct {
	service *Service
	repo    store.ContentRepository
	tempDir string
}

// newTestEnv wires a Service over a fresh store, downloading through a real
// api.Client pointed at the given handler.
func newTestEnv(t *testing.T, handler http.Handler) *testEnv {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := api.NewClient(
		config.API{
			BaseURL:         srv.URL,
			WebBaseURL:      srv.URL,
			Key:             "test-api-key",
			RequestTimeout:  5 * time.Second,
			DownloadTimeout: 5 * time.Second,
		},
		config.OAuth{},
		logger.Nop(),
	)
	require.NoError(t, err)

	db, repo := newTestContentStore(t)
	tempDir := t.TempDir()

	return &testEnv{
		service: NewService(db, repo, client, tempDir, logger.Nop()),
		repo:    repo,
		tempDir: tempDir,
	}
}

func serveBundle(t *testing.T, bundle []byte) http.Handler {
	t.Helper()
	router := chi.NewRouter()
	router.Get("/common/destiny2_content/sqlite/en/world.content", func(w http.ResponseWriter, r *http.Request) {
		w.Write(bundle)
	})
	return router
}

func testDescriptor(version string) models.ManifestDescriptor {
	return models.ManifestDescriptor{
		Version: version,
		MobileWorldContentPaths: map[string]string{
			"en": "/common/destiny2_content/sqlite/en/world.content",
		},
	}
}

func requireEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary files left behind in %s", dir)
}

func TestNeedsUpdate_FreshStore(t *testing.T) {
	env := newTestEnv(t, chi.NewRouter())

	needed, err := env.service.NeedsUpdate(context.Background(), testDescriptor("any-version"))
	require.NoError(t, err)
	assert.True(t, needed)
}

func TestSync_FullPipeline(t *testing.T) {
	staging := buildStagingDB(t, map[string][]stagingRow{
		"DestinyInventoryItemDefinition": {
			{id: 12345, json: `{"displayProperties":{"name":"Test Item"},"hash":12345}`},
		},
		"DestinyClassDefinition": {
			{id: 671679327, json: `{"displayProperties":{"name":"Hunter"},"hash":671679327,"classType":1}`},
		},
		"UnknownWhateverDefinition": {
			{id: 1, json: `{}`},
		},
	})
	env := newTestEnv(t, serveBundle(t, buildBundle(t, staging)))
	ctx := context.Background()
	descriptor := testDescriptor("229977.25.02.11.1800-1")

	var fractions []float64
	require.NoError(t, env.service.Sync(ctx, descriptor, "en", func(f float64) {
		fractions = append(fractions, f)
	}))

	// the snapshot is now current
	needed, err := env.service.NeedsUpdate(ctx, descriptor)
	require.NoError(t, err)
	assert.False(t, needed)

	version, err := env.service.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, descriptor.Version, version)

	// typed round-trip through the generic lookup
	item, err := Lookup[models.InventoryItemDefinition](ctx, env.service, models.InventoryItemTable, 12345)
	require.NoError(t, err)
	assert.Equal(t, "Test Item", item.DisplayProperties.Name)

	class, err := Lookup[models.ClassDefinition](ctx, env.service, models.ClassTable, 671679327)
	require.NoError(t, err)
	assert.Equal(t, "Hunter", class.DisplayProperties.Name)

	// progress ended at 1.0 and never decreased
	require.NotEmpty(t, fractions)
	assert.InDelta(t, 1.0, fractions[len(fractions)-1], 1e-9)
	for i := 1; i < len(fractions); i++ {
		assert.GreaterOrEqual(t, fractions[i], fractions[i-1])
	}

	// archive and staging database were cleaned up
	requireEmptyDir(t, env.tempDir)
}

func TestSync_Idempotent(t *testing.T) {
	staging := buildStagingDB(t, map[string][]stagingRow{
		"DestinyStatDefinition": {{id: 42, json: `{"displayProperties":{"name":"Recovery"}}`}},
	})
	env := newTestEnv(t, serveBundle(t, buildBundle(t, staging)))
	ctx := context.Background()
	descriptor := testDescriptor("v1")

	require.NoError(t, env.service.Sync(ctx, descriptor, "en", nil))
	require.NoError(t, env.service.Sync(ctx, descriptor, "en", nil))

	stat, err := Lookup[models.StatDefinition](ctx, env.service, models.StatTable, 42)
	require.NoError(t, err)
	assert.Equal(t, "Recovery", stat.DisplayProperties.Name)

	version, err := env.service.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v1", version)
}

func TestSync_LocaleUnavailable(t *testing.T) {
	env := newTestEnv(t, chi.NewRouter())
	ctx := context.Background()

	descriptor := models.ManifestDescriptor{
		Version:                 "v1",
		MobileWorldContentPaths: map[string]string{"en": "/bundle"},
	}

	err := env.service.Sync(ctx, descriptor, "fr", nil)
	assert.ErrorIs(t, err, ErrLocaleUnavailable)

	// store untouched
	_, err = env.service.CurrentVersion(ctx)
	assert.ErrorIs(t, err, store.ErrNoVersion)
}

func TestSync_DownloadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, repo := newTestContentStore(t)
	tempDir := t.TempDir()

	downloader := mock.NewMockDownloader(ctrl)
	downloader.EXPECT().ResolveContentURL("/bundle").Return("https://cdn.example.net/bundle")
	downloader.EXPECT().
		DownloadToFile(gomock.Any(), "https://cdn.example.net/bundle", gomock.Any(), gomock.Any()).
		Return(api.ErrDownloadFailed)

	service := NewService(db, repo, downloader, tempDir, logger.Nop())

	descriptor := models.ManifestDescriptor{
		Version:                 "v1",
		MobileWorldContentPaths: map[string]string{"en": "/bundle"},
	}

	err := service.Sync(context.Background(), descriptor, "en", nil)
	assert.ErrorIs(t, err, api.ErrDownloadFailed)

	// store untouched, temp dir clean
	_, err = repo.CurrentVersion(context.Background())
	assert.ErrorIs(t, err, store.ErrNoVersion)
	requireEmptyDir(t, tempDir)
}

func TestSync_CorruptArchive(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/common/destiny2_content/sqlite/en/world.content", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a zip archive"))
	})
	env := newTestEnv(t, router)
	ctx := context.Background()

	err := env.service.Sync(ctx, testDescriptor("v1"), "en", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLocaleUnavailable)

	_, err = env.service.CurrentVersion(ctx)
	assert.ErrorIs(t, err, store.ErrNoVersion)
	requireEmptyDir(t, env.tempDir)
}

func TestSync_FailedSyncKeepsPriorSnapshot(t *testing.T) {
	staging := buildStagingDB(t, map[string][]stagingRow{
		"DestinyPlaceDefinition": {{id: 1, json: `{"displayProperties":{"name":"The Tower"}}`}},
	})

	bundle := buildBundle(t, staging)
	failNow := false
	router := chi.NewRouter()
	router.Get("/common/destiny2_content/sqlite/en/world.content", func(w http.ResponseWriter, r *http.Request) {
		if failNow {
			http.Error(w, "cdn outage", http.StatusServiceUnavailable)
			return
		}
		w.Write(bundle)
	})

	env := newTestEnv(t, router)
	ctx := context.Background()

	require.NoError(t, env.service.Sync(ctx, testDescriptor("v1"), "en", nil))

	failNow = true
	err := env.service.Sync(ctx, testDescriptor("v2"), "en", nil)
	require.ErrorIs(t, err, api.ErrDownloadFailed)

	// the old snapshot remains current and queryable
	version, err := env.service.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v1", version)

	payload, err := env.service.Lookup(ctx, models.PlaceTable, 1)
	require.NoError(t, err)
	assert.JSONEq(t, `{"displayProperties":{"name":"The Tower"}}`, string(payload))
}

func TestSync_OneAtATime(t *testing.T) {
	env := newTestEnv(t, chi.NewRouter())

	require.NoError(t, env.service.acquire())
	assert.ErrorIs(t, env.service.acquire(), ErrSyncInProgress)

	env.service.release()
	assert.NoError(t, env.service.acquire())
	env.service.release()
}

func TestSync_ProgressNotCalledAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, repo := newTestContentStore(t)

	downloader := mock.NewMockDownloader(ctrl)
	downloader.EXPECT().ResolveContentURL(gomock.Any()).Return("https://cdn.example.net/bundle")
	downloader.EXPECT().
		DownloadToFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, onProgress func(float64)) error {
			onProgress(0.25)
			return errors.New("connection reset")
		})

	service := NewService(db, repo, downloader, t.TempDir(), logger.Nop())

	var fractions []float64
	err := service.Sync(context.Background(), testDescriptor("v1"), "en", func(f float64) {
		fractions = append(fractions, f)
	})
	require.Error(t, err)

	// nothing after the point of failure, in particular no trailing 1.0
	assert.Equal(t, []float64{0.25}, fractions)
}
