package api

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadToFile(t *testing.T) {
	payload := bytes.Repeat([]byte("destiny-content-"), 64*1024) // ~1 MiB

	router := chi.NewRouter()
	router.Get("/bundle.zip", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		w.Write(payload)
	})

	client := newTestClient(t, router)
	dest := filepath.Join(t.TempDir(), "bundle.zip")

	var fractions []float64
	err := client.DownloadToFile(
		context.Background(),
		client.ResolveContentURL("/bundle.zip"),
		dest,
		func(f float64) { fractions = append(fractions, f) },
	)
	require.NoError(t, err)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// progress is monotonically non-decreasing and ends at exactly 1.0
	require.NotEmpty(t, fractions)
	for i := 1; i < len(fractions); i++ {
		assert.GreaterOrEqual(t, fractions[i], fractions[i-1])
	}
	assert.InDelta(t, 1.0, fractions[len(fractions)-1], 1e-9)
	for _, f := range fractions {
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, 1.0)
	}
}

func TestDownloadToFile_NilProgress(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/bundle.zip", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tiny"))
	})

	client := newTestClient(t, router)
	dest := filepath.Join(t.TempDir(), "bundle.zip")

	require.NoError(t, client.DownloadToFile(context.Background(), client.ResolveContentURL("/bundle.zip"), dest, nil))
}

func TestDownloadToFile_HTTPFailure(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/bundle.zip", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})

	client := newTestClient(t, router)
	dest := filepath.Join(t.TempDir(), "bundle.zip")

	err := client.DownloadToFile(context.Background(), client.ResolveContentURL("/bundle.zip"), dest, nil)
	assert.ErrorIs(t, err, ErrDownloadFailed)

	// no partial file is left behind
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDownloadToFile_ContextCancelled(t *testing.T) {
	blocked := make(chan struct{})
	router := chi.NewRouter()
	router.Get("/bundle.zip", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1048576")
		w.Write(bytes.Repeat([]byte("x"), 1024))
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}
		<-blocked
	})
	t.Cleanup(func() { close(blocked) })

	client := newTestClient(t, router)
	dest := filepath.Join(t.TempDir(), "bundle.zip")

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- client.DownloadToFile(ctx, client.ResolveContentURL("/bundle.zip"), dest, nil)
	}()
	cancel()

	err := <-errCh
	assert.ErrorIs(t, err, ErrDownloadFailed)
}
