package manifest

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/osheron/destinykit/internal/logger"
)

// Unpacker extracts the world-content database out of a downloaded bundle.
// Bungie publishes the bundle as a zip archive holding a single SQLite file.
type Unpacker struct {
	tempDir string
	logger  *logger.Logger
}

// NewUnpacker constructs an [*Unpacker] that extracts into tempDir (empty
// means the system temp directory).
func NewUnpacker(tempDir string, log *logger.Logger) *Unpacker {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Unpacker{
		tempDir: tempDir,
		logger:  logger.OrNop(log),
	}
}

// Unpack extracts the single database entry of the archive at archivePath to
// a fresh uniquely named file and returns that file's path. The caller owns
// deletion of both the archive and the extracted file.
//
// An archive with no file entries fails with [ErrNoContentEntry]; the design
// assumes exactly one meaningful entry, so the first file entry wins.
func (u *Unpacker) Unpack(archivePath string) (string, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", fmt.Errorf("open archive %s: %w", archivePath, err)
	}
	defer reader.Close()

	var entry *zip.File
	for _, f := range reader.File {
		if f.FileInfo().IsDir() {
			continue
		}
		entry = f
		break
	}
	if entry == nil {
		return "", fmt.Errorf("%w: %s", ErrNoContentEntry, archivePath)
	}

	extractedPath := filepath.Join(u.tempDir, uuid.NewString()+".content")
	if err := extractEntry(entry, extractedPath); err != nil {
		return "", err
	}

	u.logger.Debug().
		Str("archive", archivePath).
		Str("entry", entry.Name).
		Str("extracted", extractedPath).
		Msg("unpacked content database")

	return extractedPath, nil
}

func extractEntry(entry *zip.File, destPath string) error {
	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("open archive entry %s: %w", entry.Name, err)
	}
	defer src.Close()

	dest, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create extracted file: %w", err)
	}

	_, err = io.Copy(dest, src)
	if closeErr := dest.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(destPath)
		return fmt.Errorf("extract archive entry %s: %w", entry.Name, err)
	}

	return nil
}
