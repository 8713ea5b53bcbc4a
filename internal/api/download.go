package api

import (
	"context"
	"fmt"
	"io"
	"os"
)

// downloadChunkSize is the copy buffer size used while streaming a content
// bundle to disk; progress is reported once per chunk.
const downloadChunkSize = 256 * 1024

// DownloadToFile streams the content at rawURL into destPath, reporting
// progress as a fraction in [0.0, 1.0]. Fractions are monotonically
// non-decreasing and end with exactly 1.0 on success; after a failure no
// further callbacks are made. When the server does not announce a content
// length, a single 1.0 callback is issued at completion.
//
// onProgress may be nil. All failures wrap [ErrDownloadFailed]. The caller
// owns destPath and deletes it when done; on failure DownloadToFile removes
// the partial file itself.
func (c *Client) DownloadToFile(ctx context.Context, rawURL, destPath string, onProgress func(fraction float64)) error {
	resp, err := c.download.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("%w: http %d fetching %s", ErrDownloadFailed, resp.StatusCode(), rawURL)
	}

	dest, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrDownloadFailed, destPath, err)
	}

	total := resp.RawResponse.ContentLength
	written, err := copyWithProgress(dest, body, total, onProgress)
	if closeErr := dest.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(destPath)
		return fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	if onProgress != nil && (total <= 0 || written < total) {
		onProgress(1.0)
	}

	c.logger.Debug().
		Str("url", rawURL).
		Int64("bytes", written).
		Msg("downloaded content bundle")

	return nil
}

func copyWithProgress(dst io.Writer, src io.Reader, total int64, onProgress func(float64)) (int64, error) {
	buf := make([]byte, downloadChunkSize)
	var written int64

	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			if _, writeErr := dst.Write(buf[:n]); writeErr != nil {
				return written, writeErr
			}
			written += int64(n)
			if onProgress != nil && total > 0 {
				fraction := float64(written) / float64(total)
				if fraction > 1.0 {
					fraction = 1.0
				}
				onProgress(fraction)
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}
