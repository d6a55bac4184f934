package download

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jmagar/jupiter-dl/internal/api"
	"github.com/jmagar/jupiter-dl/internal/model"
	"github.com/jmagar/jupiter-dl/internal/ui"
)

// Options controls a single file download.
type Options struct {
	DryRun bool
	Logger *slog.Logger
}

// Result describes a finished (or simulated) download.
type Result struct {
	URL      string
	FileName string
	Size     int64 // announced Content-Length, -1 when unknown
	Written  int64
	DryRun   bool
}

// NormalizeURL turns a protocol-relative reference ("//host/path") into an
// https URL. Any other reference is returned unchanged.
func NormalizeURL(ref string) string {
	if strings.HasPrefix(ref, "//") {
		return "https:" + ref
	}
	return ref
}

// UnsafeFileNameFromURL returns everything after the last "/" of fileURL.
//
// The name is NOT sanitized: query strings are kept and a crafted URL can
// name an arbitrary file in the working directory.
func UnsafeFileNameFromURL(fileURL string) string {
	return fileURL[strings.LastIndex(fileURL, "/")+1:]
}

// File downloads rawURL into the working directory under the URL's trailing
// path segment. In dry-run mode only the response headers are consulted.
func File(ctx context.Context, rawURL string, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	fileURL := NormalizeURL(rawURL)
	fileName := UnsafeFileNameFromURL(fileURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, err
	}
	do, err := api.Do(req, "media")
	if err != nil {
		return nil, err
	}
	defer do.Body.Close()
	if err := api.CheckStatus(do); err != nil {
		return nil, err
	}

	res := &Result{
		URL:      fileURL,
		FileName: fileName,
		Size:     do.ContentLength,
		DryRun:   opts.DryRun,
	}
	if opts.DryRun {
		log.Info("** DRY RUN ** Would download", "file", fileName, "size", sizeLabel(res.Size))
		return res, nil
	}

	log.Info("Downloading", ui.StyleDownload, "file", fileName, "size", sizeLabel(res.Size))
	f, err := os.Create(fileName)
	if err != nil {
		return res, err
	}
	defer f.Close()

	res.Written, err = copyChunks(f, do.Body, func(done int64) {
		log.Debug(fmt.Sprintf("%d/%d", done, res.Size), "file", fileName)
	})
	if err != nil {
		return res, fmt.Errorf("download '%s': %w", fileName, err)
	}
	if err := f.Close(); err != nil {
		return res, err
	}
	log.Info("Finished downloading", ui.StyleSuccess, "file", fileName, "size", humanize.Bytes(uint64(res.Written)))
	return res, nil
}

// copyChunks copies src to dst in model.ChunkSize pieces, reporting the
// cumulative byte count after each one. Only io.EOF from src ends the copy;
// any other read error, including a truncated body, is returned.
func copyChunks(dst io.Writer, src io.Reader, onChunk func(done int64)) (int64, error) {
	buf := make([]byte, model.ChunkSize)
	var done int64
	for {
		n, err := fillChunk(src, buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return done, werr
			}
			done += int64(n)
			onChunk(done)
		}
		if err == io.EOF {
			return done, nil
		}
		if err != nil {
			return done, err
		}
	}
}

// fillChunk reads until buf is full or src returns an error.
func fillChunk(src io.Reader, buf []byte) (int, error) {
	var n int
	for n < len(buf) {
		m, err := src.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func sizeLabel(size int64) string {
	if size < 0 {
		return model.UnknownSizeLabel
	}
	return fmt.Sprintf("%s (%d bytes)", humanize.Bytes(uint64(size)), size)
}
