// Package download implements the Jupiter download pipeline: resolving a page
// URL to its media entries and streaming each file to the working directory.
package download

import (
	"context"
	"io"
	"log/slog"

	"github.com/grafov/m3u8"
	"github.com/jmagar/jupiter-dl/internal/api"
	"github.com/jmagar/jupiter-dl/internal/model"
)

// Deps holds the collaborators Content calls into. Tests swap individual
// functions to observe the pipeline without a network.
type Deps struct {
	Logger *slog.Logger

	// ExtractContentID parses the content ID out of a page URL.
	ExtractContentID func(rawURL string) (string, error)

	// GetContentPageData fetches page metadata for a content ID.
	GetContentPageData func(ctx context.Context, contentID string) (*model.PageData, error)

	// DownloadFile fetches one file reference.
	DownloadFile func(ctx context.Context, rawURL string, opts Options) (*Result, error)

	// GetHLSVariants lists the renditions of an HLS master playlist.
	GetHLSVariants func(ctx context.Context, manifestURL string) ([]*m3u8.Variant, error)
}

// NewDeps wires the production implementations.
func NewDeps(logger *slog.Logger) *Deps {
	return &Deps{
		Logger:             logger,
		ExtractContentID:   api.ExtractContentID,
		GetContentPageData: api.GetContentPageData,
		DownloadFile:       File,
		GetHLSVariants:     api.GetHLSVariants,
	}
}

func (d *Deps) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
