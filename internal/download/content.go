package download

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jmagar/jupiter-dl/internal/model"
	"github.com/jmagar/jupiter-dl/internal/ui"
)

// Content runs the whole pipeline for cfg.URL: resolve the content ID, fetch
// its page data and download every media file (and subtitles when
// cfg.DownloadSubs is set). The first failure aborts the run.
func Content(ctx context.Context, cfg *model.Config, deps *Deps) error {
	log := deps.logger()

	log.Info("Will extract content ID from URL.", "url", cfg.URL)
	contentID, err := deps.ExtractContentID(cfg.URL)
	if err != nil {
		return err
	}
	log.Info("Extracted content ID from URL.", "contentID", contentID)

	log.Info("Going to fetch data about the content.")
	page, err := deps.GetContentPageData(ctx, contentID)
	if err != nil {
		return err
	}
	log.Debug("Received page data.", "data", string(page.Raw))

	mainContent, err := page.MainContent()
	if err != nil {
		return fmt.Errorf("decode mainContent for content ID '%s': %w", contentID, err)
	}
	if mainContent == nil {
		return fmt.Errorf("%w: page data for content ID '%s' has no mainContent", model.ErrPageDataNotFound, contentID)
	}
	log.Info(fmt.Sprintf("Received '%s' data for '%s'.", mainContent.Type, mainContent.Title()))

	opts := Options{DryRun: cfg.DryRun, Logger: log}
	files := 0
	for i, media := range mainContent.Medias {
		log.Debug("Media entry.", "index", i, "file", media.Src.File, "subtitles", len(media.Subtitles))
		if cfg.HLSInfo {
			logHLSVariants(ctx, media, deps)
		}

		if _, err := deps.DownloadFile(ctx, media.Src.File, opts); err != nil {
			return err
		}
		files++

		if !cfg.DownloadSubs {
			continue
		}
		for _, sub := range media.Subtitles {
			if _, err := deps.DownloadFile(ctx, sub.Src, opts); err != nil {
				return err
			}
			files++
		}
	}

	if cfg.DryRun {
		log.Info("Dry run complete.", "files", files)
	} else {
		log.Info("All downloads complete.", ui.StyleSuccess, "files", files)
	}
	return nil
}

// logHLSVariants reports the renditions advertised by a media entry's HLS
// manifest. Failures are logged as warnings; nothing is downloaded.
func logHLSVariants(ctx context.Context, media model.Media, deps *Deps) {
	log := deps.logger()
	if media.Src.HLS == "" {
		log.Debug("Media entry has no HLS manifest.", "file", media.Src.File)
		return
	}
	manifestURL := NormalizeURL(media.Src.HLS)
	variants, err := deps.GetHLSVariants(ctx, manifestURL)
	if err != nil {
		log.Warn("Could not read HLS manifest.", "url", manifestURL, "error", err)
		return
	}
	for _, v := range variants {
		log.Info("HLS rendition.",
			"resolution", v.Resolution,
			"bandwidth", humanize.SI(float64(v.Bandwidth), "bit/s"),
			"codecs", v.Codecs,
		)
	}
}
