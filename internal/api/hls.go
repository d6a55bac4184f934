package api

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"github.com/grafov/m3u8"
)

// GetHLSVariants fetches an HLS master playlist and returns its variants,
// highest bandwidth first.
func GetHLSVariants(ctx context.Context, manifestURL string) ([]*m3u8.Variant, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, manifestURL, nil)
	if err != nil {
		return nil, err
	}
	do, err := Do(req, "hls.master")
	if err != nil {
		return nil, err
	}
	defer do.Body.Close()
	if err := CheckStatus(do); err != nil {
		return nil, err
	}

	playlist, _, err := m3u8.DecodeFrom(do.Body, true)
	if err != nil {
		return nil, err
	}
	master, ok := playlist.(*m3u8.MasterPlaylist)
	if !ok {
		return nil, errors.New("expected HLS master playlist but got media playlist")
	}
	if len(master.Variants) == 0 {
		return nil, errors.New("HLS master playlist has no variants")
	}
	variants := make([]*m3u8.Variant, len(master.Variants))
	copy(variants, master.Variants)
	sort.SliceStable(variants, func(x, y int) bool {
		return variants[x].Bandwidth > variants[y].Bandwidth
	})
	return variants, nil
}
