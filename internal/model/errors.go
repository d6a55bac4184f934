package model

import "errors"

// Sentinel errors for the download pipeline.
var (
	// ErrInvalidURL is returned when the source URL has the wrong hostname or no content ID.
	ErrInvalidURL = errors.New("invalid Jupiter URL")
	// ErrPageDataNotFound is returned when the API response carries no page data.
	ErrPageDataNotFound = errors.New("page data not found")
	// ErrUsage is returned for mutually exclusive or otherwise invalid CLI flags.
	ErrUsage = errors.New("invalid usage")
)
