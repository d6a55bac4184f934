package api

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/jmagar/jupiter-dl/internal/model"
)

// contentPathRegex matches a path whose first segment is the content ID.
var contentPathRegex = regexp.MustCompile(`^/(\d+)(?:/|$)`)

// ExtractContentID returns the numeric content ID of a jupiter.err.ee URL.
// The hostname must match ExpectedHostname exactly; anything after the ID,
// including the query string, is ignored.
func ExtractContentID(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrInvalidURL, err)
	}

	// TODO: lasteekraan.err.ee/<id> pages share the same API; drop this check
	// once the content ID can be resolved from the API response alone.
	hostname := parsed.Hostname()
	if hostname != ExpectedHostname {
		return "", fmt.Errorf("%w: expected '%s' as hostname, got '%s'", model.ErrInvalidURL, ExpectedHostname, hostname)
	}

	match := contentPathRegex.FindStringSubmatch(parsed.Path)
	if match == nil {
		return "", fmt.Errorf("%w: no content ID in path '%s'", model.ErrInvalidURL, parsed.Path)
	}
	return match[1], nil
}
