// Package source resolves and loads registry text from a URL or a local
// file, so the parser never needs to know where its input came from.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
)

// EnvURL overrides the primary default source when set.
const EnvURL = "OUI_URL"

// Default upstream locations, tried in order. The legacy path is kept as a
// fallback because the IEEE has moved the file before.
const (
	primaryURL = "https://standards-oui.ieee.org/oui/oui.txt"
	legacyURL  = "https://standards-oui.ieee.org/oui.txt"
)

// ErrUnavailable is returned by LoadFirst when every candidate source
// failed to load.
var ErrUnavailable = errors.New("no registry source could be loaded")

var urlPattern = regexp.MustCompile(`^https?://`)

// IsURL reports whether location is an HTTP(S) URL rather than a local path.
func IsURL(location string) bool {
	return urlPattern.MatchString(location)
}

// Defaults returns the ordered default source list. The primary URL can be
// overridden, environment variable first, then the configured URL; the
// legacy URL is always the last fallback.
func Defaults(configuredURL string) []string {
	primary := primaryURL
	if configuredURL != "" {
		primary = configuredURL
	}
	if env := os.Getenv(EnvURL); env != "" {
		primary = env
	}
	if primary == legacyURL {
		return []string{legacyURL}
	}
	return []string{primary, legacyURL}
}

// Load fetches the text blob behind a single source location, over HTTP(S)
// for URLs and from disk for anything else.
func Load(ctx context.Context, location string) (string, error) {
	if IsURL(location) {
		return fetch(ctx, location)
	}

	data, err := os.ReadFile(location)
	if err != nil {
		return "", fmt.Errorf("source: failed to read %s: %w", location, err)
	}
	return string(data), nil
}

// LoadFirst tries each location in order and returns the text of the first
// one that loads, along with the location that produced it. If every
// location fails, the returned error wraps ErrUnavailable and every
// per-source failure.
func LoadFirst(ctx context.Context, locations []string) (text, location string, err error) {
	var failures []error
	for _, loc := range locations {
		text, loadErr := Load(ctx, loc)
		if loadErr == nil {
			return text, loc, nil
		}
		failures = append(failures, loadErr)
	}
	return "", "", fmt.Errorf("%w: %w", ErrUnavailable, errors.Join(failures...))
}

func fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("source: invalid URL %s: %w", url, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("source: failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("source: unexpected status %s fetching %s", resp.Status, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("source: failed to read response from %s: %w", url, err)
	}
	return string(data), nil
}
