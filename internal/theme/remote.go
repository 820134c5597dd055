package theme

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"time"

	"github.com/jmylchreest/brandlint/internal/security"
	httputil "github.com/jmylchreest/brandlint/internal/util/http"
)

// Fetch downloads and parses a theme document over HTTPS. The format is
// taken from the URL path's extension, as with Load.
func Fetch(ctx context.Context, rawURL string, timeout time.Duration) (*Preset, error) {
	if err := security.ValidateHTTPURL(rawURL); err != nil {
		return nil, err
	}
	return fetch(ctx, rawURL, httputil.FetchOptions{Timeout: timeout})
}

func fetch(ctx context.Context, rawURL string, opts httputil.FetchOptions) (*Preset, error) {
	data, err := httputil.Fetch(ctx, rawURL, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch theme: %w", err)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	preset, err := Parse(data, DetectFormat(u.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", rawURL, err)
	}
	if preset.ID == "" {
		base := path.Base(u.Path)
		if base == "." || base == "/" {
			preset.ID = u.Hostname()
		} else {
			preset.ID = base[:len(base)-len(path.Ext(base))]
		}
	}
	return preset, nil
}

// IsURL reports whether s looks like an http(s) URL rather than a file path.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}
