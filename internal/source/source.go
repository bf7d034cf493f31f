// Package source resolves a document location to its bytes. A location is
// either a local file path or an http(s) URL.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrNoLocation indicates an empty document location.
var ErrNoLocation = errors.New("no document location")

// StatusError reports a non-2xx response from a remote location.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// Fetcher reads documents from disk or over HTTP.
type Fetcher struct {
	Client *http.Client
	Log    zerolog.Logger
	// MaxBytes caps a remote download; zero means 64 MiB.
	MaxBytes int64
}

// New returns a Fetcher whose HTTP client times out after timeout.
func New(timeout time.Duration, log zerolog.Logger) *Fetcher {
	return &Fetcher{
		Client: &http.Client{Timeout: timeout},
		Log:    log,
	}
}

// IsURL reports whether location names an http(s) resource.
func IsURL(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// Fetch returns the content at location.
func (f *Fetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if strings.TrimSpace(location) == "" {
		return nil, ErrNoLocation
	}
	if !IsURL(location) {
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, err
		}
		f.Log.Debug().Str("path", location).Int("bytes", len(data)).Msg("read document")
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: location, StatusCode: resp.StatusCode}
	}

	limit := f.MaxBytes
	if limit <= 0 {
		limit = 64 << 20
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("fetch %s: document exceeds %d bytes", location, limit)
	}
	f.Log.Debug().Str("url", location).Int("bytes", len(data)).Msg("fetched document")
	return data, nil
}
