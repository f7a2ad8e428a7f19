package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"appliancefit/internal/observability"
)

// DefaultUserAgent identifies the importer to retailer sites.
const DefaultUserAgent = "Mozilla/5.0 (ApplianceFit Spec Importer)"

const maxPageBytes = 8 << 20

var defaultHTTPClient = &http.Client{Timeout: 60 * time.Second}

// StatusError is returned when a page answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d for %s", e.StatusCode, e.URL)
}

// Fetcher downloads product pages.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
}

// NewFetcher returns a Fetcher. A zero timeout keeps the default 60s client
// and an empty userAgent uses DefaultUserAgent.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	client := defaultHTTPClient
	if timeout > 0 {
		client = &http.Client{Timeout: timeout}
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Fetcher{httpClient: client, userAgent: userAgent}
}

// Fetch returns the body of url. Non-2xx answers yield a *StatusError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	start := time.Now()
	defer func() {
		observability.FetchDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Debug().Str("url", url).Int("status", resp.StatusCode).Msg("[Crawler] non-2xx response")
		return "", &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(b), nil
}
