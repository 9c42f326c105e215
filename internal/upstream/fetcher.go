package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/utils"
)

// ContentType is sent on the template request and on the rewritten page.
const ContentType = "text/html;charset=UTF-8"

// StatusError is returned when the template host answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s returned status %d", e.URL, e.StatusCode)
}

// Fetcher retrieves the template document. It never caches: every call is a
// fresh GET.
type Fetcher struct {
	url    string
	client *http.Client
}

// NewFetcher returns a Fetcher for url. A zero timeout means none.
func NewFetcher(url string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewFetcherWithClient is like NewFetcher with a caller supplied client.
func NewFetcherWithClient(url string, client *http.Client) *Fetcher {
	return &Fetcher{url: url, client: client}
}

// URL returns the template URL.
func (f *Fetcher) URL() string { return f.url }

// Fetch issues the GET and returns the streaming body. The caller must close
// it. Transport failures and non-2xx statuses are returned as errors; there
// is no retry.
func (f *Fetcher) Fetch(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", ContentType)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch template: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		utils.DrainAndClose(resp.Body)
		return nil, &StatusError{URL: f.url, StatusCode: resp.StatusCode}
	}

	return resp.Body, nil
}
