// Package fetch retrieves content from the external providers. Each
// provider gets a thin client over a shared HTTP core with bounded retry
// and a persistent response cache.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"theologai/internal/logging"
	"theologai/internal/store"
)

// Client is the shared HTTP core. Store is optional; without it every
// call goes to the network.
type Client struct {
	HTTP      *http.Client
	Store     *store.Store
	Retries   int
	UserAgent string
}

// NewClient builds a Client with sane defaults over the given cache.
func NewClient(st *store.Store) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: 30 * time.Second},
		Store:     st,
		Retries:   2,
		UserAgent: "theologai/0.1",
	}
}

// Get fetches a URL, serving from the response cache when possible.
// Server errors are retried with backoff; client errors are not.
func (c *Client) Get(ctx context.Context, provider, url string, headers map[string]string) ([]byte, error) {
	start := time.Now()

	if c.Store != nil {
		if body, ok, err := c.Store.Get(ctx, url); err == nil && ok {
			logging.ProviderRequest(ctx, provider, url, http.StatusOK, true, time.Since(start))
			return body, nil
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
		}

		body, status, err := c.do(ctx, url, headers)
		if err != nil {
			lastErr = err
			continue
		}
		if status >= http.StatusInternalServerError {
			lastErr = fmt.Errorf("%s returned status %d", provider, status)
			continue
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("%s returned status %d", provider, status)
		}

		if c.Store != nil {
			if err := c.Store.Put(ctx, url, body); err != nil {
				logging.Warn("cache_write_failed", "provider", provider, "error", err.Error())
			}
		}
		logging.ProviderRequest(ctx, provider, url, status, false, time.Since(start))
		return body, nil
	}
	return nil, fmt.Errorf("fetching from %s: %w", provider, lastErr)
}

func (c *Client) do(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}
