// Package fetch retrieves the site's static JSON documents.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// FetchError reports a transport failure or a non-success status.
type FetchError struct {
	URL    string
	Status int // 0 when the request never got a response
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not the expected JSON.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Client issues cache-bypassing GET requests.
type Client struct {
	http *http.Client
}

func NewClient(hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{http: hc}
}

// Fetch performs a single GET and decodes the JSON body into v.
func (c *Client) Fetch(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &FetchError{URL: url, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &DecodeError{URL: url, Err: err}
	}
	return nil
}

// FetchWithFallback tries primary and, on any failure, fallback exactly once.
// The fallback's own error is returned when both fail. An empty fallback
// behaves like Fetch. Both attempts decode into v; callers that need a clean
// value after a partial primary decode should use Items.
func (c *Client) FetchWithFallback(ctx context.Context, primary, fallback string, v any) error {
	err := c.Fetch(ctx, primary, v)
	if err == nil || fallback == "" {
		return err
	}
	return c.Fetch(ctx, fallback, v)
}

type envelope[T any] struct {
	Items []T `json:"items"`
}

// Items fetches a {"items": [...]} document, trying fallback once when
// primary fails. Each attempt decodes into its own envelope, so nothing from
// a failed primary leaks into the result. A missing items key yields an
// empty list.
func Items[T any](ctx context.Context, c *Client, primary, fallback string) ([]T, error) {
	items, err := decodeItems[T](ctx, c, primary)
	if err == nil || fallback == "" {
		return items, err
	}
	return decodeItems[T](ctx, c, fallback)
}

func decodeItems[T any](ctx context.Context, c *Client, url string) ([]T, error) {
	var doc envelope[T]
	if err := c.Fetch(ctx, url, &doc); err != nil {
		return nil, err
	}
	if doc.Items == nil {
		doc.Items = []T{}
	}
	return doc.Items, nil
}
