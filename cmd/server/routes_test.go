package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"catalogsite/internal/catalog"
	"catalogsite/internal/fetch"
	"catalogsite/internal/site"
)

type memStore struct{ releases []catalog.ReleaseItem }

func (m *memStore) ListSoftware(context.Context) ([]catalog.CatalogItem, error) { return nil, nil }
func (m *memStore) ListClients(context.Context) ([]catalog.ClientItem, error)   { return nil, nil }
func (m *memStore) ListIssues(context.Context) ([]catalog.IssueItem, error)     { return nil, nil }
func (m *memStore) ListReleases(context.Context) ([]catalog.ReleaseItem, error) {
	return m.releases, nil
}
func (m *memStore) CountSoftware(context.Context) (int64, error) { return 0, nil }
func (m *memStore) Seed(context.Context, catalog.SeedData) error { return nil }

// newTestServer runs the full router with the site reading its own API.
func newTestServer(t *testing.T, rateLimit int) *httptest.Server {
	t.Helper()
	var h http.Handler
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := catalog.NewService(&memStore{releases: []catalog.ReleaseItem{
		{ID: 1, Title: "Ledger", Version: "2.1", ReleaseDate: "2024-03-05", Content: "Faster posting"},
	}})
	pages := site.NewHandler(fetch.NewClient(srv.Client()), site.Endpoints{Base: srv.URL}, logger)

	var err error
	h, err = newRouter(logger, svc, pages, rateLimit)
	require.NoError(t, err)
	return srv
}

func visit(t *testing.T, srv *httptest.Server, path, ip string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
	require.NoError(t, err)
	req.Header.Set("X-Real-IP", ip)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestSelfFetchIsNotRateLimited(t *testing.T) {
	srv := newTestServer(t, 2)

	for i := 0; i < 6; i++ {
		code, body := visit(t, srv, "/releases", fmt.Sprintf("198.51.100.%d", i+1))
		require.Equal(t, http.StatusOK, code, "visitor %d", i)
		require.NotContains(t, body, "Failed to load releases.", "visitor %d", i)
		require.Contains(t, body, "Faster posting", "visitor %d", i)
	}
}

func TestPagesAreRateLimitedPerClient(t *testing.T) {
	srv := newTestServer(t, 2)

	for i := 0; i < 2; i++ {
		code, _ := visit(t, srv, "/releases", "203.0.113.9")
		require.Equal(t, http.StatusOK, code)
	}
	code, _ := visit(t, srv, "/releases", "203.0.113.9")
	require.Equal(t, http.StatusTooManyRequests, code)

	code, _ = visit(t, srv, "/releases", "203.0.113.10")
	require.Equal(t, http.StatusOK, code)
}
