package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	software []CatalogItem
	clients  []ClientItem
	issues   []IssueItem
	releases []ReleaseItem
	err      error
	seeded   *SeedData
}

func (f *fakeStore) ListSoftware(context.Context) ([]CatalogItem, error) { return f.software, f.err }
func (f *fakeStore) ListClients(context.Context) ([]ClientItem, error)   { return f.clients, f.err }
func (f *fakeStore) ListIssues(context.Context) ([]IssueItem, error)     { return f.issues, f.err }
func (f *fakeStore) ListReleases(context.Context) ([]ReleaseItem, error) { return f.releases, f.err }

func (f *fakeStore) CountSoftware(context.Context) (int64, error) {
	return int64(len(f.software)), f.err
}

func (f *fakeStore) Seed(_ context.Context, data SeedData) error {
	f.seeded = &data
	f.software = data.Software
	return f.err
}

func newTestHandler(store Store) *Handler {
	return NewHandler(NewService(store), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSoftwareEndpointEnvelope(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&fakeStore{software: []CatalogItem{
		{ID: 1, Name: "Ledger", SortOrder: intPtr(3)},
		{ID: 2, Name: "POS", IsFree: boolPtr(true)},
	}})

	rec := httptest.NewRecorder()
	h.Software(rec, httptest.NewRequest(http.MethodGet, "/api/software.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Len(t, doc.Items, 2)
	require.Equal(t, "Ledger", doc.Items[0]["name"])
	require.EqualValues(t, 3, doc.Items[0]["sort_order"])
	require.Equal(t, true, doc.Items[1]["is_free"])
}

func TestEmptyListEncodesAsArray(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&fakeStore{})

	rec := httptest.NewRecorder()
	h.Clients(rec, httptest.NewRequest(http.MethodGet, "/api/clients.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"items":[]}`, rec.Body.String())
}

func TestReleasesEndpointIncludesSoftwareName(t *testing.T) {
	t.Parallel()

	sid := int64(7)
	h := newTestHandler(&fakeStore{releases: []ReleaseItem{
		{ID: 1, Title: "Spring update", Version: "2.1", SoftwareID: &sid, SoftwareName: "Ledger", ReleaseDate: "2024-03-01T00:00:00Z"},
	}})

	rec := httptest.NewRecorder()
	h.Releases(rec, httptest.NewRequest(http.MethodGet, "/api/releases.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"software_name":"Ledger"`)
	require.NotContains(t, rec.Body.String(), "is_published")
}

func TestStoreErrorReturns500(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&fakeStore{err: errors.New("boom")})

	rec := httptest.NewRecorder()
	h.Issues(rec, httptest.NewRequest(http.MethodGet, "/api/known_issues.json", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
	require.NotContains(t, rec.Body.String(), "boom")
}

func TestFeaturedUsesHeroRanking(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeStore{software: []CatalogItem{
		{ID: 1, SortOrder: intPtr(2)},
		{ID: 2, SortOrder: intPtr(2)},
		{ID: 3, SortOrder: intPtr(5)},
		{ID: 4, IsFree: boolPtr(true), SortOrder: intPtr(9)},
	}})

	items, err := svc.Featured(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int64{3, 2, 1}, ids(items))
}

func TestSeedIfEmpty(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	svc := NewService(store)

	data := SeedData{Software: []CatalogItem{{ID: 1, Name: "Ledger"}}}
	require.NoError(t, svc.SeedIfEmpty(context.Background(), data))
	require.NotNil(t, store.seeded)

	store.seeded = nil
	err := svc.SeedIfEmpty(context.Background(), data)
	require.ErrorIs(t, err, ErrStoreNotEmpty)
	require.Nil(t, store.seeded, "non-empty store must not be reseeded")
}
