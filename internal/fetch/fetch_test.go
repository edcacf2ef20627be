package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func jsonServer(t *testing.T, status int, body string, hits *atomic.Int32) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestItemsDecodesEnvelope(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, http.StatusOK, `{"items":[{"id":1,"name":"Ledger"},{"id":2,"name":"POS"}]}`, nil)

	items, err := Items[item](context.Background(), NewClient(srv.Client()), srv.URL, "")
	require.NoError(t, err)
	require.Equal(t, []item{{1, "Ledger"}, {2, "POS"}}, items)
}

func TestItemsMissingKeyIsEmpty(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, http.StatusOK, `{}`, nil)

	items, err := Items[item](context.Background(), NewClient(srv.Client()), srv.URL, "")
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestFetchSendsCacheBypassHeaders(t *testing.T) {
	t.Parallel()

	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	var doc map[string]any
	require.NoError(t, NewClient(srv.Client()).Fetch(context.Background(), srv.URL, &doc))
	require.Equal(t, "no-store", got.Get("Cache-Control"))
	require.Equal(t, "no-cache", got.Get("Pragma"))
}

func TestFetchNonSuccessStatus(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, http.StatusNotFound, `{"error":"nope"}`, nil)

	var doc map[string]any
	err := NewClient(srv.Client()).Fetch(context.Background(), srv.URL, &doc)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, http.StatusNotFound, fe.Status)
	require.Equal(t, srv.URL, fe.URL)
}

func TestFetchTransportFailure(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, http.StatusOK, `{}`, nil)
	url := srv.URL
	srv.Close()

	var doc map[string]any
	err := NewClient(nil).Fetch(context.Background(), url, &doc)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	require.Zero(t, fe.Status)
	require.Error(t, fe.Err)
}

func TestFetchMalformedBody(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, http.StatusOK, `{"items": [`, nil)

	_, err := Items[item](context.Background(), NewClient(srv.Client()), srv.URL, "")

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	var fe *FetchError
	require.False(t, errors.As(err, &fe))
}

func TestFallbackCalledOnceAfterPrimary500(t *testing.T) {
	t.Parallel()

	var primaryHits, fallbackHits atomic.Int32
	primary := jsonServer(t, http.StatusInternalServerError, ``, &primaryHits)
	fallback := jsonServer(t, http.StatusOK, `{"items":[{"id":9,"name":"Mirror"}]}`, &fallbackHits)

	items, err := Items[item](context.Background(), NewClient(nil), primary.URL, fallback.URL)
	require.NoError(t, err)
	require.Equal(t, []item{{9, "Mirror"}}, items)
	require.EqualValues(t, 1, primaryHits.Load())
	require.EqualValues(t, 1, fallbackHits.Load())
}

func TestFallbackNotCalledOnSuccess(t *testing.T) {
	t.Parallel()

	var fallbackHits atomic.Int32
	primary := jsonServer(t, http.StatusOK, `{"items":[]}`, nil)
	fallback := jsonServer(t, http.StatusOK, `{"items":[]}`, &fallbackHits)

	_, err := Items[item](context.Background(), NewClient(nil), primary.URL, fallback.URL)
	require.NoError(t, err)
	require.Zero(t, fallbackHits.Load())
}

func TestFallbackFailureIsSurfaced(t *testing.T) {
	t.Parallel()

	var fallbackHits atomic.Int32
	primary := jsonServer(t, http.StatusInternalServerError, ``, nil)
	fallback := jsonServer(t, http.StatusBadGateway, ``, &fallbackHits)

	_, err := Items[item](context.Background(), NewClient(nil), primary.URL, fallback.URL)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, fallback.URL, fe.URL, "error must come from the fallback attempt")
	require.Equal(t, http.StatusBadGateway, fe.Status)
	require.EqualValues(t, 1, fallbackHits.Load())
}

func TestFallbackAfterDecodeError(t *testing.T) {
	t.Parallel()

	primary := jsonServer(t, http.StatusOK, `not json`, nil)
	fallback := jsonServer(t, http.StatusOK, `{"items":[{"id":1,"name":"ok"}]}`, nil)

	items, err := Items[item](context.Background(), NewClient(nil), primary.URL, fallback.URL)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestFallbackDoesNotKeepPartialPrimaryItems(t *testing.T) {
	t.Parallel()

	primary := jsonServer(t, http.StatusOK, `{"items":[{"id":"bad","name":"Stale"}]}`, nil)
	fallback := jsonServer(t, http.StatusOK, `{}`, nil)

	items, err := Items[item](context.Background(), NewClient(nil), primary.URL, fallback.URL)
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}
