package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"catalogsite/internal/catalog"
)

type stubStore struct {
	software []catalog.CatalogItem
	issues   []catalog.IssueItem
	err      error
}

func (s *stubStore) ListSoftware(context.Context) ([]catalog.CatalogItem, error) {
	return s.software, s.err
}
func (s *stubStore) ListClients(context.Context) ([]catalog.ClientItem, error) { return nil, s.err }
func (s *stubStore) ListIssues(context.Context) ([]catalog.IssueItem, error)   { return s.issues, s.err }
func (s *stubStore) ListReleases(context.Context) ([]catalog.ReleaseItem, error) {
	return nil, s.err
}
func (s *stubStore) CountSoftware(context.Context) (int64, error) { return 0, s.err }
func (s *stubStore) Seed(context.Context, catalog.SeedData) error { return s.err }

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func call(t *testing.T, h func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func names(t *testing.T, res *mcp.CallToolResult) []string {
	t.Helper()
	require.False(t, res.IsError, text(t, res))
	var items []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &items))
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func testService() *catalog.Service {
	return catalog.NewService(&stubStore{
		software: []catalog.CatalogItem{
			{ID: 1, Name: "Ledger", SortOrder: intPtr(2)},
			{ID: 2, Name: "Viewer", IsFree: boolPtr(true)},
			{ID: 3, Name: "Payroll", SortOrder: intPtr(5)},
			{ID: 4, Name: "Legacy", IsActive: boolPtr(false)},
		},
		issues: []catalog.IssueItem{
			{ID: 1, Title: "Printer stalls", Status: "Open"},
			{ID: 2, Title: "Slow export", Status: "Fixed"},
		},
	})
}

func TestListSoftwareFilters(t *testing.T) {
	t.Parallel()

	h := handleListSoftware(testService())

	require.Equal(t, []string{"Ledger", "Viewer", "Payroll"}, names(t, call(t, h, nil)))
	require.Equal(t, []string{"Viewer"}, names(t, call(t, h, map[string]any{"filter": "free"})))
	require.Equal(t, []string{"Ledger", "Payroll"}, names(t, call(t, h, map[string]any{"filter": "paid"})))
	require.Equal(t, []string{"Ledger"}, names(t, call(t, h, map[string]any{"filter": "paid", "limit": 1})))

	res := call(t, h, map[string]any{"filter": "gratis"})
	require.True(t, res.IsError)
	require.Contains(t, text(t, res), "unknown filter")
}

func TestGetFeaturedOrder(t *testing.T) {
	t.Parallel()

	res := call(t, handleGetFeatured(testService()), nil)
	require.Equal(t, []string{"Payroll", "Ledger"}, names(t, res))
}

func TestListKnownIssuesByStatus(t *testing.T) {
	t.Parallel()

	res := call(t, handleListIssues(testService()), map[string]any{"status": "Fixed"})
	require.False(t, res.IsError)
	require.Contains(t, text(t, res), "Slow export")
	require.NotContains(t, text(t, res), "Printer stalls")
}

func TestEmptyListIsArray(t *testing.T) {
	t.Parallel()

	res := call(t, handleListReleases(testService()), nil)
	require.False(t, res.IsError)
	require.JSONEq(t, `[]`, text(t, res))
}

func TestStoreErrorIsToolError(t *testing.T) {
	t.Parallel()

	svc := catalog.NewService(&stubStore{err: errors.New("db down")})
	res := call(t, handleList(svc.Clients, "clients"), nil)
	require.True(t, res.IsError)
	require.Contains(t, text(t, res), "failed to list clients")
}
