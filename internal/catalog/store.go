package catalog

import (
	"context"
	"errors"
)

var ErrStoreNotEmpty = errors.New("store already has software")

// Store is the read side of the catalog plus the bulk seed used at startup.
// Listing methods return items in API order.
type Store interface {
	ListSoftware(ctx context.Context) ([]CatalogItem, error)
	ListClients(ctx context.Context) ([]ClientItem, error)
	ListIssues(ctx context.Context) ([]IssueItem, error)
	ListReleases(ctx context.Context) ([]ReleaseItem, error)
	CountSoftware(ctx context.Context) (int64, error)
	Seed(ctx context.Context, data SeedData) error
}
