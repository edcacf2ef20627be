package catalog

import (
	"context"
	"fmt"
)

var (
	_ Store = (*Repo)(nil)
	_ Store = (*PgRepo)(nil)
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Software returns the full software list, inactive items included
func (s *Service) Software(ctx context.Context) ([]CatalogItem, error) {
	return s.store.ListSoftware(ctx)
}

// Featured returns the hero slider selection
func (s *Service) Featured(ctx context.Context) ([]CatalogItem, error) {
	items, err := s.store.ListSoftware(ctx)
	if err != nil {
		return nil, err
	}
	return HeroRanking(items), nil
}

// Clients returns active clients
func (s *Service) Clients(ctx context.Context) ([]ClientItem, error) {
	return s.store.ListClients(ctx)
}

// Issues returns active known issues
func (s *Service) Issues(ctx context.Context) ([]IssueItem, error) {
	return s.store.ListIssues(ctx)
}

// Releases returns published release notes, newest first
func (s *Service) Releases(ctx context.Context) ([]ReleaseItem, error) {
	return s.store.ListReleases(ctx)
}

// SeedIfEmpty loads data into the store unless software already exists.
// It returns ErrStoreNotEmpty when nothing was written.
func (s *Service) SeedIfEmpty(ctx context.Context, data SeedData) error {
	n, err := s.store.CountSoftware(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrStoreNotEmpty
	}
	if err := s.store.Seed(ctx, data); err != nil {
		return fmt.Errorf("seed store: %w", err)
	}
	return nil
}
