package service

import (
	"context"
	"slices"
	"sync"

	"github.com/dkcommerce/storefront-gateway/internal/api/metrics"
	"github.com/dkcommerce/storefront-gateway/internal/core/domain"
	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

// MainCategoryService caches the main-category list. Mutations go straight
// through to the upstream; the next forced list refresh (driven by the
// refresh dispatcher) picks up the change.
type MainCategoryService struct {
	client ports.MainCategoryClient

	mu     sync.Mutex
	cached []domain.MainCategory
}

func NewMainCategoryService(client ports.MainCategoryClient) *MainCategoryService {
	return &MainCategoryService{client: client}
}

func (s *MainCategoryService) List(ctx context.Context, forceRefresh bool) ([]domain.MainCategory, error) {
	s.mu.Lock()
	if len(s.cached) > 0 && !forceRefresh {
		out := slices.Clone(s.cached)
		s.mu.Unlock()
		metrics.CatalogCacheTotal.WithLabelValues("main_categories", "hit").Inc()
		return out, nil
	}
	s.mu.Unlock()
	metrics.CatalogCacheTotal.WithLabelValues("main_categories", "miss").Inc()

	list, err := s.client.ListMainCategories(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = slices.Clone(list)
	s.mu.Unlock()
	return list, nil
}

func (s *MainCategoryService) Get(ctx context.Context, id int) (*domain.MainCategory, error) {
	return s.client.GetMainCategory(ctx, id)
}

func (s *MainCategoryService) Add(ctx context.Context, mc domain.MainCategory) (*domain.MainCategory, error) {
	return s.client.AddMainCategory(ctx, mc)
}

func (s *MainCategoryService) Update(ctx context.Context, id int, mc domain.MainCategory) (*domain.MainCategory, error) {
	return s.client.UpdateMainCategory(ctx, id, mc)
}

func (s *MainCategoryService) Delete(ctx context.Context, id int) error {
	return s.client.DeleteMainCategory(ctx, id)
}
