package service

import (
	"context"
	"slices"
	"sync"

	"github.com/dkcommerce/storefront-gateway/internal/api/metrics"
	"github.com/dkcommerce/storefront-gateway/internal/core/domain"
	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

// CategoryService serves categories from an in-memory list cache and patches
// the cache optimistically on mutations, using the record the upstream
// returned.
type CategoryService struct {
	client ports.CategoryClient

	mu     sync.Mutex
	cached []domain.Category // nil until the first successful list
}

func NewCategoryService(client ports.CategoryClient) *CategoryService {
	return &CategoryService{client: client}
}

// List returns all categories, from cache unless forceRefresh.
func (s *CategoryService) List(ctx context.Context, forceRefresh bool) ([]domain.Category, error) {
	s.mu.Lock()
	if s.cached != nil && !forceRefresh {
		out := slices.Clone(s.cached)
		s.mu.Unlock()
		metrics.CatalogCacheTotal.WithLabelValues("categories", "hit").Inc()
		return out, nil
	}
	s.mu.Unlock()
	metrics.CatalogCacheTotal.WithLabelValues("categories", "miss").Inc()

	list, err := s.client.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = slices.Clone(list)
	s.mu.Unlock()
	return list, nil
}

func (s *CategoryService) Get(ctx context.Context, id int) (*domain.Category, error) {
	return s.client.GetCategory(ctx, id)
}

func (s *CategoryService) Add(ctx context.Context, cat domain.Category) (*domain.Category, error) {
	created, err := s.client.AddCategory(ctx, cat)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.cached != nil {
		s.cached = append(s.cached, *created)
	}
	s.mu.Unlock()
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id int, cat domain.Category) (*domain.Category, error) {
	updated, err := s.client.UpdateCategory(ctx, id, cat)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.cached {
		if s.cached[i].ID == id {
			s.cached[i] = *updated
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	if err := s.client.DeleteCategory(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	if s.cached != nil {
		s.cached = slices.DeleteFunc(s.cached, func(c domain.Category) bool {
			return c.ID == id
		})
	}
	s.mu.Unlock()
	return nil
}
