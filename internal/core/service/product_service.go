package service

import (
	"context"
	"slices"
	"sync"

	"github.com/dkcommerce/storefront-gateway/internal/api/metrics"
	"github.com/dkcommerce/storefront-gateway/internal/core/domain"
	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

// ProductService serves products from an in-memory list cache with
// optimistic mutation patching. Detail lookups are last-request-wins: a
// newer Get supersedes a still-in-flight one by cancelling its context.
type ProductService struct {
	client ports.ProductClient

	mu     sync.Mutex
	cached []domain.Product

	detailMu     sync.Mutex
	cancelDetail context.CancelFunc
}

func NewProductService(client ports.ProductClient) *ProductService {
	return &ProductService{client: client}
}

func (s *ProductService) List(ctx context.Context, forceRefresh bool) ([]domain.Product, error) {
	s.mu.Lock()
	if s.cached != nil && !forceRefresh {
		out := slices.Clone(s.cached)
		s.mu.Unlock()
		metrics.CatalogCacheTotal.WithLabelValues("products", "hit").Inc()
		return out, nil
	}
	s.mu.Unlock()
	metrics.CatalogCacheTotal.WithLabelValues("products", "miss").Inc()

	list, err := s.client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = slices.Clone(list)
	s.mu.Unlock()
	return list, nil
}

// Get fetches one product. If a previous detail fetch is still in flight it
// is cancelled; the superseded caller sees context.Canceled and is expected
// to drop the result.
func (s *ProductService) Get(ctx context.Context, id int) (*domain.Product, error) {
	s.detailMu.Lock()
	if s.cancelDetail != nil {
		s.cancelDetail()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancelDetail = cancel
	s.detailMu.Unlock()
	defer cancel()

	return s.client.GetProduct(ctx, id)
}

// ListByCategory fetches the products of one category and replaces the list
// cache with the result, matching the storefront's browse behavior.
func (s *ProductService) ListByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	list, err := s.client.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = slices.Clone(list)
	s.mu.Unlock()
	return list, nil
}

func (s *ProductService) Add(ctx context.Context, p domain.Product) (*domain.Product, error) {
	created, err := s.client.AddProduct(ctx, p)
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

func (s *ProductService) Update(ctx context.Context, id int, p domain.Product) (*domain.Product, error) {
	updated, err := s.client.UpdateProduct(ctx, id, p)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.cached {
		if s.cached[i].ID == updated.ID {
			s.cached[i] = *updated
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	if err := s.client.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	if s.cached != nil {
		s.cached = slices.DeleteFunc(s.cached, func(p domain.Product) bool {
			return p.ID == id
		})
	}
	s.mu.Unlock()
	return nil
}
