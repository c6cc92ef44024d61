package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dkcommerce/storefront-gateway/internal/api/metrics"
	"github.com/dkcommerce/storefront-gateway/internal/core/domain"
	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

// MenuService serves the storefront navigation tree through the shared TTL
// cache so every page load does not hit the upstream catalog.
type MenuService struct {
	client ports.MenuClient
	cache  ports.TreeCache
	log    zerolog.Logger
}

func NewMenuService(client ports.MenuClient, cache ports.TreeCache, log zerolog.Logger) *MenuService {
	return &MenuService{client: client, cache: cache, log: log}
}

// Tree returns the navigation tree, cached unless forceRefresh. Cache
// failures degrade to an upstream fetch rather than an error.
func (s *MenuService) Tree(ctx context.Context, forceRefresh bool) (*domain.Menu, error) {
	if !forceRefresh {
		menu, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("menu cache read failed")
		}
		if ok {
			metrics.CatalogCacheTotal.WithLabelValues("menu", "hit").Inc()
			return menu, nil
		}
	}
	metrics.CatalogCacheTotal.WithLabelValues("menu", "miss").Inc()

	menu, err := s.client.CatalogTree(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, menu); err != nil {
		s.log.Warn().Err(err).Msg("menu cache write failed")
	}
	return menu, nil
}
