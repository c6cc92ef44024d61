package service

import (
	"context"
	"fmt"

	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

// CacheRefresher re-fetches one cached collection from upstream, replacing
// the local cache. It backs the refresh dispatcher that runs after admin
// mutations.
type CacheRefresher struct {
	categories     *CategoryService
	mainCategories *MainCategoryService
	products       *ProductService
	menu           *MenuService
}

func NewCacheRefresher(categories *CategoryService, mainCategories *MainCategoryService, products *ProductService, menu *MenuService) *CacheRefresher {
	return &CacheRefresher{
		categories:     categories,
		mainCategories: mainCategories,
		products:       products,
		menu:           menu,
	}
}

func (r *CacheRefresher) Refresh(ctx context.Context, req ports.RefreshRequest) error {
	switch req.Kind {
	case ports.RefreshCategories:
		_, err := r.categories.List(ctx, true)
		return err
	case ports.RefreshMainCategories:
		_, err := r.mainCategories.List(ctx, true)
		return err
	case ports.RefreshProducts:
		_, err := r.products.List(ctx, true)
		return err
	case ports.RefreshMenu:
		_, err := r.menu.Tree(ctx, true)
		return err
	default:
		return fmt.Errorf("unknown refresh kind %q", req.Kind)
	}
}
