package ports

import "context"

// RefreshKind identifies which cached collection a refresh targets.
type RefreshKind string

const (
	RefreshCategories     RefreshKind = "categories"
	RefreshMainCategories RefreshKind = "main_categories"
	RefreshProducts       RefreshKind = "products"
	RefreshMenu           RefreshKind = "menu"
)

// RefreshRequest asks for one cached collection to be re-fetched from
// upstream after a mutation.
type RefreshRequest struct {
	Kind RefreshKind
}

// RefreshService re-fetches a collection and replaces the local cache.
type RefreshService interface {
	Refresh(ctx context.Context, req RefreshRequest) error
}
