package ports

import (
	"context"
	"io"

	"github.com/dkcommerce/storefront-gateway/internal/core/domain"
)

// CategoryClient talks to the remote category endpoints.
type CategoryClient interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int) (*domain.Category, error)
	AddCategory(ctx context.Context, cat domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int, cat domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

// MainCategoryClient talks to the remote main-category endpoints.
type MainCategoryClient interface {
	ListMainCategories(ctx context.Context) ([]domain.MainCategory, error)
	GetMainCategory(ctx context.Context, id int) (*domain.MainCategory, error)
	AddMainCategory(ctx context.Context, mc domain.MainCategory) (*domain.MainCategory, error)
	UpdateMainCategory(ctx context.Context, id int, mc domain.MainCategory) (*domain.MainCategory, error)
	DeleteMainCategory(ctx context.Context, id int) error
}

// ProductClient talks to the remote product endpoints.
type ProductClient interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error)
	AddProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int, p domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

// MenuClient fetches the full navigation tree in one call.
type MenuClient interface {
	CatalogTree(ctx context.Context) (*domain.Menu, error)
}

// TreeCache is the shared TTL cache for the navigation tree.
type TreeCache interface {
	Get(ctx context.Context) (*domain.Menu, bool, error)
	Set(ctx context.Context, menu *domain.Menu) error
	Invalidate(ctx context.Context) error
}

// File is an uploaded file streamed through to the upstream.
type File struct {
	Name    string
	Content io.Reader
}

// EmailClient forwards appointment requests to the upstream email sender.
// The report attachment is optional.
type EmailClient interface {
	SendAppointment(ctx context.Context, a domain.Appointment, report *File) error
}

// BlobClient uploads images through the upstream blob endpoint.
type BlobClient interface {
	UploadImage(ctx context.Context, file File) (*domain.Upload, error)
}
