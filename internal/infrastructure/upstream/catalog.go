package upstream

import (
	"context"
	"fmt"

	"github.com/dkcommerce/storefront-gateway/internal/core/domain"
)

// Endpoint paths mirror the remote catalog service contract verbatim,
// including its casing quirks (the product list endpoint is lowercase).

// --- Categories ---

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.getJSON(ctx, "/Category/GetAllAsync", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	var out domain.Category
	if err := c.getJSON(ctx, fmt.Sprintf("/Category/GetAsync/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddCategory(ctx context.Context, cat domain.Category) (*domain.Category, error) {
	var out domain.Category
	if err := c.postJSON(ctx, "/Category/AddAsync", cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int, cat domain.Category) (*domain.Category, error) {
	var out domain.Category
	if err := c.putJSON(ctx, fmt.Sprintf("/Category/UpdateAsync/%d", id), cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/Category/DeleteAsync/%d", id))
}

// --- Main categories ---

func (c *Client) ListMainCategories(ctx context.Context) ([]domain.MainCategory, error) {
	var out []domain.MainCategory
	if err := c.getJSON(ctx, "/MainCategory/GetAllAsync", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMainCategory(ctx context.Context, id int) (*domain.MainCategory, error) {
	var out domain.MainCategory
	if err := c.getJSON(ctx, fmt.Sprintf("/MainCategory/GetAsync/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddMainCategory(ctx context.Context, mc domain.MainCategory) (*domain.MainCategory, error) {
	var out domain.MainCategory
	if err := c.postJSON(ctx, "/MainCategory/AddAsync", mc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMainCategory(ctx context.Context, id int, mc domain.MainCategory) (*domain.MainCategory, error) {
	var out domain.MainCategory
	if err := c.putJSON(ctx, fmt.Sprintf("/MainCategory/UpdateAsync/%d", id), mc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMainCategory(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/MainCategory/DeleteAsync/%d", id))
}

// --- Products ---

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.getJSON(ctx, "/product/GetAllAsync", &out); err != nil {
		return nil, err
	}
	return c.absoluteImages(out), nil
}

func (c *Client) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	var out domain.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/Product/GetAsync/%d", id), &out); err != nil {
		return nil, err
	}
	out.ImageURL = c.AbsoluteURL(out.ImageURL)
	return &out, nil
}

func (c *Client) ListProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/Product/GetByCategoryIdAsync/%d", categoryID), &out); err != nil {
		return nil, err
	}
	return c.absoluteImages(out), nil
}

func (c *Client) AddProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	var out domain.Product
	if err := c.postJSON(ctx, "/Product/AddAsync", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, p domain.Product) (*domain.Product, error) {
	var out domain.Product
	if err := c.putJSON(ctx, fmt.Sprintf("/Product/UpdateAsync/%d", id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/Product/DeleteAsync/%d", id))
}

func (c *Client) absoluteImages(products []domain.Product) []domain.Product {
	for i := range products {
		products[i].ImageURL = c.AbsoluteURL(products[i].ImageURL)
	}
	return products
}

// --- Navigation tree ---

func (c *Client) CatalogTree(ctx context.Context) (*domain.Menu, error) {
	var out domain.Menu
	if err := c.getJSON(ctx, "/Catalog/GetCatalogTreeAsync", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
