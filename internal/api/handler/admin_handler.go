package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
	"github.com/dkcommerce/storefront-gateway/internal/core/service"
)

// RefreshEnqueuer decouples the handler from the dispatcher implementation.
type RefreshEnqueuer interface {
	Enqueue(req ports.RefreshRequest)
}

// AdminHandler owns the back-office CRUD endpoints for categories,
// main-categories, and products. Every mutation enqueues a cache refresh for
// the affected collection and for the navigation tree.
type AdminHandler struct {
	categories     *service.CategoryService
	mainCategories *service.MainCategoryService
	products       *service.ProductService
	refresh        RefreshEnqueuer
	blobs          ports.BlobClient
}

func NewAdminHandler(categories *service.CategoryService, mainCategories *service.MainCategoryService, products *service.ProductService, refresh RefreshEnqueuer, blobs ports.BlobClient) *AdminHandler {
	return &AdminHandler{
		categories:     categories,
		mainCategories: mainCategories,
		products:       products,
		refresh:        refresh,
		blobs:          blobs,
	}
}

func (h *AdminHandler) refreshAfter(kind ports.RefreshKind) {
	h.refresh.Enqueue(ports.RefreshRequest{Kind: kind})
	h.refresh.Enqueue(ports.RefreshRequest{Kind: ports.RefreshMenu})
}

// --- Categories ---

func (h *AdminHandler) ListCategories(c echo.Context) error {
	list, err := h.categories.List(c.Request().Context(), forceRefresh(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.categories.Add(c.Request().Context(), req.toDomain(0))
	if err != nil {
		return err
	}
	h.refreshAfter(ports.RefreshCategories)
	return c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.categories.Update(c.Request().Context(), id, req.toDomain(id))
	if err != nil {
		return err
	}
	h.refreshAfter(ports.RefreshCategories)
	return c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.categories.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	h.refreshAfter(ports.RefreshCategories)
	return c.NoContent(http.StatusNoContent)
}

// --- Main categories ---

func (h *AdminHandler) ListMainCategories(c echo.Context) error {
	list, err := h.mainCategories.List(c.Request().Context(), forceRefresh(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (h *AdminHandler) CreateMainCategory(c echo.Context) error {
	var req mainCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.mainCategories.Add(c.Request().Context(), req.toDomain(0))
	if err != nil {
		return err
	}
	h.refreshAfter(ports.RefreshMainCategories)
	return c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateMainCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req mainCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.mainCategories.Update(c.Request().Context(), id, req.toDomain(id))
	if err != nil {
		return err
	}
	h.refreshAfter(ports.RefreshMainCategories)
	return c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteMainCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.mainCategories.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	h.refreshAfter(ports.RefreshMainCategories)
	return c.NoContent(http.StatusNoContent)
}

// --- Products ---

func (h *AdminHandler) ListProducts(c echo.Context) error {
	list, err := h.products.List(c.Request().Context(), forceRefresh(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.products.Add(c.Request().Context(), req.toDomain(0))
	if err != nil {
		return err
	}
	h.refreshAfter(ports.RefreshProducts)
	return c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.products.Update(c.Request().Context(), id, req.toDomain(id))
	if err != nil {
		return err
	}
	h.refreshAfter(ports.RefreshProducts)
	return c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.products.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	h.refreshAfter(ports.RefreshProducts)
	return c.NoContent(http.StatusNoContent)
}

// --- Uploads ---

// Upload handles POST /admin/uploads, proxying an image to the upstream blob
// store and returning the normalised {fileName, url} pair.
func (h *AdminHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}
	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer f.Close()

	upload, err := h.blobs.UploadImage(c.Request().Context(), ports.File{Name: fh.Filename, Content: f})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, upload)
}
