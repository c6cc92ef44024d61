package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dkcommerce/storefront-gateway/internal/core/service"
)

// StorefrontHandler serves the public browsing endpoints: navigation menu,
// category and product listings, product detail.
type StorefrontHandler struct {
	menu           *service.MenuService
	categories     *service.CategoryService
	mainCategories *service.MainCategoryService
	products       *service.ProductService
}

func NewStorefrontHandler(menu *service.MenuService, categories *service.CategoryService, mainCategories *service.MainCategoryService, products *service.ProductService) *StorefrontHandler {
	return &StorefrontHandler{
		menu:           menu,
		categories:     categories,
		mainCategories: mainCategories,
		products:       products,
	}
}

// forceRefresh reads the ?refresh=true query flag.
func forceRefresh(c echo.Context) bool {
	return c.QueryParam("refresh") == "true"
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// Menu handles GET /api/menu.
//
// @Summary      Navigation tree
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  domain.Menu
// @Router       /api/menu [get]
func (h *StorefrontHandler) Menu(c echo.Context) error {
	menu, err := h.menu.Tree(c.Request().Context(), forceRefresh(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, menu)
}

// Categories handles GET /api/categories.
func (h *StorefrontHandler) Categories(c echo.Context) error {
	list, err := h.categories.List(c.Request().Context(), forceRefresh(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// MainCategories handles GET /api/main-categories.
func (h *StorefrontHandler) MainCategories(c echo.Context) error {
	list, err := h.mainCategories.List(c.Request().Context(), forceRefresh(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Products handles GET /api/products.
func (h *StorefrontHandler) Products(c echo.Context) error {
	list, err := h.products.List(c.Request().Context(), forceRefresh(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Product handles GET /api/products/:id. A newer detail request supersedes a
// still-in-flight one; the superseded request resolves as cancelled.
func (h *StorefrontHandler) Product(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	p, err := h.products.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// ProductsByCategory handles GET /api/categories/:id/products.
func (h *StorefrontHandler) ProductsByCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	list, err := h.products.ListByCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Unauthorized handles GET /error/unauthorized, the landing target of the
// gated redirect-on-auth-error policy.
func (h *StorefrontHandler) Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error": "you are not authorized to view this page",
	})
}
