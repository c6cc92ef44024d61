package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/dkcommerce/storefront-gateway/internal/api/handler"
	"github.com/dkcommerce/storefront-gateway/internal/api/middleware"
	"github.com/dkcommerce/storefront-gateway/internal/core/service"
	"github.com/dkcommerce/storefront-gateway/internal/infrastructure/config"
	redisdb "github.com/dkcommerce/storefront-gateway/internal/infrastructure/db/redis"
	"github.com/dkcommerce/storefront-gateway/internal/infrastructure/queue"
	"github.com/dkcommerce/storefront-gateway/internal/infrastructure/upstream"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The refresh dispatcher's workers run until ctx is cancelled.
func NewRouter(ctx context.Context, cfg *config.Config, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Session.RedirectOnAuthError)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	tokens := redisdb.NewTokenStore(rdb)
	reader := service.NewTokenReader(tokens, log)
	client := upstream.New(upstream.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
	}, reader, log)

	sessions := service.NewSessionService(tokens, client, cfg.Session.RequireToken, log)
	categories := service.NewCategoryService(client)
	mainCategories := service.NewMainCategoryService(client)
	products := service.NewProductService(client)
	menu := service.NewMenuService(client, redisdb.NewTreeCache(rdb), log)

	refresher := service.NewCacheRefresher(categories, mainCategories, products, menu)
	dispatcher := queue.NewDispatcher(0, refresher, log)
	dispatcher.Start(ctx)

	authHandler := handler.NewAuthHandler(sessions)
	storeHandler := handler.NewStorefrontHandler(menu, categories, mainCategories, products)
	appointmentHandler := handler.NewAppointmentHandler(client)
	adminHandler := handler.NewAdminHandler(categories, mainCategories, products, dispatcher, client)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)

	// --- Public storefront routes ---
	apiGroup := e.Group("/api")
	apiGroup.GET("/menu", storeHandler.Menu)
	apiGroup.GET("/categories", storeHandler.Categories)
	apiGroup.GET("/categories/:id/products", storeHandler.ProductsByCategory)
	apiGroup.GET("/main-categories", storeHandler.MainCategories)
	apiGroup.GET("/products", storeHandler.Products)
	apiGroup.GET("/products/:id", storeHandler.Product)
	apiGroup.POST("/appointments", appointmentHandler.Submit)

	e.GET("/error/unauthorized", storeHandler.Unauthorized)

	// --- Admin back office (guarded) ---
	admin := e.Group("/admin", middleware.Guard(sessions, cfg.Session.StrictExpiryCheck))
	admin.GET("/categories", adminHandler.ListCategories)
	admin.POST("/categories", adminHandler.CreateCategory)
	admin.PUT("/categories/:id", adminHandler.UpdateCategory)
	admin.DELETE("/categories/:id", adminHandler.DeleteCategory)
	admin.GET("/main-categories", adminHandler.ListMainCategories)
	admin.POST("/main-categories", adminHandler.CreateMainCategory)
	admin.PUT("/main-categories/:id", adminHandler.UpdateMainCategory)
	admin.DELETE("/main-categories/:id", adminHandler.DeleteMainCategory)
	admin.GET("/products", adminHandler.ListProducts)
	admin.POST("/products", adminHandler.CreateProduct)
	admin.PUT("/products/:id", adminHandler.UpdateProduct)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)
	admin.POST("/uploads", adminHandler.Upload)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(rdb, client)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
