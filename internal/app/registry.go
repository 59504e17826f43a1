package app

import (
	"database/sql"
	"os"

	"github.com/nicoxroll/frikioteca/internal/admin"
	"github.com/nicoxroll/frikioteca/internal/cart"
	"github.com/nicoxroll/frikioteca/internal/checkout"
	"github.com/nicoxroll/frikioteca/internal/customer"
	"github.com/nicoxroll/frikioteca/internal/middleware"
	"github.com/nicoxroll/frikioteca/internal/newsletter"
	"github.com/nicoxroll/frikioteca/internal/order"
	"github.com/nicoxroll/frikioteca/internal/outbox"
	"github.com/nicoxroll/frikioteca/internal/product"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, db *sql.DB, redisClient *redis.Client, logger *zap.Logger) {
	// --- Repositories ---
	customerRepo := customer.NewRepository(db)
	orderRepo := order.NewRepository(db)
	productRepo := product.NewRepository(db)
	outboxRepo := outbox.NewRepository(db)
	newsletterRepo := newsletter.NewRepository(db)

	// --- Cart store (slot durable por sesión) ---
	cartStore := cart.NewRedisStore(redisClient, logger)

	// --- Services ---
	cartService := cart.NewService(cartStore)
	productService := product.NewService(productRepo, os.Getenv("MODELS_BASE_URL"))
	customerService := customer.NewService(customerRepo)
	orderService := order.NewService(orderRepo, logger)
	newsletterService := newsletter.NewService(newsletterRepo, outboxRepo, logger)
	checkoutService := checkout.NewService(checkout.Deps{
		Carts:     cartService,
		Customers: customerRepo,
		Orders:    orderRepo,
		Outbox:    outboxRepo,
		Logger:    logger,
	})

	// --- Handlers ---
	cartHandler := cart.NewHandler(cartService)
	checkoutHandler := checkout.NewHandler(checkoutService)
	productHandler := product.NewHandler(productService)
	customerHandler := customer.NewHandler(customerService)
	orderHandler := order.NewHandler(orderService)
	newsletterHandler := newsletter.NewHandler(newsletterService)
	adminHandler := admin.NewHandler()

	// --- Routes ---
	api := router.Group("/api/v1")
	api.Use(middleware.SessionMiddleware())
	{
		product.RegisterRoutes(api, productHandler)
		cart.RegisterRoutes(api, cartHandler)
		checkout.RegisterRoutes(api, checkoutHandler)
		order.RegisterRoutes(api, orderHandler)
		newsletter.RegisterRoutes(api, newsletterHandler)

		adminGroup := admin.RegisterRoutes(api, adminHandler)
		product.RegisterAdminRoutes(adminGroup, productHandler)
		order.RegisterAdminRoutes(adminGroup, orderHandler)
		customer.RegisterAdminRoutes(adminGroup, customerHandler)
	}
}
