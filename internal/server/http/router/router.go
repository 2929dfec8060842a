package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/pricecompare/internal/server/http/handlers"
	"github.com/polkiloo/pricecompare/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, tokens middleware.TokenParser, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade, facade)
	orderHandler := handlers.NewOrderHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	catalog := api.Group("/catalog")
	catalog.GET("/stores", catalogHandler.Stores)
	catalog.GET("/products", catalogHandler.Products)
	catalog.GET("/products/:id", catalogHandler.Product)

	user := api.Group("")
	user.Use(middleware.AuthRequired(tokens))
	user.GET("/auth/profile", authHandler.Profile)
	user.PUT("/auth/profile", authHandler.UpdateProfile)

	user.GET("/cart", cartHandler.Get)
	user.DELETE("/cart", cartHandler.Clear)
	user.POST("/cart/items", cartHandler.AddItem)
	user.PUT("/cart/items/:productId", cartHandler.SetItem)
	user.DELETE("/cart/items/:productId", cartHandler.RemoveItem)
	user.GET("/cart/quotes", cartHandler.Quotes)

	user.POST("/checkout", orderHandler.Checkout)
	user.GET("/orders", orderHandler.List)
	user.DELETE("/orders/:id", orderHandler.Delete)

	admin := user.Group("/admin")
	admin.Use(middleware.AdminRequired())
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/orders", adminHandler.ListOrders)
	admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)
	admin.DELETE("/orders/:id", adminHandler.DeleteOrder)

	return engine
}
