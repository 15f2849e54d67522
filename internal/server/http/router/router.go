package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/saleshoes/storefront/internal/server/http/handlers"
	"github.com/saleshoes/storefront/internal/server/http/middleware"
)

// Credential endpoints get a strict per-client budget.
const (
	authRateLimit = rate.Limit(2)
	authRateBurst = 5
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	addressHandler := handlers.NewAddressHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/health", healthHandler.Check)

	api := engine.Group("/api")

	user := api.Group("/user")
	user.Use(middleware.RateLimit(authRateLimit, authRateBurst))
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	// The gateway redirects the buyer's browser here without auth context.
	api.GET("/payment/return", paymentHandler.Return)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/cart", cartHandler.List)
	authed.POST("/cart", cartHandler.Add)
	authed.DELETE("/cart", cartHandler.Clear)
	authed.DELETE("/cart/:id", cartHandler.Remove)
	authed.POST("/checkout", checkoutHandler.Submit)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.POST("/orders/:id/cancel", orderHandler.Cancel)
	authed.GET("/addresses", addressHandler.List)
	authed.POST("/addresses", addressHandler.Create)

	return engine
}
