package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/inkprint/teeshop/internal/server/http/handlers"
	"github.com/inkprint/teeshop/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. Every route
// is public; there is no authentication layer anywhere on the surface.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	serviceHandler := handlers.NewServiceHandler()
	designHandler := handlers.NewDesignHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	refundHandler := handlers.NewRefundHandler(facade)

	engine.GET("/", serviceHandler.Info)
	engine.GET("/health", serviceHandler.Health)

	api := engine.Group("/api")
	api.POST("/design", designHandler.Create)
	api.POST("/payment", paymentHandler.Process)
	api.GET("/order/:orderID", orderHandler.Get)
	api.GET("/orders", orderHandler.List)
	api.POST("/refund", refundHandler.Process)

	return engine
}
