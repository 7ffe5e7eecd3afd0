package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/shopcore/catalog/internal/infrastructure/config"
	"github.com/shopcore/catalog/internal/infrastructure/logger"
	"github.com/shopcore/catalog/internal/interfaces/http/handler"
	"github.com/shopcore/catalog/internal/interfaces/http/middleware"
)

// Handlers bundles the HTTP handlers the router wires up
type Handlers struct {
	System   *handler.SystemHandler
	Item     *handler.ItemHandler
	Category *handler.CategoryHandler
	Search   *handler.SearchHandler
	Outbox   *handler.OutboxHandler
}

// New builds the gin engine with the full middleware chain and all routes
func New(cfg *config.Config, log *zap.Logger, handlers Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())

	if cfg.Telemetry.Enabled {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}

	engine.GET("/health", handlers.System.Health)

	api := engine.Group("/api/v1")

	system := api.Group("/system")
	{
		system.GET("/info", handlers.System.GetSystemInfo)

		outbox := system.Group("/outbox")
		{
			outbox.GET("", handlers.Outbox.List)
			outbox.GET("/pending", handlers.Outbox.GetPending)
			outbox.GET("/stats", handlers.Outbox.GetStats)
			outbox.GET("/aggregate/:id", handlers.Outbox.GetByAggregate)
			outbox.GET("/:id", handlers.Outbox.GetEvent)
		}
	}

	catalog := api.Group("/catalog")
	{
		items := catalog.Group("/items")
		{
			items.POST("", handlers.Item.Create)
			items.GET("", handlers.Item.List)
			items.GET("/sku/:sku", handlers.Item.GetBySKU)
			items.GET("/:id", handlers.Item.GetByID)
			items.PATCH("/:id", handlers.Item.UpdateDetails)
			items.DELETE("/:id", handlers.Item.Delete)
			items.PUT("/:id/price", handlers.Item.UpdatePrice)
			items.PUT("/:id/stock", handlers.Item.UpdateStock)
			items.PUT("/:id/category", handlers.Item.ChangeCategory)
			items.POST("/:id/hide", handlers.Item.Hide)
			items.POST("/:id/show", handlers.Item.Show)
			items.POST("/:id/attributes", handlers.Item.AddAttribute)
			items.DELETE("/:id/attributes/:name", handlers.Item.RemoveAttribute)
		}

		categories := catalog.Group("/categories")
		{
			categories.POST("", handlers.Category.Create)
			categories.GET("", handlers.Category.List)
			categories.GET("/:id", handlers.Category.GetByID)
			categories.POST("/:id/subcategories", handlers.Category.AddSubcategory)
			categories.POST("/:id/deactivate", handlers.Category.Deactivate)
		}

		catalog.GET("/search", handlers.Search.Search)
		catalog.GET("/search/products/:id", handlers.Search.GetByProduct)
	}

	return engine
}
