package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	catalogapp "github.com/shopcore/catalog/internal/application/catalog"
	eventapp "github.com/shopcore/catalog/internal/application/event"
	"github.com/shopcore/catalog/internal/infrastructure/cache"
	"github.com/shopcore/catalog/internal/infrastructure/config"
	"github.com/shopcore/catalog/internal/infrastructure/event"
	"github.com/shopcore/catalog/internal/infrastructure/logger"
	"github.com/shopcore/catalog/internal/infrastructure/persistence"
	"github.com/shopcore/catalog/internal/interfaces/http/handler"
	"github.com/shopcore/catalog/internal/interfaces/http/router"
)

//	@title			Catalog API
//	@version		1.0
//	@description	Product catalog service with full-text search and a transactional outbox

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting catalog service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection with a zap-backed gorm logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := db.EnableTracing(cfg.Database.DBName); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}

	// Event serializer with all catalog event types registered
	eventSerializer := event.NewCatalogEventSerializer()
	outboxPublisher := event.NewOutboxPublisher(eventSerializer)

	// Repositories; aggregate repositories write outbox rows in the same
	// transaction as the aggregate
	itemRepo := persistence.NewGormCatalogItemRepository(db.DB, outboxPublisher)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB, outboxPublisher)
	indexRepo := persistence.NewGormProductIndexRepository(db.DB)
	outboxRepo := event.NewGormOutboxRepository(db.DB)

	// Search result cache: Redis when enabled, otherwise uncached
	var searchCache catalogapp.SearchResultCache
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedisSearchCache(cfg.Redis,
			cache.WithSearchTTL(cfg.Cache.TTL),
			cache.WithSearchCacheLogger(log),
		)
		if err != nil {
			log.Warn("Redis unavailable, using in-memory search cache", zap.Error(err))
			memCache := cache.NewInMemorySearchCache(cfg.Cache.TTL)
			defer memCache.Close()
			searchCache = memCache
		} else {
			defer func() {
				if err := redisCache.Close(); err != nil {
					log.Error("Error closing search cache", zap.Error(err))
				}
			}()
			searchCache = redisCache
			log.Info("Search cache connected", zap.Duration("ttl", cfg.Cache.TTL))
		}
	}

	// Application services
	itemService := catalogapp.NewItemService(itemRepo, categoryRepo, indexRepo, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, log)
	searchService := catalogapp.NewSearchService(indexRepo, searchCache, log)
	outboxService := eventapp.NewOutboxService(outboxRepo, log)

	// HTTP layer
	engine := router.New(cfg, log, router.Handlers{
		System:   handler.NewSystemHandler(db.Ping),
		Item:     handler.NewItemHandler(itemService),
		Category: handler.NewCategoryHandler(categoryService),
		Search:   handler.NewSearchHandler(searchService),
		Outbox:   handler.NewOutboxHandler(outboxService),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
