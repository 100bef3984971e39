package main

// @title SmartMap API
// @version 1.0.0
// @description Бэкенд каталога SmartMap: разрешение URL сайта, фасетный поиск организаций, прокси к WordPress CMS и синхронизация поискового индекса.
// @description
// @description Основные возможности:
// @description - Разрешение пути /{language}/{region}/{page} в регион, язык и страницу
// @description - Поиск организаций по тексту, тегам, региону и часам работы
// @description - Вебхуки CMS для обновления индекса
// @description - robots.txt и sitemap.xml

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name SK-ApiKey

// @securityDefinitions.apikey WebhookKeyAuth
// @in header
// @name x-wp-webhook-key

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/smartmap-web/docs"
	"github.com/smartmap-web/internal/config"
	httpDelivery "github.com/smartmap-web/internal/delivery/http"
	"github.com/smartmap-web/internal/delivery/http/handler"
	"github.com/smartmap-web/internal/infrastructure/cms"
	"github.com/smartmap-web/internal/pkg/logger"
	"github.com/smartmap-web/internal/repository/cache"
	redisRepo "github.com/smartmap-web/internal/repository/redis"
	"github.com/smartmap-web/internal/repository/search"
	"github.com/smartmap-web/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "smartmap-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting SmartMap API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("search_backend", cfg.Elastic.Backend),
		zap.String("cms", cfg.CMS.BaseURL),
	)

	// 3. Open search index store
	store, err := search.OpenStore(cfg.Elastic, log)
	if err != nil {
		log.Fatal("Failed to open search store", zap.Error(err))
	}

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := store.Ping(ctx); err != nil {
		log.Fatal("Search store health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	cmsClient := cms.NewClient(&cfg.CMS, log)
	contentRepo := cms.NewProxy(cmsClient, cacheRepo, cfg.Cache, log)

	businessRepo := search.NewBusinessRepository(store, cfg.Elastic.BusinessIndex, cfg.Elastic.MaxResultSize, cfg.Location(), log)
	regionRepo := search.NewRegionRepository(store, cfg.Elastic.RegionIndex, cfg.Elastic.MaxResultSize, log)
	tagRepo := search.NewTagRepository(store, cfg.Elastic.TagIndex, cfg.Elastic.MaxResultSize, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	routeUC := usecase.NewRouteUseCase(contentRepo, businessRepo, regionRepo, log)

	businessUC := usecase.NewBusinessUseCase(
		businessRepo,
		regionRepo,
		tagRepo,
		contentRepo,
		cfg.Site.ItemsPerPage,
		log,
	)

	indexUC := usecase.NewIndexUseCase(
		contentRepo,
		businessRepo,
		regionRepo,
		tagRepo,
		streamRepo,
		cmsClient.BaseURL(),
		log,
	)

	siteUC := usecase.NewSiteUseCase(
		contentRepo,
		businessRepo,
		regionRepo,
		cacheRepo,
		cfg.Site.Host,
		cfg.Cache.SitemapTTL,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	handlers := httpDelivery.Handlers{
		Business: handler.NewBusinessHandler(businessUC, log),
		Webhook:  handler.NewWebhookHandler(indexUC, log),
		Page:     handler.NewPageHandler(routeUC, siteUC, log),
		Health: handler.NewHealthHandler(map[string]handler.HealthCheck{
			"search": store.Ping,
			"redis":  redisClient.Health,
		}, log),
	}

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, handlers)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
