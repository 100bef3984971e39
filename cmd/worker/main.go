package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/smartmap-web/internal/config"
	"github.com/smartmap-web/internal/infrastructure/cms"
	"github.com/smartmap-web/internal/pkg/logger"
	"github.com/smartmap-web/internal/repository/cache"
	redisRepo "github.com/smartmap-web/internal/repository/redis"
	"github.com/smartmap-web/internal/repository/search"
	"github.com/smartmap-web/internal/usecase"
	"github.com/smartmap-web/internal/worker"
	"github.com/smartmap-web/internal/worker/indexsync"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "smartmap-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting SmartMap index sync worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.String("search_backend", cfg.Elastic.Backend))

	if cfg.Elastic.Backend == "memory" {
		log.Warn("Worker writes to its own in-memory index, the API will not see the result")
	}

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
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.Ping(pingCtx); err != nil {
		log.Fatal("Search store health check failed", zap.Error(err))
	}
	pingCancel()

	// 5. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	cmsClient := cms.NewClient(&cfg.CMS, log)
	contentRepo := cms.NewProxy(cmsClient, cacheRepo, cfg.Cache, log)

	businessRepo := search.NewBusinessRepository(store, cfg.Elastic.BusinessIndex, cfg.Elastic.MaxResultSize, cfg.Location(), log)
	regionRepo := search.NewRegionRepository(store, cfg.Elastic.RegionIndex, cfg.Elastic.MaxResultSize, log)
	tagRepo := search.NewTagRepository(store, cfg.Elastic.TagIndex, cfg.Elastic.MaxResultSize, log)

	// 6. Initialize use cases
	indexUC := usecase.NewIndexUseCase(
		contentRepo,
		businessRepo,
		regionRepo,
		tagRepo,
		streamRepo,
		cmsClient.BaseURL(),
		log,
	)

	// 7. Initialize workers
	syncWorker := indexsync.NewIndexSyncWorker(
		streamRepo,
		indexUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		log,
	)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(syncWorker)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info("Received shutdown signal")
	case <-workerManager.Done():
		log.Error("All workers exited", zap.Error(workerManager.Err()))
	}

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
