package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/tableserve/gateway"
	"github.com/example/tableserve/pkg/cart"
	"github.com/example/tableserve/pkg/config"
	"github.com/example/tableserve/pkg/repository"
	"github.com/example/tableserve/pkg/service"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := buildLogger(&cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting tableserve",
		zap.String("address", cfg.Server.Addr()),
		zap.String("database", cfg.MongoDB.Database))

	// Connect MongoDB
	mongoRepo, err := repository.NewMongoRepository(&cfg.MongoDB)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	ctx := context.Background()
	if err := mongoRepo.Ping(ctx); err != nil {
		logger.Fatal("MongoDB ping failed", zap.Error(err))
	}
	logger.Info("MongoDB connected")

	// Connect Redis; carts and the catalog cache degrade without it
	redisRepo := repository.NewRedisRepository(&cfg.Redis, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	var catalogCache service.CatalogCache
	if err := redisRepo.Ping(ctx); err != nil {
		logger.Warn("Redis connection failed, catalog cache disabled", zap.Error(err))
	} else {
		logger.Info("Redis connected")
		catalogCache = redisRepo
	}

	cartStore := cart.NewRedisStore(redisRepo)

	// Services
	catalogSvc := service.NewCatalogService(mongoRepo, catalogCache, logger)
	orderSvc := service.NewOrderService(mongoRepo, cartStore, logger)
	adminSvc := service.NewAdminService(mongoRepo, logger)

	// Create gateway
	gw := gateway.NewGateway(cfg, logger, catalogSvc, orderSvc, adminSvc, cartStore)
	gw.SetupRoutes()

	// Start gateway in goroutine
	gwErr := make(chan error, 1)
	go func() {
		if err := gw.Start(); err != nil {
			gwErr <- err
		}
	}()

	logger.Info("Server started successfully")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-gwErr:
		logger.Fatal("Gateway error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := mongoRepo.Close(shutdownCtx); err != nil {
		logger.Warn("MongoDB disconnect failed", zap.Error(err))
	}
	if err := redisRepo.Close(); err != nil {
		logger.Warn("Redis close failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func buildLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	if len(cfg.OutputPaths) > 0 {
		zapCfg.OutputPaths = cfg.OutputPaths
	}

	return zapCfg.Build()
}
