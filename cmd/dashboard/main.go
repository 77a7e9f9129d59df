package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/cache"
	"github.com/Ayash-Bera/L1Beat-frontend/internal/config"
	"github.com/Ayash-Bera/L1Beat-frontend/internal/fetch"
	"github.com/Ayash-Bera/L1Beat-frontend/internal/l1beat"
	"github.com/Ayash-Bera/L1Beat-frontend/internal/poller"
	"github.com/Ayash-Bera/L1Beat-frontend/internal/server"
	"github.com/Ayash-Bera/L1Beat-frontend/internal/store"
)

func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := newLogger(cfg)
	defer logger.Sync() //nolint:errcheck

	if cfg.App.Environment == "development" {
		logger.Info("config loaded", zap.String("config", cfg.SafeString()))
	}

	var cacheStore cache.Store
	redisStore, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}
	if redisStore != nil {
		cacheStore = redisStore
		logger.Info("using Redis cache", zap.String("host", cfg.Redis.Host))
		defer redisStore.Close() //nolint:errcheck
	} else {
		cacheStore = cache.NewMemory(nil)
		logger.Info("using in-memory cache")
	}

	fetchClient := fetch.New(logger,
		fetch.WithRetries(cfg.API.Retries),
		fetch.WithBackoffFactor(cfg.API.BackoffFactor),
		fetch.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
	)

	apiClient := l1beat.NewClient(cfg.API.BaseURL, fetchClient, cacheStore, logger,
		l1beat.WithTTLs(
			time.Duration(cfg.API.CacheTTLMinutes)*time.Minute,
			time.Duration(cfg.API.HealthTTLSeconds)*time.Second,
		),
	)

	st := store.New(apiClient, logger,
		store.WithHistoryDays(cfg.API.TVLHistoryDays, cfg.API.TPSHistoryDays),
	)

	p := poller.New(st, logger,
		time.Duration(cfg.Poll.DataIntervalMinutes)*time.Minute,
		time.Duration(cfg.Poll.HealthIntervalMinutes)*time.Minute,
	)

	logger.Info("running initial refresh")
	initCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	p.RunNow(initCtx)
	cancel()

	if err := p.Start(); err != nil {
		logger.Fatal("failed to start poller", zap.Error(err))
	}

	srv := server.NewServer(cfg, st, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("dashboard started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down gracefully")

	p.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	var zapCfg zap.Config
	if cfg.App.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if level, err := zapcore.ParseLevel(cfg.App.LogLevel); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	return logger
}
