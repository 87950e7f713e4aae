package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "nftsub_backend/internal/http"
	"nftsub_backend/internal/http/router"
	"nftsub_backend/internal/merchant"
	"nftsub_backend/internal/merchant/repository"
	"nftsub_backend/internal/metadata"
	"nftsub_backend/platform/config"
	"nftsub_backend/platform/logger"
	"nftsub_backend/platform/validator"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr, "store", cfg.StoreBackend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	store, closeStore, err := newStore(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize merchant store", "error", err)
		panic("failed to initialize merchant store: " + err.Error())
	}
	if closeStore != nil {
		defer closeStore()
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	merchantModule := merchant.NewModule(store, cfg, val, log)
	metadataModule := metadata.NewModule(merchantModule.Store(), cfg)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: store,
		Modules: []apphttp.Module{
			merchantModule,
			metadataModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// newStore selects the merchant store backend once at startup. The durable
// backend is wrapped with an in-memory fallback so a backend outage degrades
// service instead of failing it; the memory backend stands alone.
func newStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.Store, func(), error) {
	if cfg.StoreBackend != config.StoreBackendDurable {
		log.Info("merchant store using in-memory backend; records will not survive a restart")
		return repository.NewMemory(), nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	client := redis.NewClient(opt)

	// A failed ping is logged but not fatal: the failover store keeps the
	// service answering until the backend recovers.
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("durable backend unreachable at startup, serving degraded", "error", err)
	}

	store := repository.NewFailover(repository.NewRedis(client), repository.NewMemory(), log)
	return store, func() { _ = client.Close() }, nil
}
