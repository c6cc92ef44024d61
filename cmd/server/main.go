package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dkcommerce/storefront-gateway/internal/api"
	"github.com/dkcommerce/storefront-gateway/internal/infrastructure/config"
	redisdb "github.com/dkcommerce/storefront-gateway/internal/infrastructure/db/redis"
	"github.com/dkcommerce/storefront-gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:           cfg.Redis.Addr,
		DB:             cfg.Redis.DB,
		ConnectTimeout: cfg.Redis.ConnectTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	e := api.NewRouter(ctx, cfg, rdb, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("storefront gateway started")

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("storefront gateway stopped cleanly")
}
