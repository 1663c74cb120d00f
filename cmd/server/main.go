package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/burgerqueen/burger-queen-api/internal/api"
	"github.com/burgerqueen/burger-queen-api/internal/core/service"
	"github.com/burgerqueen/burger-queen-api/internal/infrastructure/config"
	mongodb "github.com/burgerqueen/burger-queen-api/internal/infrastructure/db/mongo"
	redisdb "github.com/burgerqueen/burger-queen-api/internal/infrastructure/db/redis"
	"github.com/burgerqueen/burger-queen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// Redis is optional: without it the product cache degrades to
	// pass-through reads.
	var rdb *redisv9.Client
	if tmp, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, running without product cache")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error().Err(err).Msg("redis close failed")
			}
		}()
	}

	// Bootstrap admin: create-if-absent, idempotent across restarts.
	users := service.NewUserService(mongodb.NewUserRepository(db), log)
	if err := users.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	e := api.NewRouter(db, rdb, cfg.JWTSecret, cfg.TokenTTL, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
