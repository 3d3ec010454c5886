package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/userhub/account-service/internal/api"
	"github.com/userhub/account-service/internal/core/service"
	"github.com/userhub/account-service/internal/infrastructure/config"
	"github.com/userhub/account-service/internal/infrastructure/crypto"
	mongodb "github.com/userhub/account-service/internal/infrastructure/db/mongo"
	redisdb "github.com/userhub/account-service/internal/infrastructure/db/redis"
	"github.com/userhub/account-service/internal/infrastructure/queue"
	"github.com/userhub/account-service/internal/infrastructure/token"
	"github.com/userhub/account-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// identityCacheTTL is the default cache lifetime for resolved identities;
// it is capped at the token TTL so cached entries never outlive the token
// that produced them.
const identityCacheTTL = 5 * time.Minute

// @title        User Account Service API
// @version      1.0
// @description  Registration, authentication, and account resolution.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "account-service",
		Pretty:  cfg.Env == "development",
	})

	if cfg.Auth.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Durable store ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	// --- Cache ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	cacheTTL := identityCacheTTL
	if cfg.Auth.TokenTTL < cacheTTL {
		cacheTTL = cfg.Auth.TokenTTL
	}

	// --- Services ---
	users := mongodb.NewUserRepository(db)
	activityStore := mongodb.NewActivityRepository(db)
	activitySvc := service.NewActivityService(activityStore, log)

	dispatcher := queue.NewDispatcher(0, activitySvc, log)
	dispatcher.Start(ctx)

	issuer := token.NewJWTIssuer(cfg.Auth.JWTSecret)
	accounts := service.NewAccountService(
		users,
		crypto.NewBcryptHasher(cfg.Auth.BcryptCost),
		issuer,
		redisdb.NewIdentityCache(rdb, cacheTTL, log),
		dispatcher,
		cfg.Auth.TokenTTL,
		log,
	)

	// --- HTTP ---
	e := api.NewRouter(accounts, activitySvc, issuer, db, rdb, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("account service started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
