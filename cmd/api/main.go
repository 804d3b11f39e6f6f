// Storefront API server.
//
// @title           Storefront API
// @version         1.0
// @description     REST backend for the solestore shoe storefront.
// @BasePath        /api
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/solestore/storefront-api/docs"
	"github.com/solestore/storefront-api/internal/api"
	"github.com/solestore/storefront-api/internal/core/service"
	"github.com/solestore/storefront-api/internal/infrastructure/config"
	mongostore "github.com/solestore/storefront-api/internal/infrastructure/db/mongo"
	"github.com/solestore/storefront-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	authRepo := mongostore.NewAuthRepository(db)
	productRepo := mongostore.NewProductRepository(db)
	if err := authRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure user indexes")
	}
	if err := productRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure product indexes")
	}

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	if err := authService.SeedAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}

	e := api.NewRouter(db, cfg.JWTSecret, cfg.TokenTTL, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server running")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
