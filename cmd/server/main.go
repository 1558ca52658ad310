package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikov/simplenote-backend/internal/api"
	"github.com/nikov/simplenote-backend/internal/auth"
	"github.com/nikov/simplenote-backend/internal/config"
	"github.com/nikov/simplenote-backend/internal/repository/postgres"
	"github.com/nikov/simplenote-backend/internal/service"
	"github.com/nikov/simplenote-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.Init(cfg.Environment)
	defer logger.Sync()

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Sugar.Fatalf("failed to connect to database: %v", err)
	}

	repos := postgres.NewRepositories(db)
	tokens := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	services := service.NewServices(repos, tokens)
	router := api.NewRouter(services, tokens, cfg, db)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Sugar.Infof("server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Sugar.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar.Fatalf("server forced to shutdown: %v", err)
	}

	logger.Sugar.Info("server stopped")
}
