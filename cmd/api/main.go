package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"item-catalog/config"
	_ "item-catalog/docs" // Swagger docs
	"item-catalog/internal/httpserver"
	"item-catalog/pkg/log"
	"item-catalog/pkg/mongodb"
)

// @title       Item Catalog API
// @description CRUD service for catalog items backed by MongoDB.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Item Catalog...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Document store
	client, err := mongodb.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MongoDB: ", err)
		return
	}
	defer func() {
		if err := mongodb.Disconnect(context.Background(), client); err != nil {
			logger.Error(ctx, "Failed to disconnect MongoDB: ", err)
		}
	}()
	logger.Infof(ctx, "Connected to MongoDB, database %q", cfg.Mongo.Database)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		MongoDB:         client.Database(cfg.Mongo.Database),
		ItemCollection:  cfg.Mongo.Collection,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
