package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-suggestion/config"
	_ "task-suggestion/docs" // Swagger docs
	"task-suggestion/internal/app"
	"task-suggestion/internal/httpserver"
	"task-suggestion/internal/middleware"
	"task-suggestion/pkg/log"
)

// @title       Task Suggestion API
// @description Suggests follow-up tasks for a project description from a catalog of past projects.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Task Suggestion API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Qdrant URL: %s", cfg.Qdrant.URL)

	// 3. Domains
	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize application: %v", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := application.Close(); cerr != nil {
			logger.Warnf(ctx, "Failed to close catalog: %v", cerr)
		}
	}()

	if cfg.HTTPServer.AdminToken == "" {
		logger.Warn(ctx, "http_server.admin_token is empty, /reload-data is not protected")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		Middleware: middleware.Config{
			AdminToken:     cfg.HTTPServer.AdminToken,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			RequestTimeout: cfg.HTTPServer.RequestTimeout,
		},
		SuggestionUseCase: application.Suggestion,
		CatalogUseCase:    application.Catalog,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
