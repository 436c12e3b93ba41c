package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"menuproxy-api/internal/cache"
	"menuproxy-api/internal/config"
	"menuproxy-api/internal/handler"
	"menuproxy-api/internal/router"
	"menuproxy-api/internal/service"
	"menuproxy-api/internal/upstream"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting MenuProxy API...")

	// Load configuration
	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Initialize cache provider based on config
	var cacheProvider cache.Provider
	switch cfg.Cache.Type {
	case "redis":
		cacheProvider = cache.NewRedisProvider(cache.RedisConfig{
			Addr:      cfg.Cache.RedisAddress(),
			Password:  cfg.Cache.RedisPassword,
			DB:        cfg.Cache.RedisDB,
			Namespace: cfg.Cache.RedisNamespace,
		})
		log.Println("Redis cache provider initialized")
	default: // memory
		cacheProvider = cache.NewMemoryProvider()
		log.Println("Memory cache provider initialized")
	}
	defer cacheProvider.Close()

	// Initialize commerce API client
	squareClient := upstream.NewClient(upstream.Config{
		BaseURL:     cfg.Square.BaseURL,
		AccessToken: cfg.Square.AccessToken,
		Timeout:     cfg.Square.Timeout,
	})

	// Initialize services
	catalogService := service.NewCatalogService(cacheProvider, squareClient, cfg.Cache.TTL)
	if catalogService == nil {
		log.Fatal("Failed to initialize catalog service")
	}

	// Initialize handlers
	healthHandler := handler.New(cacheProvider, cfg.App.Version)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	webhookHandler := handler.NewWebhookHandler(catalogService)

	// Create router
	r := router.New(router.Config{
		Handler:        healthHandler,
		CatalogHandler: catalogHandler,
		WebhookHandler: webhookHandler,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
