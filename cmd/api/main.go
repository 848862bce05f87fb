package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pikalba/internal/config"
	"pikalba/internal/database"
	"pikalba/internal/handler"
	"pikalba/internal/promo"
	"pikalba/internal/repository"
	"pikalba/internal/router"
	"pikalba/internal/service"
	"pikalba/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting pikalba API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to the document store
	db, err := database.Connect(ctx, cfg.Mongo, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to document store: %w", err)
	}
	defer database.Disconnect(db, logger)

	// Initialize store gateway and indexes
	docStore := store.New(db, logger)
	if err := docStore.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(docStore, logger)
	orderRepo := repository.NewOrderRepository(docStore, logger)
	promoRepo := repository.NewPromoRepository(docStore, logger)
	contentRepo := repository.NewContentRepository(docStore, logger)
	feedbackRepo := repository.NewFeedbackRepository(docStore, logger)

	// Seed promo codes from files or S3 when enabled
	if cfg.Promo.SeedEnabled {
		fileLoader := promo.NewFileLoader(logger)
		var loader promo.Loader = fileLoader

		if cfg.S3.Enabled {
			s3Loader, err := promo.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 loader, falling back to local file system only")
			} else {
				loader = promo.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
			}
		}

		importer := promo.NewImporter(promoRepo, loader, logger)
		if _, err := importer.Import(ctx, cfg.Promo.SeedFiles); err != nil {
			return fmt.Errorf("failed to seed promo codes: %w", err)
		}
	}

	// Initialize services
	catalogService := service.NewCatalogService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, promoRepo, logger)
	recommendationService := service.NewRecommendationService(productRepo, feedbackRepo, logger)
	contentService := service.NewContentService(contentRepo, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(catalogService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService, logger)
	contentHandler := handler.NewContentHandler(contentService, logger)
	healthHandler := handler.NewHealthHandler(docStore, logger)

	// Initialize router
	mux := router.New(productHandler, orderHandler, recommendationHandler, contentHandler, healthHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
