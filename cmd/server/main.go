package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/archiveinsight/backend/config"
	httpDelivery "github.com/archiveinsight/backend/internal/delivery/http"
	"github.com/archiveinsight/backend/internal/infrastructure/archive"
	"github.com/archiveinsight/backend/internal/infrastructure/cache"
	"github.com/archiveinsight/backend/internal/infrastructure/extraction"
	"github.com/archiveinsight/backend/internal/infrastructure/metrics"
	"github.com/archiveinsight/backend/internal/usecase"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ArchiveInsight Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Archive Type: %s", cfg.Archive.Type)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize infrastructure dependencies
	store, err := archive.Open(ctx, cfg.Archive.Type, cfg.Archive.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open archive: %v", err)
	}
	defer store.Close()

	reportCache, err := cache.Open(ctx, cfg.Cache.Type, cfg.Cache.RedisURL)
	if err != nil {
		log.Fatalf("Failed to open cache: %v", err)
	}
	if reportCache != nil {
		defer reportCache.Close()
		log.Printf("Cache TTL: %s", cfg.Cache.TTL)
	}

	extractor := extraction.NewExtractor(extraction.Config{
		EnableDebugLogging: cfg.Analysis.EnableDebugLogging,
	})

	policy, err := usecase.ParseGatingPolicy(cfg.Analysis.GatingPolicy)
	if err != nil {
		log.Fatalf("Invalid analysis configuration: %v", err)
	}

	// Initialize usecase layer
	analysisService := usecase.NewAnalysisService(
		store,
		extractor,
		reportCache,
		usecase.AnalysisServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			Policy:             policy,
			AllowedExtensions:  cfg.Upload.AllowedExtensions,
			ExtraTechSynonyms:  cfg.Analysis.TechSynonyms,
			EnableDebugLogging: cfg.Analysis.EnableDebugLogging,
		},
	).WithMetrics(metrics.NewRecorder())

	log.Printf("Analysis: policy=%s, extensions=%v, debug=%v",
		analysisService.Policy(),
		cfg.Upload.AllowedExtensions,
		cfg.Analysis.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(analysisService, store, cfg.Upload.MaxBytes)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	case <-ctx.Done():
		log.Printf("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Could not shut down gracefully: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
