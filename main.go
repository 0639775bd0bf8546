package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	appLogger "github.com/tripforge/tripforge-api/app/logger"
	"github.com/tripforge/tripforge-api/app/tracer"
	"github.com/tripforge/tripforge-api/config"
	"github.com/tripforge/tripforge-api/internal/api/document"
	generativeAI "github.com/tripforge/tripforge-api/internal/api/generative_ai"
	"github.com/tripforge/tripforge-api/internal/api/images"
	"github.com/tripforge/tripforge-api/internal/api/share"
	"github.com/tripforge/tripforge-api/internal/api/trip"
	api "github.com/tripforge/tripforge-api/internal/router"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails.
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	metricsHandler := tracer.InitTracingAndMetrics("tripforge-api")

	// --- Dependency wiring ---
	aiClient, err := generativeAI.NewAIClient(ctx, generativeAI.Config{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		BaseURL:  cfg.LLM.BaseURL,
	}, logger)
	if err != nil {
		logger.Error("Failed to initialize AI client", slog.Any("error", err))
		os.Exit(1)
	}

	imageService := images.NewServiceImpl(images.Config{
		PexelsAPIKey:      os.Getenv("PEXELS_API_KEY"),
		UnsplashAccessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
		RetryAttempts:     cfg.Images.RetryAttempts,
		RetryDelay:        cfg.Images.RetryDelay,
		RequestTimeout:    cfg.Images.RequestTimeout,
	}, nil, logger)
	// Pre-establish the provider connection so the first request is fast.
	go imageService.Warm(ctx)

	tripService := trip.NewServiceImpl(aiClient, imageService, logger)
	tripHandler := trip.NewTripHandler(tripService, imageService, aiClient.Configured(), logger)

	documentService := document.NewServiceImpl(cfg.PDF.FontPath, logger)
	documentHandler := document.NewDocumentHandler(documentService, logger)

	shareService := share.NewServiceImpl(logger)
	shareHandler := share.NewShareHandler(shareService, logger)

	// --- Router setup ---
	mainRouter := api.SetupRouter(&api.Config{
		TripHandler:     tripHandler,
		DocumentHandler: documentHandler,
		ShareHandler:    shareHandler,
	})

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(middleware.Compress(5, "application/json"))
	router.Mount("/", mainRouter)

	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second, // model calls routinely run long
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
	metricsSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.MetricsPort),
		Handler: metricsHandler,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("Starting metrics server", slog.String("address", metricsSrv.Addr))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()

		logger.Info("Shutdown signal received, starting graceful shutdown...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
		}
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Metrics server graceful shutdown failed", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" {
		// Colored logs for development
		logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}))
		log.Println("Initialized development logger (tint)")
		return logger
	}

	// JSON logs for production
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	log.Println("Initialized production logger (JSON)")
	return logger
}
