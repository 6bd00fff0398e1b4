package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/supchaser/getimgs/internal/app/delivery"
	"github.com/supchaser/getimgs/internal/app/downloader"
	"github.com/supchaser/getimgs/internal/app/extractor"
	"github.com/supchaser/getimgs/internal/app/fetcher"
	"github.com/supchaser/getimgs/internal/app/models"
	"github.com/supchaser/getimgs/internal/app/repository"
	"github.com/supchaser/getimgs/internal/app/transcoder"
	"github.com/supchaser/getimgs/internal/app/usecase"
	"github.com/supchaser/getimgs/internal/app/validator"
	"github.com/supchaser/getimgs/internal/config"
	"github.com/supchaser/getimgs/internal/middleware"
	"github.com/supchaser/getimgs/internal/utils/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("error initializing config: %v\n", err)
		os.Exit(1)
	}

	err = logger.Init(cfg.LogMode)
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("configuration loaded successfully")
	logger.Debug("debug mode enabled",
		zap.String("log_mode", cfg.LogMode),
		zap.Int("max_workers", cfg.MaxWorkers),
		zap.Int("max_per_host", cfg.MaxPerHost),
	)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		logger.Error("failed to create storage directory", zap.Error(err))
		os.Exit(1)
	}

	runCtx, cancelRuns := context.WithCancel(context.Background())
	defer cancelRuns()

	pageFetcher := fetcher.New(fetcher.Options{
		UserAgent:    cfg.UserAgent,
		Timeout:      cfg.RequestTimeout,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
		UpgradeHTTPS: cfg.UpgradeHTTPS,
	})

	runRepo := repository.CreateRunRepository()
	runUsecase := usecase.CreateRunUsecase(runRepo, usecase.Pipeline{
		Fetcher:    pageFetcher,
		Extractor:  extractor.New(),
		Downloader: downloader.New(pageFetcher),
		Validator:  validator.New(),
		Transcoder: transcoder.New(),
	}, usecase.Options{
		OutputDir:  cfg.OutputDir,
		MaxWorkers: cfg.MaxWorkers,
		MaxPerHost: cfg.MaxPerHost,
		Context:    runCtx,
	})
	runUsecase.SetUpdateCallback(func(status models.RunStatus) {
		logger.Debug("run progress",
			zap.String("run_id", status.ID),
			zap.String("state", string(status.State)),
			zap.Int("completed", status.Completed),
			zap.Int("total", status.Total),
			zap.Float64("progress", status.Progress),
		)
	})
	runDelivery := delivery.CreateRunDelivery(runUsecase)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	runDelivery.RegisterRoutes(apiRouter)

	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.PanicMiddleware)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)

	go func() {
		logger.Info("starting HTTP server",
			zap.String("address", server.Addr),
			zap.Any("config", cfg),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("failed to start server", zap.Error(err))
		os.Exit(1)
	case sig := <-quit:
		logger.Info("server is shutting down",
			zap.String("signal", sig.String()),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", zap.Error(err))
			os.Exit(1)
		}

		cancelRuns()
		runUsecase.Wait()

		logger.Info("server stopped")
	}
}
