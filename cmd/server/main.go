package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"delhihomes/internal/artifacts"
	"delhihomes/internal/config"
	"delhihomes/internal/logging"
	"delhihomes/internal/metrics"
	"delhihomes/internal/pricing"
	"delhihomes/internal/server"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(logging.Options{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
		Dev:   cfg.IsDev(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ui, err := config.LoadYAMLConfig(cfg.ConfigFile)
	if err != nil {
		logger.Fatal("failed to load config file", zap.String("path", cfg.ConfigFile), zap.Error(err))
	}

	// The model is loaded once; the server refuses to start without it.
	loader := artifacts.NewLoader(cfg.ArtifactsDir)
	a, err := loader.Load()
	if err != nil {
		logger.Fatal("failed to load model artifacts", zap.String("dir", cfg.ArtifactsDir), zap.Error(err))
	}
	estimator := pricing.NewEstimator(a)
	logger.Info("model artifacts loaded",
		zap.String("dir", cfg.ArtifactsDir),
		zap.Int("features", estimator.NumFeatures()),
		zap.Int("locations", len(estimator.Locations())),
	)

	var recorder *metrics.Recorder
	if cfg.MetricsEnabled {
		recorder = metrics.NewRecorder(estimator)
	}

	srv := server.New(cfg, logger)
	srv.RegisterRoutes(estimator, loader, recorder, ui)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}
