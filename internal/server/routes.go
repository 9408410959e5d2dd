package server

import (
	"delhihomes/internal/config"
	"delhihomes/internal/handlers"
	"delhihomes/internal/handlers/api"
	"delhihomes/internal/metrics"
	"delhihomes/internal/pricing"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(estimator *pricing.Estimator, readiness handlers.Readiness, recorder *metrics.Recorder, ui *config.YAMLConfig) {
	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(estimator, s.Cfg, ui.Dashboard, recorder, s.Log)
	priceHandler := api.NewPriceHandler(estimator, recorder, s.Log)
	probeHandler := handlers.NewProbeHandler(readiness)

	// Dashboard
	s.App.Get("/", dashboardHandler.Index)
	s.App.Post("/estimate", dashboardHandler.Estimate)

	// JSON API
	s.App.Get("/get_location_names", priceHandler.LocationNames)
	s.App.Post("/predict_home_price", priceHandler.Predict)
	s.App.Get("/test", api.Ping)

	// Probes
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	if s.Cfg.MetricsEnabled && recorder != nil {
		s.App.Get("/metrics", recorder.Handler())
	}
}
