package license

import (
	"log/slog"

	"licensedecoder/internal/license/handler"
	"licensedecoder/internal/license/metrics"
	"licensedecoder/internal/license/service"
	"licensedecoder/internal/platform/config"
)

// Service exposes barcode decoding, batch decoding and inspection.
type Service = service.Service

// Handler wires HTTP endpoints to the license service.
type Handler = handler.Handler

// NewService constructs the license service from the decode policy.
func NewService(cfg config.License, logger *slog.Logger, m *metrics.Metrics) *Service {
	return service.New(
		service.WithLogger(logger),
		service.WithMetrics(m),
		service.WithRequireDates(cfg.RequireDates),
		service.WithMaxBatch(cfg.MaxBatch),
		service.WithBatchConcurrency(cfg.BatchConcurrency),
	)
}

// NewHandler constructs an HTTP handler for the license routes.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
