package http

import (
	"time"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration

	registry *prometheus.Registry
	metrics  *Metrics

	logger *logger.Logger
}

// NewHandler builds the HTTP handler with its own metrics registry, exposed
// on /metrics.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		registry:       registry,
		metrics:        NewMetrics(registry),
		logger:         logger,
	}
}
