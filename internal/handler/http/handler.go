package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

type Handler struct {
	services *service.Services

	corsOrigins []string
	traceIDs    *utils.UUIDGenerator
	registry    *prometheus.Registry
	metrics     *httpMetrics

	// sitemap is filled once all routes are registered in Init.
	sitemap models.Sitemap

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()

	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		corsOrigins: cfg.CORSAllowedOrigins,
		traceIDs:    utils.NewUUIDGenerator(),
		registry:    registry,
		metrics:     newHTTPMetrics(registry),
		logger:      logger,
	}
}
