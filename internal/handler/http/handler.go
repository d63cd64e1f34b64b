package http

import (
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/VictoriaMetrics/metrics"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Set

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics.NewSet(),
		logger:   logger,
	}
}
