package grpc

import (
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ContactServiceName is the service name reported by the health endpoint
// alongside the overall ("") status.
const ContactServiceName = "contacts.ContactService"

// Handler is the root gRPC transport handler.
//
// It exposes the standard gRPC health protocol so that orchestrators can probe
// the contact server without going through the REST API.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger. Health status starts as NOT_SERVING until [Handler.Register] is
// called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ContactServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches every gRPC service of the handler to s and marks them as
// serving.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ContactServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown switches every status to NOT_SERVING. Later status updates are
// ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
