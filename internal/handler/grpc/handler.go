// Package grpc exposes the standard gRPC health service for the medcare
// server.
package grpc

import (
	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ModelService is the health service name that reports whether the
// behavioral model is loaded.
const ModelService = "behavior-model"

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// the health statuses reflect the state of the loaded collaborators.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health service to server and publishes the current
// statuses.
func (h *Handler) Register(server grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(server, h.health)
	h.Refresh()
}

// Refresh recomputes the serving statuses. The overall service is always
// serving; the model service follows the prediction service.
func (h *Handler) Refresh() {
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	status := healthpb.HealthCheckResponse_NOT_SERVING
	if h.services != nil && h.services.PredictionService != nil && h.services.PredictionService.ModelLoaded() {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(ModelService, status)

	h.logger.Debug().Str("behavior_model", status.String()).Msg("gRPC health statuses published")
}

// Shutdown marks every service as not serving so that clients stop routing
// traffic before the listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// HealthServer returns the underlying health implementation.
func (h *Handler) HealthServer() healthpb.HealthServer {
	return h.health
}
