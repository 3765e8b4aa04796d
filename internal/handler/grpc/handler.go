// Package grpc exposes the standard gRPC health service so orchestrators can
// probe the authentication server.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-session-auth/internal/logger"
)

// ServiceName is the health-check service name reported next to the
// server-wide "" entry.
const ServiceName = "go-session-auth"

// Handler is the root gRPC transport handler.
//
// A handler instance is created once at startup and shared by the gRPC
// server. It starts in the SERVING state.
type Handler struct {
	health *health.Server

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] reporting SERVING for the server and
// for [ServiceName].
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(true)

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing switches the reported status of every entry.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
	h.logger.Info().Str("status", status.String()).Msg("health status changed")
}

// Shutdown reports NOT_SERVING and ignores later status updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
