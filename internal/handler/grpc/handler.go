// Package grpc implements the gRPC transport of the footy-tipping server.
//
// The listener only exposes the standard grpc.health.v1 service, so
// orchestrators can probe the server without speaking HTTP. Every unary call
// passes through a logging interceptor that mirrors the HTTP access log.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/footy-tipping/internal/logger"
)

// UsersServiceName is the health-check name reported for the user API.
const UsersServiceName = "footy.users"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose status follows the lifecycle of the
// process: SERVING once registered on a server, NOT_SERVING after Shutdown.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The health server starts out
// NOT_SERVING until [Handler.Register] is called.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.health.SetServingStatus(UsersServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to srv and reports SERVING.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h.health)
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(UsersServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every service to NOT_SERVING. Later status updates are
// ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
