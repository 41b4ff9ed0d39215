package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported alongside the overall ("") status
const ServiceName = "shipfix-api"

// DefaultShutdownTimeout bounds GracefulStop when no timeout is given
const DefaultShutdownTimeout = 15 * time.Second

// HealthServer exposes grpc.health.v1.Health next to the HTTP API
type HealthServer struct {
	server          *grpc.Server
	health          *health.Server
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// NewHealthServer creates a gRPC server with the standard health service registered.
// shutdownTimeout caps the graceful stop; open Watch streams are cut when it expires.
func NewHealthServer(logger *slog.Logger, shutdownTimeout time.Duration) *HealthServer {
	if logger == nil {
		logger = slog.Default()
	}
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &HealthServer{
		server:          grpcServer,
		health:          healthServer,
		logger:          logger.With("component", "grpc"),
		shutdownTimeout: shutdownTimeout,
	}
}

// Serve accepts connections on ln until ctx is cancelled
func (s *HealthServer) Serve(ctx context.Context, ln net.Listener) error {
	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("grpc health server listening", "address", ln.Addr().String())
		if err := s.server.Serve(ln); err != nil {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		s.logger.Info("grpc health server shutting down")
		s.health.Shutdown()
		s.stop()
		return nil
	}
}

// stop drains in-flight RPCs, forcing the remaining streams closed after shutdownTimeout
func (s *HealthServer) stop() {
	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	timer := time.NewTimer(s.shutdownTimeout)
	defer timer.Stop()

	select {
	case <-stopped:
	case <-timer.C:
		s.logger.Warn("grpc graceful stop timed out, closing open streams", "timeout", s.shutdownTimeout)
		s.server.Stop()
		<-stopped
	}
}

// ListenAndServe binds address and serves until ctx is cancelled
func (s *HealthServer) ListenAndServe(ctx context.Context, address string) error {
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	return s.Serve(ctx, ln)
}
