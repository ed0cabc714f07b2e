package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/akwaabahomes/passcheck/internal/config"
	"github.com/akwaabahomes/passcheck/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthService is the service name reported by the gRPC health server in
// addition to the empty, server-wide name.
const HealthService = "passcheck.PasswordPolicy"

type grpcServer struct {
	address string

	server *grpc.Server
	health *health.Server

	logger *logger.Logger
}

func newGRPCServer(cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)

	g := &grpcServer{
		address: cfg.GRPCAddress,
		server:  srv,
		health:  hs,
		logger:  logger,
	}
	// not ready until RunServer has bound every listener
	g.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return g
}

func (g *grpcServer) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	g.health.SetServingStatus("", status)
	g.health.SetServingStatus(HealthService, status)
}

func (g *grpcServer) listen() (net.Listener, error) {
	l, err := net.Listen("tcp", g.address)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", g.address, err)
	}
	return l, nil
}

func (g *grpcServer) serve(l net.Listener) error {
	g.logger.Info().Str("address", l.Addr().String()).Msg("gRPC health server listening")

	if err := g.server.Serve(l); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// drain flips every service to NOT_SERVING. Later status updates are
// ignored, so probes never see the server as ready again.
func (g *grpcServer) drain() {
	g.health.Shutdown()
}

// shutdown waits for in-flight RPCs and forces the stop once ctx expires.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.drain()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		<-stopped
		return fmt.Errorf("gRPC server Shutdown: %w", ctx.Err())
	}
}
