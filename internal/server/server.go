package server

import (
	"context"
	"errors"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/akwaabahomes/passcheck/internal/config"
	"github.com/akwaabahomes/passcheck/internal/handler"
	"github.com/akwaabahomes/passcheck/internal/logger"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ShutdownTimeout bounds how long in-flight requests may take to finish
// once shutdown starts.
const ShutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		servers.gRPCServer = newGRPCServer(cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	httpListener, grpcListener, err := s.listen()
	if err != nil {
		return err
	}

	serveErr := make(chan error, 2)
	running := 0
	if httpListener != nil {
		running++
		go func() { serveErr <- s.httpServer.serve(httpListener) }()
		s.logger.Info().Msg("Launching HTTP server")
	}
	if grpcListener != nil {
		running++
		go func() { serveErr <- s.gRPCServer.serve(grpcListener) }()
		s.logger.Info().Msg("Launching GRPC server")
		s.gRPCServer.setStatus(healthpb.HealthCheckResponse_SERVING)
	}

	var runErr error
	select {
	case runErr = <-serveErr:
		// one listener died on its own; take the rest down with it
		running--
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err = s.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	for ; running > 0; running-- {
		if err = <-serveErr; err != nil && runErr == nil {
			runErr = err
		}
	}
	if runErr != nil {
		return runErr
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

// listen binds every configured server before any of them starts serving,
// so a bad address never leaves a half-started process behind.
func (s *server) listen() (httpListener, grpcListener net.Listener, err error) {
	if s.httpServer != nil {
		if httpListener, err = s.httpServer.listen(); err != nil {
			return nil, nil, err
		}
	}
	if s.gRPCServer != nil {
		if grpcListener, err = s.gRPCServer.listen(); err != nil {
			if httpListener != nil {
				_ = httpListener.Close()
			}
			return nil, nil, err
		}
	}
	return httpListener, grpcListener, nil
}

// Shutdown reports NOT_SERVING on the health service first, then drains
// the HTTP server and finally stops gRPC.
func (s *server) Shutdown(ctx context.Context) error {
	if s.gRPCServer != nil {
		s.gRPCServer.drain()
	}

	var errs []error
	if s.httpServer != nil {
		errs = append(errs, s.httpServer.shutdown(ctx))
	}
	if s.gRPCServer != nil {
		errs = append(errs, s.gRPCServer.shutdown(ctx))
	}
	return errors.Join(errs...)
}
