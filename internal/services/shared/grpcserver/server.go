// Package grpcserver hosts one gRPC service behind the shared credential
// gate with health checks and graceful shutdown.
package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"github.com/louisbranch/calorie.space/internal/platform/apikey"
	"github.com/louisbranch/calorie.space/internal/platform/timeouts"
	"github.com/louisbranch/calorie.space/internal/services/shared/grpcmeta"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Options configures a hosted service.
type Options struct {
	// Label names the service in log lines, e.g. "calorie".
	Label string
	// HealthService is the fully qualified gRPC service name reported as
	// SERVING, e.g. "calorie.v1.CalorieService".
	HealthService string
	// Keys is the accepted credential set.
	Keys apikey.Set
	// IDGenerator mints request IDs. Defaults to id.NewID.
	IDGenerator func() (string, error)
	// Register attaches service implementations to the server.
	Register func(grpc.ServiceRegistrar)
	// OnClose runs once after the server stops.
	OnClose func()
}

// Server hosts a gRPC API and its lifecycle.
type Server struct {
	label      string
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	onClose    func()
	closeOnce  sync.Once
}

// New creates a configured server listening on the provided address.
func New(addr string, opts Options) (*Server, error) {
	if opts.Register == nil {
		return nil, errors.New("register func is required")
	}
	if opts.Keys.Len() == 0 {
		return nil, errors.New("at least one api key is required")
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	serverOpts := append([]grpc.ServerOption{grpc.StatsHandler(otelgrpc.NewServerHandler())},
		grpcmeta.ServerOptions(opts.Keys, opts.IDGenerator)...)
	grpcServer := grpc.NewServer(serverOpts...)
	opts.Register(grpcServer)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	if opts.HealthService != "" {
		healthServer.SetServingStatus(opts.HealthService, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	label := opts.Label
	if label == "" {
		label = "grpc"
	}
	return &Server{
		label:      label,
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		onClose:    opts.OnClose,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("%s server listening at %v", s.label, s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.stopGracefully(timeouts.Shutdown)
		return serveResult(<-serveErr)
	case err := <-serveErr:
		return serveResult(err)
	}
}

// stopGracefully drains in-flight calls, forcing a hard stop once timeout
// elapses.
func (s *Server) stopGracefully(timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
		log.Printf("%s server did not drain within %v, forcing stop", s.label, timeout)
		s.grpcServer.Stop()
		<-done
	}
}

func serveResult(err error) error {
	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("serve gRPC: %w", err)
}

// Close releases server resources. Safe to call more than once.
func (s *Server) Close() {
	if s == nil {
		return
	}
	s.closeOnce.Do(func() {
		if s.health != nil {
			s.health.Shutdown()
		}
		if s.grpcServer != nil {
			s.grpcServer.Stop()
		}
		if s.listener != nil {
			_ = s.listener.Close()
		}
		if s.onClose != nil {
			s.onClose()
		}
	})
}
