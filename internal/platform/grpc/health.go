package grpc

import (
	"context"
	"fmt"
	"time"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

const (
	healthCheckTimeout = time.Second
	healthBackoffStart = 100 * time.Millisecond
	healthBackoffMax   = time.Second
)

// WaitForHealth polls the gRPC health service until service is SERVING or
// ctx ends. An empty service checks overall server health. A rejected
// credential ends the wait immediately.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}

	healthClient := grpc_health_v1.NewHealthClient(conn)
	backoff := healthBackoffStart
	for {
		checkCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		response, err := healthClient.Check(checkCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
		cancel()
		switch {
		case err == nil && response.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING:
			logf("gRPC health for %q is SERVING", service)
			return nil
		case status.Code(err) == codes.Unauthenticated || status.Code(err) == codes.PermissionDenied:
			return fmt.Errorf("gRPC health %q rejected: %w", service, err)
		case err != nil:
			logf("waiting for gRPC health %q: %v", service, err)
		default:
			logf("waiting for gRPC health %q: status %s", service, response.GetStatus())
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for gRPC health: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, healthBackoffMax)
	}
}
