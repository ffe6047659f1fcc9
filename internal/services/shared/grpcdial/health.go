// Package grpcdial dials calorie.space services for front-ends with the
// shared credential attached and a health wait before first use.
package grpcdial

import (
	"context"
	"errors"
	"fmt"
	"time"

	platformgrpc "github.com/louisbranch/calorie.space/internal/platform/grpc"
	"github.com/louisbranch/calorie.space/internal/services/shared/grpcmeta"
	gogrpc "google.golang.org/grpc"
)

// DialWithHealth dials a service endpoint and normalizes connect/health errors
// into stable, service-labeled messages for startup callers.
func DialWithHealth(
	ctx context.Context,
	addr string,
	healthService string,
	timeout time.Duration,
	serviceLabel string,
	logf func(string, ...any),
	opts ...gogrpc.DialOption,
) (*gogrpc.ClientConn, error) {
	conn, err := platformgrpc.DialWithHealth(ctx, nil, addr, healthService, timeout, logf, opts...)
	if err != nil {
		return nil, NormalizeDialError(serviceLabel, addr, err)
	}
	return conn, nil
}

// DialService dials addr with the default client options plus apiKey on
// every call, health checks included.
func DialService(ctx context.Context, addr, healthService, serviceLabel, apiKey string, timeout time.Duration, logf func(string, ...any)) (*gogrpc.ClientConn, error) {
	opts := append(platformgrpc.DefaultClientDialOptions(), grpcmeta.ClientDialOptions(apiKey)...)
	return DialWithHealth(ctx, addr, healthService, timeout, serviceLabel, logf, opts...)
}

// NormalizeDialError maps platform DialError stages into stable startup error
// messages used by service-specific dial helpers.
func NormalizeDialError(serviceLabel, addr string, err error) error {
	var dialErr *platformgrpc.DialError
	if errors.As(err, &dialErr) {
		if dialErr.Stage == platformgrpc.DialStageHealth {
			return fmt.Errorf("%s gRPC health check failed for %s: %w", serviceLabel, addr, dialErr.Err)
		}
		return fmt.Errorf("dial %s gRPC %s: %w", serviceLabel, addr, dialErr.Err)
	}
	return fmt.Errorf("dial %s gRPC %s: %w", serviceLabel, addr, err)
}
