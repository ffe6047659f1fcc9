// Package grpc holds client-side gRPC helpers shared by calorie.space
// front-ends.
package grpc

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Dialer creates client connections.
type Dialer interface {
	NewClient(addr string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error)
}

// DialerFunc adapts a function to the Dialer interface.
type DialerFunc func(addr string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error)

// NewClient implements Dialer for DialerFunc.
func (fn DialerFunc) NewClient(addr string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
	return fn(addr, opts...)
}

// DialStage describes where a dial attempt failed.
type DialStage string

const (
	// DialStageConnect indicates the client connection could not be created.
	DialStageConnect DialStage = "connect"
	// DialStageHealth indicates the health check never reported SERVING.
	DialStageHealth DialStage = "health"
)

// DialError wraps dial and health check failures with a stage indicator.
type DialError struct {
	Addr  string
	Stage DialStage
	Err   error
}

// Error implements the error interface.
func (e *DialError) Error() string {
	if e == nil {
		return "gRPC dial error"
	}
	return fmt.Sprintf("gRPC %s error for %s: %v", e.Stage, e.Addr, e.Err)
}

// Unwrap returns the underlying error.
func (e *DialError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DefaultClientDialOptions returns plaintext dial options with the OTel
// client stats handler so outbound calls carry trace context when a
// TracerProvider is registered.
func DefaultClientDialOptions() []gogrpc.DialOption {
	return []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
}

// DialWithHealth creates a client for addr and waits until service reports
// SERVING. The connection is closed when the health wait fails.
func DialWithHealth(ctx context.Context, dialer Dialer, addr, service string, timeout time.Duration, logf func(string, ...any), opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if dialer == nil {
		dialer = DialerFunc(gogrpc.NewClient)
	}

	conn, err := dialer.NewClient(addr, opts...)
	if err != nil {
		return nil, &DialError{Addr: addr, Stage: DialStageConnect, Err: err}
	}

	waitCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := WaitForHealth(waitCtx, conn, service, logf); err != nil {
		_ = conn.Close()
		return nil, &DialError{Addr: addr, Stage: DialStageHealth, Err: err}
	}
	return conn, nil
}
