package grpcmeta

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// WithAPIKey returns a context whose outgoing metadata carries key.
func WithAPIKey(ctx context.Context, key string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, APIKeyHeader, key)
}

// APIKeyUnaryClientInterceptor appends key to unary calls.
func APIKeyUnaryClientInterceptor(key string) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req any,
		reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		return invoker(WithAPIKey(ctx, key), method, req, reply, cc, opts...)
	}
}

// APIKeyStreamClientInterceptor appends key to stream calls.
func APIKeyStreamClientInterceptor(key string) grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		return streamer(WithAPIKey(ctx, key), desc, cc, method, opts...)
	}
}

// ClientDialOptions returns dial options that attach key to every call,
// health checks included.
func ClientDialOptions(key string) []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithChainUnaryInterceptor(APIKeyUnaryClientInterceptor(key)),
		grpc.WithChainStreamInterceptor(APIKeyStreamClientInterceptor(key)),
	}
}
