// Package grpcmeta defines the cross-service gRPC headers and the
// interceptors that read and write them.
package grpcmeta

import (
	"context"
	"strings"

	"github.com/louisbranch/calorie.space/internal/platform/id"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// APIKeyHeader carries the shared-secret credential on every call.
const APIKeyHeader = "api-key"

// RequestIDHeader carries the request correlation ID. Servers echo it in
// response headers and mint one when the caller sent none.
const RequestIDHeader = "x-calorie-space-request-id"

type contextKey string

const requestIDContextKey contextKey = "calorie-space-request-id"

// RequestIDFromContext returns the request ID stored in context.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDContextKey).(string)
	return value
}

// WithRequestID stores the request ID in context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// IsPrintableASCII reports whether a string contains only printable ASCII characters.
func IsPrintableASCII(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return false
		}
	}
	return true
}

// FirstMetadataValue returns the first printable ASCII metadata value for a
// key. Values with control characters are skipped so they never reach logs.
func FirstMetadataValue(md metadata.MD, key string) string {
	if len(md) == 0 {
		return ""
	}
	for mdKey, values := range md {
		if !strings.EqualFold(mdKey, key) {
			continue
		}
		for _, value := range values {
			if IsPrintableASCII(value) {
				return value
			}
		}
	}
	return ""
}

func incomingValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	return FirstMetadataValue(md, key)
}

// RequestIDUnaryServerInterceptor attaches a request ID to unary calls.
func RequestIDUnaryServerInterceptor(idGenerator func() (string, error)) grpc.UnaryServerInterceptor {
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		updatedCtx, requestID, err := ensureRequestID(ctx, idGenerator)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "ensure request id: %v", err)
		}
		if err := grpc.SetHeader(updatedCtx, metadata.Pairs(RequestIDHeader, requestID)); err != nil {
			return nil, status.Errorf(codes.Internal, "set response metadata: %v", err)
		}
		return handler(updatedCtx, req)
	}
}

// RequestIDStreamServerInterceptor attaches a request ID to streaming calls.
// The ID lives for the whole session.
func RequestIDStreamServerInterceptor(idGenerator func() (string, error)) grpc.StreamServerInterceptor {
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return func(srv any, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		updatedCtx, requestID, err := ensureRequestID(stream.Context(), idGenerator)
		if err != nil {
			return status.Errorf(codes.Internal, "ensure request id: %v", err)
		}
		if err := stream.SetHeader(metadata.Pairs(RequestIDHeader, requestID)); err != nil {
			return status.Errorf(codes.Internal, "set response metadata: %v", err)
		}
		return handler(srv, &wrappedServerStream{ServerStream: stream, ctx: updatedCtx})
	}
}

// wrappedServerStream overrides the context for a gRPC stream.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context returns the updated stream context.
func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}

func ensureRequestID(ctx context.Context, idGenerator func() (string, error)) (context.Context, string, error) {
	requestID := incomingValue(ctx, RequestIDHeader)
	if requestID == "" {
		generated, err := idGenerator()
		if err != nil {
			return nil, "", err
		}
		requestID = generated
	}
	return WithRequestID(ctx, requestID), requestID, nil
}
