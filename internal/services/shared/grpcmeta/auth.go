package grpcmeta

import (
	"context"

	"github.com/louisbranch/calorie.space/internal/platform/apikey"
	apperrors "github.com/louisbranch/calorie.space/internal/platform/errors"
	"google.golang.org/grpc"
)

const credentialRejectedMessage = "Invalid or missing API key"

// CheckAPIKey validates the credential carried by ctx against keys.
func CheckAPIKey(ctx context.Context, keys apikey.Set) error {
	key := incomingValue(ctx, APIKeyHeader)
	if key == "" {
		return apperrors.New(apperrors.CodeCredentialMissing, credentialRejectedMessage)
	}
	if !keys.Contains(key) {
		return apperrors.New(apperrors.CodeCredentialInvalid, credentialRejectedMessage)
	}
	return nil
}

// AuthUnaryServerInterceptor rejects unary calls without an accepted
// credential before the handler runs.
func AuthUnaryServerInterceptor(keys apikey.Set) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if err := CheckAPIKey(ctx, keys); err != nil {
			return nil, apperrors.ToGRPC(err)
		}
		return handler(ctx, req)
	}
}

// AuthStreamServerInterceptor rejects streaming calls without an accepted
// credential before the first message is read.
func AuthStreamServerInterceptor(keys apikey.Set) grpc.StreamServerInterceptor {
	return func(srv any, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := CheckAPIKey(stream.Context(), keys); err != nil {
			return apperrors.ToGRPC(err)
		}
		return handler(srv, stream)
	}
}

// ServerOptions chains the credential gate ahead of request ID handling.
func ServerOptions(keys apikey.Set, idGenerator func() (string, error)) []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			AuthUnaryServerInterceptor(keys),
			RequestIDUnaryServerInterceptor(idGenerator),
		),
		grpc.ChainStreamInterceptor(
			AuthStreamServerInterceptor(keys),
			RequestIDStreamServerInterceptor(idGenerator),
		),
	}
}
