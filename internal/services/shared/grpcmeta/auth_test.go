package grpcmeta

import (
	"context"
	"testing"

	"github.com/louisbranch/calorie.space/internal/platform/apikey"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func incomingWithKey(key string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(APIKeyHeader, key))
}

func TestCheckAPIKey(t *testing.T) {
	keys := apikey.NewSet("good-key")

	tests := []struct {
		name string
		ctx  context.Context
		ok   bool
	}{
		{name: "accepted", ctx: incomingWithKey("good-key"), ok: true},
		{name: "wrong key", ctx: incomingWithKey("bad-key")},
		{name: "missing header", ctx: context.Background()},
		{name: "empty value", ctx: incomingWithKey("")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckAPIKey(tc.ctx, keys)
			if tc.ok && err != nil {
				t.Fatalf("CheckAPIKey: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected rejection")
			}
		})
	}
}

func TestAuthUnaryServerInterceptorRejectsBeforeHandler(t *testing.T) {
	interceptor := AuthUnaryServerInterceptor(apikey.NewSet("good-key"))
	called := false
	_, err := interceptor(incomingWithKey("bad-key"), nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, req any) (any, error) {
		called = true
		return nil, nil
	})
	if called {
		t.Fatal("handler ran for rejected credential")
	}
	st, _ := status.FromError(err)
	if st.Code() != codes.Unauthenticated {
		t.Fatalf("code = %v, want %v", st.Code(), codes.Unauthenticated)
	}
	if st.Message() != "Invalid or missing API key" {
		t.Fatalf("message = %q, want %q", st.Message(), "Invalid or missing API key")
	}
}

func TestAuthUnaryServerInterceptorPassesAcceptedKey(t *testing.T) {
	interceptor := AuthUnaryServerInterceptor(apikey.NewSet("good-key"))
	resp, err := interceptor(incomingWithKey("good-key"), "req", &grpc.UnaryServerInfo{}, func(ctx context.Context, req any) (any, error) {
		return "resp", nil
	})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if resp != "resp" {
		t.Fatalf("resp = %v, want resp", resp)
	}
}

func TestAuthStreamServerInterceptorRejectsMissingKey(t *testing.T) {
	interceptor := AuthStreamServerInterceptor(apikey.NewSet("good-key"))
	stream := &headerStream{ctx: context.Background()}
	called := false
	err := interceptor(nil, stream, &grpc.StreamServerInfo{}, func(srv any, ss grpc.ServerStream) error {
		called = true
		return nil
	})
	if called {
		t.Fatal("handler ran without credential")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.Unauthenticated)
	}
}
