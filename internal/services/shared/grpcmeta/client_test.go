package grpcmeta

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestWithAPIKey(t *testing.T) {
	ctx := WithAPIKey(context.Background(), " key-1 ")
	md, ok := metadata.FromOutgoingContext(ctx)
	if !ok {
		t.Fatal("expected outgoing metadata")
	}
	if got := md.Get(APIKeyHeader); len(got) != 1 || got[0] != "key-1" {
		t.Fatalf("api key = %v, want [key-1]", got)
	}
}

func TestWithAPIKeyBlankLeavesContext(t *testing.T) {
	ctx := WithAPIKey(context.Background(), "  ")
	if _, ok := metadata.FromOutgoingContext(ctx); ok {
		t.Fatal("expected no outgoing metadata for blank key")
	}
}

func TestAPIKeyUnaryClientInterceptor(t *testing.T) {
	interceptor := APIKeyUnaryClientInterceptor("key-1")
	var seen []string
	err := interceptor(context.Background(), "/svc/Method", nil, nil, nil,
		func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			md, _ := metadata.FromOutgoingContext(ctx)
			seen = md.Get(APIKeyHeader)
			return nil
		})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if len(seen) != 1 || seen[0] != "key-1" {
		t.Fatalf("api key = %v, want [key-1]", seen)
	}
}
