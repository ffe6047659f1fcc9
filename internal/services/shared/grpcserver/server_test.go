package grpcserver

import (
	"context"
	"testing"
	"time"

	"github.com/louisbranch/calorie.space/internal/platform/apikey"
	"github.com/louisbranch/calorie.space/internal/services/shared/grpcmeta"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func TestNewRequiresRegister(t *testing.T) {
	if _, err := New("127.0.0.1:0", Options{Keys: apikey.NewSet("k")}); err == nil {
		t.Fatal("expected error without register func")
	}
}

func TestNewRequiresKeys(t *testing.T) {
	if _, err := New("127.0.0.1:0", Options{Register: func(grpc.ServiceRegistrar) {}}); err == nil {
		t.Fatal("expected error without api keys")
	}
}

func startServer(t *testing.T, opts Options) *Server {
	t.Helper()
	srv, err := New("127.0.0.1:0", opts)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	runCtx, runCancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})
	return srv
}

func TestServerHealthBehindCredentialGate(t *testing.T) {
	closed := make(chan struct{})
	srv := startServer(t, Options{
		Label:         "test",
		HealthService: "test.v1.Service",
		Keys:          apikey.NewSet("good-key"),
		Register:      func(grpc.ServiceRegistrar) {},
		OnClose:       func() { close(closed) },
	})

	conn, err := grpc.NewClient(srv.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial server: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	client := grpc_health_v1.NewHealthClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = client.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: "test.v1.Service"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.Unauthenticated)
	}

	resp, err := client.Check(grpcmeta.WithAPIKey(ctx, "good-key"), &grpc_health_v1.HealthCheckRequest{Service: "test.v1.Service"})
	if err != nil {
		t.Fatalf("health check: %v", err)
	}
	if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Fatalf("status = %v, want SERVING", resp.GetStatus())
	}

	srv.Close()
	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("OnClose was not called")
	}
}

func TestAddrNilServer(t *testing.T) {
	var srv *Server
	if srv.Addr() != "" {
		t.Fatal("expected empty addr for nil server")
	}
	if err := srv.Serve(context.Background()); err == nil {
		t.Fatal("expected error serving nil server")
	}
}

func TestCloseRunsOnCloseOnce(t *testing.T) {
	calls := 0
	srv, err := New("127.0.0.1:0", Options{
		Keys:     apikey.NewSet("k"),
		Register: func(grpc.ServiceRegistrar) {},
		OnClose:  func() { calls++ },
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	srv.Close()
	srv.Close()
	if calls != 1 {
		t.Fatalf("onClose calls = %d, want 1", calls)
	}
}

func TestStopGracefullyWithIdleServer(t *testing.T) {
	srv, err := New("127.0.0.1:0", Options{
		Keys:     apikey.NewSet("k"),
		Register: func(grpc.ServiceRegistrar) {},
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer srv.Close()

	done := make(chan struct{})
	go func() {
		srv.stopGracefully(time.Second)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("stopGracefully did not return")
	}
}
