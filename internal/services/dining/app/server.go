// Package server wires the dining runtime and gRPC lifecycle.
package server

import (
	"context"
	"fmt"

	diningv1 "github.com/louisbranch/calorie.space/api/gen/go/dining/v1"
	"github.com/louisbranch/calorie.space/internal/platform/activitylog"
	"github.com/louisbranch/calorie.space/internal/platform/apikey"
	diningservice "github.com/louisbranch/calorie.space/internal/services/dining/api/grpc/dining"
	"github.com/louisbranch/calorie.space/internal/services/dining/menu"
	"github.com/louisbranch/calorie.space/internal/services/shared/grpcserver"
	"google.golang.org/grpc"
)

// Runtime carries the process-wide read-only collaborators. A nil Menu
// selects menu.Default.
type Runtime struct {
	Keys     apikey.Set
	Activity *activitylog.Logger
	Menu     *menu.Menu
}

// New creates a configured dining server listening on the provided port.
func New(port int, rt Runtime) (*grpcserver.Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port), rt)
}

// NewWithAddr creates a configured dining server for the provided address.
func NewWithAddr(addr string, rt Runtime) (*grpcserver.Server, error) {
	m := rt.Menu
	if m == nil {
		m = menu.Default()
	}
	rt.Activity.Printf("DiningCalorieServer: Food calorie database initialized with %d items", m.Len())
	svc := diningservice.NewService(m, rt.Activity)
	return grpcserver.New(addr, grpcserver.Options{
		Label:         "dining",
		HealthService: diningv1.DiningCalorieService_ServiceDesc.ServiceName,
		Keys:          rt.Keys,
		Register: func(r grpc.ServiceRegistrar) {
			diningv1.RegisterDiningCalorieServiceServer(r, svc)
		},
	})
}

// Run creates and serves a dining server until context cancellation.
func Run(ctx context.Context, port int, rt Runtime) error {
	server, err := New(port, rt)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}
