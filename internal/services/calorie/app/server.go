// Package server wires the calorie runtime and gRPC lifecycle.
package server

import (
	"context"
	"fmt"

	caloriev1 "github.com/louisbranch/calorie.space/api/gen/go/calorie/v1"
	"github.com/louisbranch/calorie.space/internal/platform/activitylog"
	"github.com/louisbranch/calorie.space/internal/platform/apikey"
	calorieservice "github.com/louisbranch/calorie.space/internal/services/calorie/api/grpc/calorie"
	"github.com/louisbranch/calorie.space/internal/services/shared/grpcserver"
	"google.golang.org/grpc"
)

// Runtime carries the process-wide read-only collaborators.
type Runtime struct {
	Keys     apikey.Set
	Activity *activitylog.Logger
}

// New creates a configured calorie server listening on the provided port.
func New(port int, rt Runtime) (*grpcserver.Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port), rt)
}

// NewWithAddr creates a configured calorie server for the provided address.
func NewWithAddr(addr string, rt Runtime) (*grpcserver.Server, error) {
	svc := calorieservice.NewService(rt.Activity)
	return grpcserver.New(addr, grpcserver.Options{
		Label:         "calorie",
		HealthService: caloriev1.CalorieService_ServiceDesc.ServiceName,
		Keys:          rt.Keys,
		Register: func(r grpc.ServiceRegistrar) {
			caloriev1.RegisterCalorieServiceServer(r, svc)
		},
	})
}

// Run creates and serves a calorie server until context cancellation.
func Run(ctx context.Context, port int, rt Runtime) error {
	server, err := New(port, rt)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}
