// Package server wires the workout runtime and gRPC lifecycle.
package server

import (
	"context"
	"fmt"

	workoutv1 "github.com/louisbranch/calorie.space/api/gen/go/workout/v1"
	"github.com/louisbranch/calorie.space/internal/platform/activitylog"
	"github.com/louisbranch/calorie.space/internal/platform/apikey"
	"github.com/louisbranch/calorie.space/internal/services/shared/grpcserver"
	workoutservice "github.com/louisbranch/calorie.space/internal/services/workout/api/grpc/workout"
	"github.com/louisbranch/calorie.space/internal/services/workout/catalog"
	"google.golang.org/grpc"
)

// Runtime carries the process-wide read-only collaborators. A nil Catalog
// selects catalog.Default.
type Runtime struct {
	Keys     apikey.Set
	Activity *activitylog.Logger
	Catalog  *catalog.Catalog
}

// New creates a configured workout server listening on the provided port.
func New(port int, rt Runtime) (*grpcserver.Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port), rt)
}

// NewWithAddr creates a configured workout server for the provided address.
func NewWithAddr(addr string, rt Runtime) (*grpcserver.Server, error) {
	c := rt.Catalog
	if c == nil {
		c = catalog.Default()
	}
	rt.Activity.Printf("WorkoutRecommendationServer: Workout database initialized successfully")
	svc := workoutservice.NewService(c, rt.Activity)
	return grpcserver.New(addr, grpcserver.Options{
		Label:         "workout",
		HealthService: workoutv1.WorkoutRecommendationService_ServiceDesc.ServiceName,
		Keys:          rt.Keys,
		Register: func(r grpc.ServiceRegistrar) {
			workoutv1.RegisterWorkoutRecommendationServiceServer(r, svc)
		},
	})
}

// Run creates and serves a workout server until context cancellation.
func Run(ctx context.Context, port int, rt Runtime) error {
	server, err := New(port, rt)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}
