package grpcdial

import (
	"context"
	"errors"
	"fmt"
	"time"

	caloriev1 "github.com/louisbranch/calorie.space/api/gen/go/calorie/v1"
	diningv1 "github.com/louisbranch/calorie.space/api/gen/go/dining/v1"
	workoutv1 "github.com/louisbranch/calorie.space/api/gen/go/workout/v1"
	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Endpoints lists the service addresses a front-end talks to.
type Endpoints struct {
	CalorieAddr string `env:"CALORIE_SPACE_CALORIE_ADDR" envDefault:"localhost:50052"`
	DiningAddr  string `env:"CALORIE_SPACE_DINING_ADDR"  envDefault:"localhost:50051"`
	WorkoutAddr string `env:"CALORIE_SPACE_WORKOUT_ADDR" envDefault:"localhost:50053"`
}

// Clients holds one typed client per service.
type Clients struct {
	Calorie caloriev1.CalorieServiceClient
	Dining  diningv1.DiningCalorieServiceClient
	Workout workoutv1.WorkoutRecommendationServiceClient

	conns []*gogrpc.ClientConn
}

// DialClients dials every endpoint and waits for each to report healthy.
// Connections opened before a failure are closed.
func DialClients(ctx context.Context, endpoints Endpoints, apiKey string, timeout time.Duration, logf func(string, ...any)) (*Clients, error) {
	clients := &Clients{}
	dial := func(addr, healthService, label string) (*gogrpc.ClientConn, error) {
		conn, err := DialService(ctx, addr, healthService, label, apiKey, timeout, logf)
		if err != nil {
			_ = clients.Close()
			return nil, err
		}
		clients.conns = append(clients.conns, conn)
		return conn, nil
	}

	calorieConn, err := dial(endpoints.CalorieAddr, caloriev1.CalorieService_ServiceDesc.ServiceName, "calorie")
	if err != nil {
		return nil, err
	}
	diningConn, err := dial(endpoints.DiningAddr, diningv1.DiningCalorieService_ServiceDesc.ServiceName, "dining")
	if err != nil {
		return nil, err
	}
	workoutConn, err := dial(endpoints.WorkoutAddr, workoutv1.WorkoutRecommendationService_ServiceDesc.ServiceName, "workout")
	if err != nil {
		return nil, err
	}

	clients.Calorie = caloriev1.NewCalorieServiceClient(calorieConn)
	clients.Dining = diningv1.NewDiningCalorieServiceClient(diningConn)
	clients.Workout = workoutv1.NewWorkoutRecommendationServiceClient(workoutConn)
	return clients, nil
}

// Check queries overall health on every connection and joins the failures.
func (c *Clients) Check(ctx context.Context) error {
	if c == nil {
		return errors.New("clients are not configured")
	}
	var errs []error
	for _, conn := range c.conns {
		response, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{})
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", conn.Target(), err))
		case response.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING:
			errs = append(errs, fmt.Errorf("%s: status %s", conn.Target(), response.GetStatus()))
		}
	}
	return errors.Join(errs...)
}

// Close releases every connection.
func (c *Clients) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	for _, conn := range c.conns {
		if err := conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.conns = nil
	return errors.Join(errs...)
}
