package tools

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/calorie.space/internal/platform/activitylog"
	"github.com/louisbranch/calorie.space/internal/platform/apikey"
	calorieserver "github.com/louisbranch/calorie.space/internal/services/calorie/app"
	diningserver "github.com/louisbranch/calorie.space/internal/services/dining/app"
	"github.com/louisbranch/calorie.space/internal/services/shared/grpcdial"
	"github.com/louisbranch/calorie.space/internal/services/shared/grpcserver"
	workoutserver "github.com/louisbranch/calorie.space/internal/services/workout/app"
)

const testKey = "tools-test-key"

func serve(t *testing.T, srv *grpcserver.Server, err error) string {
	t.Helper()
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
	return srv.Addr()
}

func newClients(t *testing.T) *grpcdial.Clients {
	t.Helper()
	keys := apikey.NewSet(testKey)
	activity := activitylog.Discard()

	calorieSrv, err := calorieserver.NewWithAddr("127.0.0.1:0", calorieserver.Runtime{Keys: keys, Activity: activity})
	calorieAddr := serve(t, calorieSrv, err)
	diningSrv, err := diningserver.NewWithAddr("127.0.0.1:0", diningserver.Runtime{Keys: keys, Activity: activity})
	diningAddr := serve(t, diningSrv, err)
	workoutSrv, err := workoutserver.NewWithAddr("127.0.0.1:0", workoutserver.Runtime{Keys: keys, Activity: activity})
	workoutAddr := serve(t, workoutSrv, err)

	clients, err := grpcdial.DialClients(context.Background(), grpcdial.Endpoints{
		CalorieAddr: calorieAddr,
		DiningAddr:  diningAddr,
		WorkoutAddr: workoutAddr,
	}, testKey, 5*time.Second, nil)
	if err != nil {
		t.Fatalf("dial clients: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := clients.Close(); closeErr != nil {
			t.Fatalf("close clients: %v", closeErr)
		}
	})
	return clients
}

func TestToolHandlers(t *testing.T) {
	clients := newClients(t)
	ctx := context.Background()

	t.Run("estimate", func(t *testing.T) {
		_, result, err := EstimateHandler(clients.Calorie)(ctx, nil, EstimateInput{
			Age: 25, Gender: "MALE", Weight: 70, Height: 175, ActivityLevel: "MODERATE",
		})
		if err != nil {
			t.Fatalf("estimate: %v", err)
		}
		if result.BMR != 1673.75 {
			t.Fatalf("bmr = %v, want 1673.75", result.BMR)
		}
	})

	t.Run("estimate invalid", func(t *testing.T) {
		_, _, err := EstimateHandler(clients.Calorie)(ctx, nil, EstimateInput{Gender: "MALE"})
		if err == nil || !strings.Contains(err.Error(), "Age must be greater than 0") {
			t.Fatalf("err = %v, want age validation", err)
		}
	})

	t.Run("tally meal", func(t *testing.T) {
		_, result, err := TallyMealHandler(clients.Dining)(ctx, nil, MealInput{Items: []MealItem{
			{Name: "pizza", Quantity: 2},
			{Name: "unobtainium-stew"},
			{Name: "beer"},
		}})
		if err != nil {
			t.Fatalf("tally meal: %v", err)
		}
		if len(result.Reports) != 3 {
			t.Fatalf("reports = %d, want 3", len(result.Reports))
		}
		if result.Reports[0].Calories != 570 || result.Reports[1].Calories != 0 || result.Reports[2].Calories != 150 {
			t.Fatalf("reports = %+v", result.Reports)
		}
		if !strings.Contains(result.Reports[2].Message, "Total so far: 720 kcal") {
			t.Fatalf("last message = %q", result.Reports[2].Message)
		}
	})

	t.Run("tally meal negative quantity", func(t *testing.T) {
		_, _, err := TallyMealHandler(clients.Dining)(ctx, nil, MealInput{Items: []MealItem{{Name: "pizza", Quantity: -1}}})
		if err == nil {
			t.Fatal("expected error for negative quantity")
		}
	})

	t.Run("meal total", func(t *testing.T) {
		_, result, err := MealTotalHandler(clients.Dining)(ctx, nil, MealInput{Items: []MealItem{
			{Name: "bibimbap", Quantity: 1},
			{Name: "kimchi", Quantity: 2},
		}})
		if err != nil {
			t.Fatalf("meal total: %v", err)
		}
		if result.TotalCalories != 580 || result.ItemCount != 2 {
			t.Fatalf("result = %+v, want 580 over 2 items", result)
		}
	})

	t.Run("recommend workouts", func(t *testing.T) {
		_, result, err := RecommendHandler(clients.Workout)(ctx, nil, WorkoutInput{TargetArea: "core", FitnessLevel: "advanced"})
		if err != nil {
			t.Fatalf("recommend: %v", err)
		}
		if len(result.Recommendations) != 1 || result.Recommendations[0].Equipment != "Bench or bar" {
			t.Fatalf("recommendations = %+v", result.Recommendations)
		}
	})

	t.Run("recommend invalid target", func(t *testing.T) {
		_, _, err := RecommendHandler(clients.Workout)(ctx, nil, WorkoutInput{TargetArea: "BACK", FitnessLevel: "BEGINNER"})
		if err == nil {
			t.Fatal("expected error for unknown target area")
		}
	})
}
