package caloriectl

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
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

const testKey = "caloriectl-test-key"

func serve(t *testing.T, srv *grpcserver.Server, err error) string {
	t.Helper()
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case serveErr := <-done:
			if serveErr != nil {
				t.Errorf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Error("timeout waiting for server shutdown")
		}
	})
	return srv.Addr()
}

func startServices(t *testing.T) grpcdial.Endpoints {
	t.Helper()
	keys := apikey.NewSet(testKey)
	activity := activitylog.Discard()

	calorieSrv, err := calorieserver.NewWithAddr("127.0.0.1:0", calorieserver.Runtime{Keys: keys, Activity: activity})
	calorieAddr := serve(t, calorieSrv, err)
	diningSrv, err := diningserver.NewWithAddr("127.0.0.1:0", diningserver.Runtime{Keys: keys, Activity: activity})
	diningAddr := serve(t, diningSrv, err)
	workoutSrv, err := workoutserver.NewWithAddr("127.0.0.1:0", workoutserver.Runtime{Keys: keys, Activity: activity})
	workoutAddr := serve(t, workoutSrv, err)

	return grpcdial.Endpoints{CalorieAddr: calorieAddr, DiningAddr: diningAddr, WorkoutAddr: workoutAddr}
}

func TestParseConfig(t *testing.T) {
	t.Setenv("CALORIE_SPACE_DINING_ADDR", "dining:9000")
	t.Setenv("CALORIE_SPACE_API_KEY", "")

	fs := flag.NewFlagSet("caloriectl", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-workout-addr", "workout:9001", "Total", "pizza:2", "coke"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Endpoints.DiningAddr != "dining:9000" {
		t.Fatalf("dining addr = %q, want %q", cfg.Endpoints.DiningAddr, "dining:9000")
	}
	if cfg.Endpoints.WorkoutAddr != "workout:9001" {
		t.Fatalf("workout addr = %q, want %q", cfg.Endpoints.WorkoutAddr, "workout:9001")
	}
	if cfg.Endpoints.CalorieAddr != "localhost:50052" {
		t.Fatalf("calorie addr = %q, want %q", cfg.Endpoints.CalorieAddr, "localhost:50052")
	}
	if cfg.APIKey != apikey.DefaultKey {
		t.Fatalf("api key = %q, want default", cfg.APIKey)
	}
	if cfg.Command != CommandTotal {
		t.Fatalf("command = %q, want %q", cfg.Command, CommandTotal)
	}
	if strings.Join(cfg.Args, " ") != "pizza:2 coke" {
		t.Fatalf("args = %v", cfg.Args)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Config{Command: "dance"}, nil, &out)
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("err = %v, want ErrUsage", err)
	}
	if !strings.Contains(out.String(), "usage: caloriectl") {
		t.Fatalf("expected usage output, got %q", out.String())
	}
}

func TestRunRequiresOutput(t *testing.T) {
	if err := Run(context.Background(), Config{Command: CommandEstimate}, nil, nil); err == nil {
		t.Fatal("expected error for nil output")
	}
}

func TestParseOrderItem(t *testing.T) {
	item, err := parseOrderItem("french fries:3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if item.Name != "french fries" || item.Quantity != 3 {
		t.Fatalf("item = %+v", item)
	}
	item, err = parseOrderItem("coke")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if item.Quantity != 1 {
		t.Fatalf("quantity = %d, want 1", item.Quantity)
	}
	if _, err := parseOrderItem("coke:two"); err == nil {
		t.Fatal("expected error for non-numeric quantity")
	}
	if _, err := parseOrderItem(":2"); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestRunAgainstServices(t *testing.T) {
	endpoints := startServices(t)
	ctx := context.Background()
	base := Config{Endpoints: endpoints, APIKey: testKey}

	t.Run("estimate", func(t *testing.T) {
		cfg := base
		cfg.Command = CommandEstimate
		cfg.Args = []string{"-age", "25", "-gender", "MALE", "-weight", "70", "-height", "175", "-activity", "MODERATE"}
		var out bytes.Buffer
		if err := Run(ctx, cfg, nil, &out); err != nil {
			t.Fatalf("run: %v", err)
		}
		for _, want := range []string{"BMR: 1673.75 kcal", "TDEE: 2594.31 kcal", "Weight loss target: 2094.31 kcal", "Weight gain target: 3094.31 kcal"} {
			if !strings.Contains(out.String(), want) {
				t.Fatalf("output missing %q:\n%s", want, out.String())
			}
		}
	})

	t.Run("estimate invalid", func(t *testing.T) {
		cfg := base
		cfg.Command = CommandEstimate
		cfg.Args = []string{"-age", "0", "-gender", "MALE", "-weight", "70", "-height", "175"}
		if err := Run(ctx, cfg, nil, io.Discard); err == nil {
			t.Fatal("expected error for invalid age")
		}
	})

	t.Run("meal", func(t *testing.T) {
		cfg := base
		cfg.Command = CommandMeal
		in := strings.NewReader("hamburger\n2\npizza\n\ntaco\n1\nquit\n")
		var out bytes.Buffer
		if err := Run(ctx, cfg, in, &out); err != nil {
			t.Fatalf("run: %v", err)
		}
		got := out.String()
		for _, want := range []string{
			"- hamburger (550 calories)",
			"Name: hamburger",
			"Calories: 1100",
			"hamburger: 550 calories per serving (Total so far: 1100 kcal)",
			"Food item not found in database.",
			"=== Order Summary and Total Calories ===",
			"Total Calories: 1385 calories",
		} {
			if !strings.Contains(got, want) {
				t.Fatalf("output missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("meal invalid quantity", func(t *testing.T) {
		cfg := base
		cfg.Command = CommandMeal
		in := strings.NewReader("pizza\nlots\nquit\n")
		var out bytes.Buffer
		if err := Run(ctx, cfg, in, &out); err != nil {
			t.Fatalf("run: %v", err)
		}
		if !strings.Contains(out.String(), "Invalid quantity. Please enter numbers only.") {
			t.Fatalf("output missing invalid quantity notice:\n%s", out.String())
		}
		if !strings.Contains(out.String(), "Total Calories: 0 calories") {
			t.Fatalf("expected skipped item, got:\n%s", out.String())
		}
	})

	t.Run("total", func(t *testing.T) {
		cfg := base
		cfg.Command = CommandTotal
		cfg.Args = []string{"pizza:2", "coke", "unknown"}
		var out bytes.Buffer
		if err := Run(ctx, cfg, nil, &out); err != nil {
			t.Fatalf("run: %v", err)
		}
		if got := strings.TrimSpace(out.String()); got != "Total calories for 2 items: 710" {
			t.Fatalf("output = %q", got)
		}
	})

	t.Run("workout", func(t *testing.T) {
		cfg := base
		cfg.Command = CommandWorkout
		cfg.Args = []string{"-target", "lower_body", "-level", "advanced"}
		var out bytes.Buffer
		if err := Run(ctx, cfg, nil, &out); err != nil {
			t.Fatalf("run: %v", err)
		}
		if !strings.Contains(out.String(), "Pistol Squats (ADVANCED)") {
			t.Fatalf("output missing recommendation:\n%s", out.String())
		}
	})

	t.Run("workout invalid target", func(t *testing.T) {
		cfg := base
		cfg.Command = CommandWorkout
		cfg.Args = []string{"-target", "arms"}
		if err := Run(ctx, cfg, nil, io.Discard); err == nil {
			t.Fatal("expected error for invalid target")
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		cfg := base
		cfg.APIKey = "wrong"
		cfg.Command = CommandWorkout
		if err := Run(ctx, cfg, nil, io.Discard); err == nil {
			t.Fatal("expected error for wrong key")
		}
	})
}
