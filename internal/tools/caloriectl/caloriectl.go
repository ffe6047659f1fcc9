// Package caloriectl is the command-line client for the calorie.space
// services.
package caloriectl

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	caloriev1 "github.com/louisbranch/calorie.space/api/gen/go/calorie/v1"
	diningv1 "github.com/louisbranch/calorie.space/api/gen/go/dining/v1"
	workoutv1 "github.com/louisbranch/calorie.space/api/gen/go/workout/v1"
	"github.com/louisbranch/calorie.space/internal/platform/apikey"
	entrypoint "github.com/louisbranch/calorie.space/internal/platform/cmd"
	"github.com/louisbranch/calorie.space/internal/platform/timeouts"
	"github.com/louisbranch/calorie.space/internal/services/shared/grpcdial"
)

// Subcommand names.
const (
	CommandEstimate = "estimate"
	CommandMeal     = "meal"
	CommandTotal    = "total"
	CommandWorkout  = "workout"
)

const usage = `usage: caloriectl [flags] <command> [args]

commands:
  estimate -age N -gender MALE|FEMALE -weight KG -height CM -activity LEVEL
  meal                     interactive order; type quit to finish
  total name[:qty] ...     calorie total for an order
  workout -target AREA -level LEVEL
`

// ErrUsage reports a missing or unknown subcommand.
var ErrUsage = errors.New("unknown or missing command")

// Config holds caloriectl configuration.
type Config struct {
	Endpoints grpcdial.Endpoints
	APIKey    string `env:"CALORIE_SPACE_API_KEY"`
	Verbose   bool   `env:"CALORIE_SPACE_CLI_VERBOSE"`

	Command string
	Args    []string
}

// ParseConfig parses environment and global flags into a Config. The first
// positional argument names the subcommand; the rest are its arguments.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.APIKey == "" {
		cfg.APIKey = apikey.DefaultKey
	}

	fs.StringVar(&cfg.Endpoints.CalorieAddr, "calorie-addr", cfg.Endpoints.CalorieAddr, "calorie service address")
	fs.StringVar(&cfg.Endpoints.DiningAddr, "dining-addr", cfg.Endpoints.DiningAddr, "dining service address")
	fs.StringVar(&cfg.Endpoints.WorkoutAddr, "workout-addr", cfg.Endpoints.WorkoutAddr, "workout service address")
	fs.StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "credential sent in the api-key header")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log dial progress")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	rest := fs.Args()
	if len(rest) > 0 {
		cfg.Command = strings.ToLower(rest[0])
		cfg.Args = rest[1:]
	}
	return cfg, nil
}

// Run dials the service the subcommand needs and executes it.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	var logf func(string, ...any)
	if cfg.Verbose {
		logf = log.Printf
	}

	switch cfg.Command {
	case CommandEstimate:
		conn, err := grpcdial.DialService(ctx, cfg.Endpoints.CalorieAddr, caloriev1.CalorieService_ServiceDesc.ServiceName,
			"calorie", cfg.APIKey, timeouts.GRPCDial, logf)
		if err != nil {
			return err
		}
		defer conn.Close()
		return runEstimate(ctx, caloriev1.NewCalorieServiceClient(conn), cfg.Args, out)
	case CommandMeal, CommandTotal:
		conn, err := grpcdial.DialService(ctx, cfg.Endpoints.DiningAddr, diningv1.DiningCalorieService_ServiceDesc.ServiceName,
			"dining", cfg.APIKey, timeouts.GRPCDial, logf)
		if err != nil {
			return err
		}
		defer conn.Close()
		client := diningv1.NewDiningCalorieServiceClient(conn)
		if cfg.Command == CommandMeal {
			if in == nil {
				return errors.New("input is required for meal")
			}
			return runMeal(ctx, client, in, out)
		}
		return runTotal(ctx, client, cfg.Args, out)
	case CommandWorkout:
		conn, err := grpcdial.DialService(ctx, cfg.Endpoints.WorkoutAddr, workoutv1.WorkoutRecommendationService_ServiceDesc.ServiceName,
			"workout", cfg.APIKey, timeouts.GRPCDial, logf)
		if err != nil {
			return err
		}
		defer conn.Close()
		return runWorkout(ctx, workoutv1.NewWorkoutRecommendationServiceClient(conn), cfg.Args, out)
	default:
		fmt.Fprint(out, usage)
		if cfg.Command == "" {
			return ErrUsage
		}
		return fmt.Errorf("%w: %s", ErrUsage, cfg.Command)
	}
}
