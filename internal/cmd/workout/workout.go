// Package workout parses workout service flags and launches the service.
package workout

import (
	"context"
	"flag"
	"fmt"

	"github.com/louisbranch/calorie.space/internal/platform/activitylog"
	"github.com/louisbranch/calorie.space/internal/platform/apikey"
	entrypoint "github.com/louisbranch/calorie.space/internal/platform/cmd"
	server "github.com/louisbranch/calorie.space/internal/services/workout/app"
)

// Config holds workout command configuration.
type Config struct {
	Port            int    `env:"CALORIE_SPACE_WORKOUT_PORT"      envDefault:"50053"`
	ActivityLogPath string `env:"CALORIE_SPACE_ACTIVITY_LOG_PATH" envDefault:"logs/analytics.log"`
	APIKeys         apikey.Config
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The workout gRPC server port")
	fs.StringVar(&cfg.ActivityLogPath, "activity-log", cfg.ActivityLogPath, "Path of the append-only activity log")
	fs.StringVar(&cfg.APIKeys.KeysFile, "api-keys-file", cfg.APIKeys.KeysFile, "Optional file with API_KEY or API_KEYS entries")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the workout gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWorkout, func(ctx context.Context) error {
		keys, err := apikey.Load(cfg.APIKeys)
		if err != nil {
			return fmt.Errorf("load api keys: %w", err)
		}
		activity, err := activitylog.Open(cfg.ActivityLogPath)
		if err != nil {
			return fmt.Errorf("open activity log: %w", err)
		}
		defer activity.Close()

		return server.Run(ctx, cfg.Port, server.Runtime{Keys: keys, Activity: activity})
	})
}
