// Package mcp parses MCP command flags and starts the protocol adapter.
package mcp

import (
	"context"
	"flag"

	"github.com/louisbranch/calorie.space/internal/platform/apikey"
	entrypoint "github.com/louisbranch/calorie.space/internal/platform/cmd"
	"github.com/louisbranch/calorie.space/internal/services/mcp/service"
	"github.com/louisbranch/calorie.space/internal/services/shared/grpcdial"
)

// Config holds MCP command configuration.
type Config struct {
	Endpoints    grpcdial.Endpoints
	APIKey       string   `env:"CALORIE_SPACE_API_KEY"`
	Transport    string   `env:"CALORIE_SPACE_MCP_TRANSPORT"     envDefault:"stdio"`
	HTTPAddr     string   `env:"CALORIE_SPACE_MCP_HTTP_ADDR"     envDefault:"localhost:8081"`
	AllowedHosts []string `env:"CALORIE_SPACE_MCP_ALLOWED_HOSTS" envSeparator:","`
}

// ParseConfig parses environment and flags into a Config.
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
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "MCP transport: stdio or http")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP bind address when -transport=http")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return service.Run(ctx, service.Config{
			Endpoints:    cfg.Endpoints,
			APIKey:       cfg.APIKey,
			Transport:    cfg.Transport,
			HTTPAddr:     cfg.HTTPAddr,
			AllowedHosts: cfg.AllowedHosts,
		})
	})
}
