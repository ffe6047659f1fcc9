package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	entrypoint "github.com/louisbranch/calorie.space/internal/platform/cmd"
	"github.com/louisbranch/calorie.space/internal/platform/config"
	"github.com/louisbranch/calorie.space/internal/tools/caloriectl"
)

func main() {
	cfg, err := caloriectl.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCLI, func(ctx context.Context) error {
		return caloriectl.Run(ctx, cfg, os.Stdin, os.Stdout)
	})
	if err != nil {
		config.Exitf("%s: %v", cfg.Command, err)
	}
}
