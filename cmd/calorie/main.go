package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	caloriecmd "github.com/louisbranch/calorie.space/internal/cmd/calorie"
)

// main starts the calorie estimation gRPC server.
func main() {
	cfg, err := caloriecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[CALORIE] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := caloriecmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve calorie service: %v", err)
	}
}
