package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	workoutcmd "github.com/louisbranch/calorie.space/internal/cmd/workout"
)

// main starts the workout recommendation gRPC server.
func main() {
	cfg, err := workoutcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[WORKOUT] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := workoutcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve workout service: %v", err)
	}
}
