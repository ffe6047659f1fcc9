package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	diningcmd "github.com/louisbranch/calorie.space/internal/cmd/dining"
)

// main starts the dining calorie streaming gRPC server.
func main() {
	cfg, err := diningcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[DINING] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := diningcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve dining service: %v", err)
	}
}
