package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	antitracker "github.com/akhilc162005/anti-location-tracker"
)

func main() {
	rt, err := antitracker.NewRuntime(antitracker.DefaultConfig())
	if err != nil {
		log.Fatalf("build runtime: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rt.Run(ctx); err != nil {
		log.Fatalf("runtime exited: %v", err)
	}
}
