package main

import (
	"context"
	"fmt"
	"log"
	"time"

	antitracker "github.com/akhilc162005/anti-location-tracker"
)

func main() {
	sink := antitracker.NewChannelSink(32)
	defer sink.Close()

	go fanoutWorker("ingest", sink.Records())

	rt, err := antitracker.NewRuntime(antitracker.DefaultConfig(), antitracker.WithSink(sink))
	if err != nil {
		log.Fatalf("build runtime: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := rt.Run(ctx); err != nil {
		log.Fatalf("runtime error: %v", err)
	}
}

func fanoutWorker(name string, records <-chan antitracker.Record) {
	for rec := range records {
		switch {
		case rec.Signal != nil:
			fmt.Printf("[%s] sweep: %d signals, threat %s\n", name, rec.Signal.SignalsDetected, rec.Signal.ThreatLevel)
		case rec.Location != nil:
			fmt.Printf("[%s] fix: %s at %s\n", name, rec.Location.Location, rec.Location.Coordinates)
		}
	}
}
