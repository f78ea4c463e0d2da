package main

import (
	"context"
	"fmt"
	"log"
	"time"

	antitracker "github.com/akhilc162005/anti-location-tracker"
)

func main() {
	sink := antitracker.NewCallbackSink(
		func(rec antitracker.SignalLogRecord) error {
			fmt.Printf("%s signals=%d threat=%s\n",
				rec.Timestamp.Format(time.RFC3339), rec.SignalsDetected, rec.ThreatLevel)
			return nil
		},
		func(rec antitracker.LocationLogRecord) error {
			fmt.Printf("%s at %s (%s)\n",
				rec.Timestamp.Format(time.RFC3339), rec.Location, rec.Coordinates)
			return nil
		},
	)

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
