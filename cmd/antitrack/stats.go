package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/akhilc162005/anti-location-tracker/internal/adapters/observability"
)

func newStatsCmd() *cobra.Command {
	var url string
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Poll the Prometheus endpoint and print live counters",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			fmt.Printf("Streaming metrics from %s (Ctrl+C to stop)\n", url)
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if err := printMetricsSnapshot(url); err != nil {
						fmt.Fprintf(os.Stderr, "stats error: %v\n", err)
					}
				}
			}
		},
	}

	cmd.Flags().StringVar(&url, "url", "http://localhost:9100/metrics", "Prometheus metrics endpoint")
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "refresh interval")
	return cmd
}

func printMetricsSnapshot(url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	targets := map[string]float64{
		observability.MetricTicks:           0,
		observability.MetricSignalsDetected: 0,
		observability.MetricThreatLevel:     0,
		observability.MetricHistoryLength:   0,
		observability.MetricDistanceKM:      0,
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		for key := range targets {
			if strings.HasPrefix(line, key+" ") {
				var value float64
				if _, err := fmt.Sscanf(line, key+" %f", &value); err == nil {
					targets[key] = value
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Printf("[%s] ticks=%.0f signals=%.0f threat=%.0f history=%.0f distance_km=%.2f\n",
		time.Now().Format(time.RFC3339),
		targets[observability.MetricTicks],
		targets[observability.MetricSignalsDetected],
		targets[observability.MetricThreatLevel],
		targets[observability.MetricHistoryLength],
		targets[observability.MetricDistanceKM],
	)
	return nil
}
