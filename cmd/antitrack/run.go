package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	antitrack "github.com/akhilc162005/anti-location-tracker/pkg/antitrack"
)

func newRunCmd(cfgPath *string) *cobra.Command {
	var seed int64
	var seeded bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run both sessions headless until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			var opts []antitrack.Option
			if seeded {
				opts = append(opts, antitrack.WithSeed(seed))
			}

			rt, err := antitrack.NewRuntime(cfg, opts...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Printf("monitoring every %s, tracking every %s, metrics on %s (Ctrl+C to stop)\n",
				cfg.ScanInterval, cfg.TrackInterval, cfg.Metrics.Addr)
			return rt.Run(ctx)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "seed the simulators for reproducible output")
	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		seeded = cmd.Flags().Changed("seed")
	}
	return cmd
}
