package main

import (
	"fmt"

	"github.com/spf13/cobra"

	antitrack "github.com/akhilc162005/anti-location-tracker/pkg/antitrack"
)

func newValidateCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load and validate a config file without starting anything",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := antitrack.LoadConfig(*cfgPath)
			if err != nil {
				return err
			}
			fmt.Printf("config %s looks good ✅\n", *cfgPath)
			fmt.Printf("  tier=%s mode=%s scan=%s track=%s theme=%s\n",
				cfg.ProtectionTier, cfg.DetectionMode, cfg.ScanInterval, cfg.TrackInterval, cfg.Theme)
			if cfg.Archive.ConnString != "" {
				fmt.Printf("  archive table %q enabled\n", cfg.Archive.Table)
			}
			if cfg.Live.Addr != "" {
				fmt.Printf("  live publishing to %s (key %q)\n", cfg.Live.Addr, cfg.Live.Key)
			}
			return nil
		},
	}
}
