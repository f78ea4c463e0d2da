package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	antitrack "github.com/akhilc162005/anti-location-tracker/pkg/antitrack"
)

//go:embed assets/banner_color.ansi
var bannerColor string

//go:embed assets/banner_plain.txt
var bannerPlain string

const defaultConfigPath = "./data/config.yaml"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "antitrack: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "antitrack",
		Short:         "GPS signal defense and live-location simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if cmd.Name() == "stats" {
				return
			}
			fmt.Print(selectBanner())
			fmt.Println()
		},
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", defaultConfigPath, "path to the YAML configuration file")

	root.AddCommand(
		newRunCmd(&cfgPath),
		newMonitorCmd(&cfgPath),
		newTrackCmd(&cfgPath),
		newLinksCmd(&cfgPath),
		newDemoCmd(),
		newValidateCmd(&cfgPath),
		newStatsCmd(),
	)

	return root
}

func selectBanner() string {
	if os.Getenv("NO_COLOR") != "" {
		return bannerPlain
	}
	return bannerColor
}

// loadConfig reads the config file, falling back to defaults when the
// default path does not exist. An explicit path must exist.
func loadConfig(path string) (*antitrack.Config, error) {
	cfg, err := antitrack.LoadConfig(path)
	if err == nil {
		return cfg, nil
	}
	if path == defaultConfigPath && errors.Is(err, os.ErrNotExist) {
		return antitrack.DefaultConfig(), nil
	}
	return nil, err
}
