package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/akhilc162005/anti-location-tracker/internal/tui"
	antitrack "github.com/akhilc162005/anti-location-tracker/pkg/antitrack"
)

func newTrackCmd(cfgPath *string) *cobra.Command {
	var themeName string
	var routeMode bool

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Open the live-location dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if themeName != "" {
				cfg.Theme = themeName
			}

			rt, err := antitrack.NewRuntime(cfg)
			if err != nil {
				return err
			}
			defer rt.Close()

			if cmd.Flags().Changed("route") {
				rt.Tracker().SetRouteMode(routeMode)
			}

			model := tui.NewTrackerModel(rt.Tracker(), tui.ThemeByName(cfg.Theme))
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			waitStopped(rt.Tracker().Done())
			return err
		},
	}

	cmd.Flags().StringVar(&themeName, "theme", "", "dashboard theme (classic, midnight, pro)")
	cmd.Flags().BoolVar(&routeMode, "route", false, "estimate a route between consecutive fixes")
	return cmd
}
