package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/akhilc162005/anti-location-tracker/internal/tui"
	antitrack "github.com/akhilc162005/anti-location-tracker/pkg/antitrack"
)

func newMonitorCmd(cfgPath *string) *cobra.Command {
	var themeName string

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Open the signal-monitoring dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
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

			model := tui.NewMonitorModel(rt.Monitor(), tui.ThemeByName(cfg.Theme))
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			waitStopped(rt.Monitor().Done())
			return err
		},
	}

	cmd.Flags().StringVar(&themeName, "theme", "", "dashboard theme (classic, midnight, pro)")
	return cmd
}

// waitStopped drains a session's done channel. A nil channel means the
// session never started, which is fine.
func waitStopped(done <-chan struct{}) {
	if done != nil {
		<-done
	}
}
