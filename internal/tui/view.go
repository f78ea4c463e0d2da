package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
	"github.com/akhilc162005/anti-location-tracker/internal/share"
)

func (m Model) View() string {
	var b strings.Builder

	switch m.mode {
	case ModeMonitor:
		b.WriteString(m.theme.Title.Render("🛡  Anti-GPS Monitor"))
		b.WriteString("\n")
		b.WriteString(m.monitorView())
	case ModeTracker:
		b.WriteString(m.theme.Title.Render("📍 Live Location Tracker"))
		b.WriteString("\n")
		b.WriteString(m.trackerView())
	}

	if m.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(m.theme.Bad.Render("error: " + m.lastErr.Error()))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m Model) statusLine(running bool) string {
	if running {
		return m.spinner.View() + m.theme.Good.Render("RUNNING")
	}
	return m.theme.Muted.Render("STOPPED")
}

func (m Model) monitorView() string {
	snap := m.monSnap

	var status strings.Builder
	fmt.Fprintf(&status, "%s %s\n", m.theme.Label.Render("Status:"), m.statusLine(snap.Running))
	fmt.Fprintf(&status, "%s %s\n", m.theme.Label.Render("Tier:"), m.theme.Value.Render(snap.Tier.String()))
	fmt.Fprintf(&status, "%s %s\n", m.theme.Label.Render("Mode:"), m.theme.Value.Render(string(snap.Mode)))
	fmt.Fprintf(&status, "%s %s\n", m.theme.Label.Render("Threat:"), m.severityStyle(snap.LastThreat).Render(strings.ToUpper(snap.LastThreat.String())))
	fmt.Fprintf(&status, "%s %d total, %d this sweep\n", m.theme.Label.Render("Signals:"), snap.TotalDetected, len(snap.LastSweep))
	fmt.Fprintf(&status, "%s %v", m.theme.Label.Render("Jamming active:"), snap.ProtectionActive)

	var sweep strings.Builder
	if len(snap.LastSweep) == 0 {
		sweep.WriteString(m.theme.Muted.Render("no signals above threshold"))
	}
	for i, sig := range snap.LastSweep {
		if i > 0 {
			sweep.WriteString("\n")
		}
		fmt.Fprintf(&sweep, "%s %8.2f MHz  strength %.2f  quality %.2f",
			m.theme.Value.Render(sig.Band), sig.FrequencyMHz, sig.Strength, sig.Quality)
	}

	var actions strings.Builder
	if len(snap.LastActions) == 0 {
		actions.WriteString(m.theme.Muted.Render("no countermeasures this tick"))
	}
	for i, a := range snap.LastActions {
		if i > 0 {
			actions.WriteString("\n")
		}
		mark := m.theme.Good.Render("✓")
		if !a.Success {
			mark = m.theme.Bad.Render("✗")
		}
		fmt.Fprintf(&actions, "%s %-18s %.2f  %s", mark, a.Method, a.Effectiveness, m.theme.Muted.Render(a.Detail))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Panel.Render(status.String()),
		m.theme.Panel.Render(sweep.String()),
		m.theme.Panel.Render(actions.String()),
	)
}

func (m Model) trackerView() string {
	snap := m.trackSnap

	var status strings.Builder
	fmt.Fprintf(&status, "%s %s\n", m.theme.Label.Render("Status:"), m.statusLine(snap.Running))
	fmt.Fprintf(&status, "%s %d fixes\n", m.theme.Label.Render("History:"), snap.Stored)
	fmt.Fprintf(&status, "%s %.2f km\n", m.theme.Label.Render("Distance:"), snap.DistanceKM)
	fmt.Fprintf(&status, "%s %v", m.theme.Label.Render("Route mode:"), snap.RouteMode)

	panels := []string{m.theme.Panel.Render(status.String())}

	if snap.Current != nil {
		panels = append(panels, m.theme.Panel.Render(m.locationPanel(*snap.Current)))
	} else {
		panels = append(panels, m.theme.Panel.Render(m.theme.Muted.Render("no fix yet - press s to start")))
	}

	if snap.RouteMode && snap.LastRoute != nil {
		r := snap.LastRoute
		route := fmt.Sprintf("%s %.1f km in %.0f min @ %.0f km/h\n%s %.1f L fuel, %.1f kg CO2, %d tolls, %d stops",
			m.theme.Label.Render("Route:"), r.DistanceKM, r.DurationMin, r.AvgSpeedKPH,
			m.theme.Label.Render("Cost:"), r.FuelL, r.CO2KG, r.Tolls, r.RestStops)
		panels = append(panels, m.theme.Panel.Render(route))
	}

	if m.showLinks && snap.Current != nil {
		panels = append(panels, m.theme.Panel.Render(m.linksPanel(*snap.Current)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

func (m Model) locationPanel(fix domain.LocationSample) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s, %s\n", m.theme.Label.Render("City:"), m.theme.Value.Render(fix.Name), fix.Country)
	fmt.Fprintf(&b, "%s %.6f, %.6f\n", m.theme.Label.Render("Position:"), fix.Lat, fix.Lon)
	fmt.Fprintf(&b, "%s %.1f km/h  %s %.1f°  %s %.0f m\n",
		m.theme.Label.Render("Speed:"), fix.SpeedKPH,
		m.theme.Label.Render("Heading:"), fix.HeadingDeg,
		m.theme.Label.Render("Alt:"), fix.AltitudeM)
	fmt.Fprintf(&b, "%s ±%.1f m", m.theme.Label.Render("Accuracy:"), fix.AccuracyM)
	if fix.Weather != nil {
		fmt.Fprintf(&b, "\n%s %s, %.1f°C, humidity %.0f%%",
			m.theme.Label.Render("Weather:"), fix.Weather.Condition, fix.Weather.TemperatureC, fix.Weather.Humidity)
	}
	if fix.Traffic != nil {
		fmt.Fprintf(&b, "\n%s %s, %d min delay",
			m.theme.Label.Render("Traffic:"), fix.Traffic.Condition, fix.Traffic.DelayMinutes)
	}
	if fix.Device != nil {
		fmt.Fprintf(&b, "\n%s %.0f%% battery, %d/5 bars, %s",
			m.theme.Label.Render("Device:"), fix.Device.BatteryPct, fix.Device.SignalBars, fix.Device.Network)
	}
	return b.String()
}

func (m Model) linksPanel(fix domain.LocationSample) string {
	links := share.Build(fix)
	var b strings.Builder
	b.WriteString(m.theme.Value.Render("Share links"))
	for _, group := range share.Groups {
		if group.Title == "Custom" {
			continue
		}
		for _, platform := range group.Platforms {
			if link, ok := links[platform]; ok {
				fmt.Fprintf(&b, "\n%s %s", m.theme.Label.Render(platform+":"), link)
			}
		}
	}
	return b.String()
}

func (m Model) severityStyle(sev domain.Severity) lipgloss.Style {
	switch {
	case sev >= domain.SeverityHigh:
		return m.theme.Bad
	case sev == domain.SeverityMedium:
		return m.theme.Warn
	default:
		return m.theme.Good
	}
}
