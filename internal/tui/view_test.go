package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/akhilc162005/anti-location-tracker/internal/app/session"
	"github.com/akhilc162005/anti-location-tracker/internal/domain"
)

func TestMonitorViewRendersSnapshot(t *testing.T) {
	m := NewMonitorModel(nil, ThemeByName("classic"))
	m.monSnap = session.MonitorSnapshot{
		Running:       true,
		Tier:          domain.TierHigh,
		Mode:          domain.ModeActive,
		Ticks:         12,
		TotalDetected: 30,
		LastSweep: []domain.SignalSample{
			{Band: "L1", FrequencyMHz: 1575.42, Strength: 0.9, Quality: 0.9},
		},
		LastThreat: domain.SeverityCritical,
		LastActions: []domain.CountermeasureRecord{
			{Method: domain.MethodJamming, Effectiveness: 0.8, Success: true, Detail: "jamming L1 @ 1575.42 MHz"},
			{Method: domain.MethodJamming, Effectiveness: 0.65, Success: false, Detail: "jamming L2 @ 1227.60 MHz"},
		},
		ProtectionActive: true,
	}

	out := m.View()
	assert.Contains(t, out, "Anti-GPS Monitor")
	assert.Contains(t, out, "CRITICAL")
	assert.Contains(t, out, "1575.42 MHz")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "✗")
}

func TestTrackerViewRendersFixAndRoute(t *testing.T) {
	m := NewTrackerModel(nil, ThemeByName("pro"))
	fix := domain.LocationSample{
		Name:       "Tokyo",
		Country:    "Japan",
		Lat:        35.6762,
		Lon:        139.6503,
		Timestamp:  time.Now(),
		SpeedKPH:   42,
		AccuracyM:  4.2,
		HeadingDeg: 90,
		Weather:    &domain.WeatherInfo{Condition: "Sunny", TemperatureC: 25, Humidity: 40},
	}
	m.trackSnap = session.TrackerSnapshot{
		Running:    true,
		Ticks:      5,
		Current:    &fix,
		Stored:     5,
		DistanceKM: 1234.5,
		RouteMode:  true,
		LastRoute:  &domain.RouteInfo{DistanceKM: 10, DurationMin: 20, AvgSpeedKPH: 30, FuelL: 0.8, CO2KG: 2},
	}

	out := m.View()
	assert.Contains(t, out, "Live Location Tracker")
	assert.Contains(t, out, "Tokyo")
	assert.Contains(t, out, "35.676200, 139.650300")
	assert.Contains(t, out, "Sunny")
	assert.Contains(t, out, "10.0 km in 20 min")
}

func TestTrackerViewWithoutFix(t *testing.T) {
	m := NewTrackerModel(nil, ThemeByName("midnight"))
	out := m.View()
	assert.Contains(t, out, "no fix yet")
}

func TestLinksToggleOnlyInTrackerMode(t *testing.T) {
	monitor := NewMonitorModel(nil, ThemeByName("classic"))
	updated, _ := monitor.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	assert.False(t, updated.(Model).showLinks)

	tracker := NewTrackerModel(nil, ThemeByName("classic"))
	updated, _ = tracker.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	assert.True(t, updated.(Model).showLinks)

	fix := domain.LocationSample{Name: "Paris", Country: "France", Lat: 48.8566, Lon: 2.3522}
	model := updated.(Model)
	model.trackSnap = session.TrackerSnapshot{Current: &fix}
	out := model.View()
	assert.Contains(t, out, "Share links")
	assert.Contains(t, out, "google_maps:")
	assert.NotContains(t, out, "qr_code_data")
}
