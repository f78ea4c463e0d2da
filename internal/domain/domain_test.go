package domain

import (
	"strings"
	"testing"
	"time"
)

func TestSeverityOrdering(t *testing.T) {
	order := []Severity{SeverityNone, SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	for i := 1; i < len(order); i++ {
		if order[i] <= order[i-1] {
			t.Fatalf("severity ordering broken at %s", order[i])
		}
	}
	if SeverityCritical.String() != "critical" || SeverityNone.String() != "none" {
		t.Fatal("severity names wrong")
	}
}

func TestParseTier(t *testing.T) {
	for want, name := range map[Tier]string{
		TierLow:     "low",
		TierMedium:  "medium",
		TierHigh:    "high",
		TierMaximum: "maximum",
	} {
		got, err := ParseTier(name)
		if err != nil || got != want {
			t.Fatalf("ParseTier(%q) = %v, %v", name, got, err)
		}
		if got.String() != name {
			t.Fatalf("round trip failed for %q", name)
		}
	}

	if _, err := ParseTier("ultra"); err == nil {
		t.Fatal("expected error for unknown tier")
	} else if !strings.Contains(err.Error(), "ultra") {
		t.Fatalf("error should quote the input: %v", err)
	}
}

func TestParseDetectionMode(t *testing.T) {
	for _, name := range []string{"passive", "active", "aggressive"} {
		mode, err := ParseDetectionMode(name)
		if err != nil || string(mode) != name {
			t.Fatalf("ParseDetectionMode(%q) = %v, %v", name, mode, err)
		}
	}
	if _, err := ParseDetectionMode("stealth"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestNewLocationLogRecord(t *testing.T) {
	ts := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	temp := 18.5
	battery := 67.0

	sample := LocationSample{
		Name:      "Paris",
		Country:   "France",
		Lat:       48.8566,
		Lon:       2.3522,
		Timestamp: ts,
		SpeedKPH:  12.5,
		AccuracyM: 4.0,
		Weather:   &WeatherInfo{Condition: "Rainy", TemperatureC: temp},
		Traffic:   &TrafficInfo{Condition: "Heavy"},
		Device:    &DeviceInfo{BatteryPct: battery},
	}

	rec := NewLocationLogRecord(sample)
	if rec.Location != "Paris" || rec.Coordinates != "48.856600,2.352200" {
		t.Fatalf("unexpected record base: %+v", rec)
	}
	if rec.Weather != "Rainy" || rec.Traffic != "Heavy" {
		t.Fatalf("conditions not copied: %+v", rec)
	}
	if rec.TemperatureC == nil || *rec.TemperatureC != temp {
		t.Fatalf("temperature not copied: %v", rec.TemperatureC)
	}
	if rec.BatteryPct == nil || *rec.BatteryPct != battery {
		t.Fatalf("battery not copied: %v", rec.BatteryPct)
	}
}

func TestNewLocationLogRecordOmitsDisabledBlocks(t *testing.T) {
	rec := NewLocationLogRecord(LocationSample{Name: "London"})
	if rec.Weather != "" || rec.Traffic != "" {
		t.Fatalf("conditions should be empty: %+v", rec)
	}
	if rec.TemperatureC != nil || rec.BatteryPct != nil {
		t.Fatalf("pointers should be nil: %+v", rec)
	}
}
