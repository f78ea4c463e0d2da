package domain

import (
	"fmt"
	"time"
)

// SignalLogRecord is one line of the signal-monitoring log.
type SignalLogRecord struct {
	Timestamp        time.Time `json:"timestamp"`
	SignalsDetected  int       `json:"signals_detected"`
	ThreatLevel      string    `json:"threat_level"`
	ProtectionActive bool      `json:"protection_active"`
	DetectionMode    string    `json:"detection_mode"`
}

// LocationLogRecord is one line of the location-tracking log. The weather,
// temperature, traffic and battery fields only appear in the extended
// variant, when the corresponding features are enabled.
type LocationLogRecord struct {
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location"`
	Coordinates string    `json:"coordinates"`
	SpeedKPH    float64   `json:"speed"`
	AccuracyM   float64   `json:"accuracy"`

	Weather      string   `json:"weather,omitempty"`
	TemperatureC *float64 `json:"temperature,omitempty"`
	Traffic      string   `json:"traffic,omitempty"`
	BatteryPct   *float64 `json:"battery,omitempty"`
}

// NewLocationLogRecord builds the log line for one fix. Coordinates are
// rendered with six decimal places, matching the share text format.
func NewLocationLogRecord(s LocationSample) LocationLogRecord {
	rec := LocationLogRecord{
		Timestamp:   s.Timestamp,
		Location:    s.Name,
		Coordinates: fmt.Sprintf("%.6f,%.6f", s.Lat, s.Lon),
		SpeedKPH:    s.SpeedKPH,
		AccuracyM:   s.AccuracyM,
	}
	if s.Weather != nil {
		rec.Weather = s.Weather.Condition
		temp := s.Weather.TemperatureC
		rec.TemperatureC = &temp
	}
	if s.Traffic != nil {
		rec.Traffic = s.Traffic.Condition
	}
	if s.Device != nil {
		battery := s.Device.BatteryPct
		rec.BatteryPct = &battery
	}
	return rec
}
