package sink

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
)

func TestJSONLSinkRoundTrip(t *testing.T) {
	dir := t.TempDir()
	signalPath := filepath.Join(dir, "nested", "signals.jsonl")
	locationPath := filepath.Join(dir, "nested", "locations.jsonl")

	s, err := NewJSONLSink(signalPath, locationPath)
	if err != nil {
		t.Fatalf("open sink: %v", err)
	}

	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		rec := domain.SignalLogRecord{
			Timestamp:        ts.Add(time.Duration(i) * time.Second),
			SignalsDetected:  i,
			ThreatLevel:      "medium",
			ProtectionActive: i > 0,
			DetectionMode:    "active",
		}
		if err := s.WriteSignal(rec); err != nil {
			t.Fatalf("write signal %d: %v", i, err)
		}
	}

	loc := domain.NewLocationLogRecord(domain.LocationSample{
		Name:      "New York",
		Lat:       40.7128,
		Lon:       -74.0060,
		Timestamp: ts,
		SpeedKPH:  42.5,
		AccuracyM: 5.1,
	})
	if err := s.WriteLocation(loc); err != nil {
		t.Fatalf("write location: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	signalLines := readLines(t, signalPath)
	if len(signalLines) != 3 {
		t.Fatalf("expected 3 signal lines, got %d", len(signalLines))
	}
	for i, line := range signalLines {
		var rec domain.SignalLogRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if rec.SignalsDetected != i || rec.ThreatLevel != "medium" {
			t.Fatalf("line %d round-tripped wrong: %+v", i, rec)
		}
	}

	locationLines := readLines(t, locationPath)
	if len(locationLines) != 1 {
		t.Fatalf("expected 1 location line, got %d", len(locationLines))
	}
	var got domain.LocationLogRecord
	if err := json.Unmarshal([]byte(locationLines[0]), &got); err != nil {
		t.Fatalf("location line not valid JSON: %v", err)
	}
	if got.Location != "New York" || got.Coordinates != "40.712800,-74.006000" {
		t.Fatalf("unexpected location record: %+v", got)
	}
}

func TestJSONLSinkOmitsDisabledFeatureFields(t *testing.T) {
	dir := t.TempDir()
	s, err := NewJSONLSink(filepath.Join(dir, "s.jsonl"), filepath.Join(dir, "l.jsonl"))
	if err != nil {
		t.Fatalf("open sink: %v", err)
	}

	rec := domain.NewLocationLogRecord(domain.LocationSample{Name: "London", Timestamp: time.Now()})
	if err := s.WriteLocation(rec); err != nil {
		t.Fatalf("write location: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	lines := readLines(t, filepath.Join(dir, "l.jsonl"))
	var fields map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"weather", "temperature", "traffic", "battery"} {
		if _, present := fields[key]; present {
			t.Fatalf("field %q should be omitted when the feature is off", key)
		}
	}
}

func TestJSONLSinkAppendsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	signalPath := filepath.Join(dir, "s.jsonl")
	locationPath := filepath.Join(dir, "l.jsonl")

	for run := 0; run < 2; run++ {
		s, err := NewJSONLSink(signalPath, locationPath)
		if err != nil {
			t.Fatalf("open sink (run %d): %v", run, err)
		}
		if err := s.WriteSignal(domain.SignalLogRecord{Timestamp: time.Now()}); err != nil {
			t.Fatalf("write (run %d): %v", run, err)
		}
		if err := s.Close(); err != nil {
			t.Fatalf("close (run %d): %v", run, err)
		}
	}

	if got := len(readLines(t, signalPath)); got != 2 {
		t.Fatalf("expected 2 lines after reopen, got %d", got)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan %s: %v", path, err)
	}
	return lines
}
