package respond

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
)

var twoSignals = []domain.SignalSample{
	{Band: "L1", FrequencyMHz: 1575.42, Strength: 0.9, Quality: 0.9},
	{Band: "L2", FrequencyMHz: 1227.60, Strength: 0.8, Quality: 0.85},
}

func methodsOf(records []domain.CountermeasureRecord) map[domain.Method]int {
	out := map[domain.Method]int{}
	for _, r := range records {
		out[r.Method]++
	}
	return out
}

func TestRespondLowSeverityDoesNothing(t *testing.T) {
	r := New(rand.New(rand.NewSource(1)))
	for _, sev := range []domain.Severity{domain.SeverityNone, domain.SeverityLow} {
		if got := r.Respond(domain.TierMaximum, sev, twoSignals); got != nil {
			t.Fatalf("expected no actions at severity %s, got %d", sev, len(got))
		}
	}
}

func TestRespondLowTierHighSeverity(t *testing.T) {
	r := New(rand.New(rand.NewSource(2)))
	records := r.Respond(domain.TierLow, domain.SeverityCritical, twoSignals)

	if len(records) != 1 {
		t.Fatalf("low tier should apply exactly one action, got %d", len(records))
	}
	if records[0].Method != domain.MethodSpoofing {
		t.Fatalf("expected spoofing, got %s", records[0].Method)
	}
	if !records[0].Success {
		t.Fatal("spoofing never fails")
	}
	if !strings.Contains(records[0].Detail, "spoofed to ") {
		t.Fatalf("unexpected spoof detail %q", records[0].Detail)
	}
}

func TestRespondMaximumTierAppliesEverything(t *testing.T) {
	r := New(rand.New(rand.NewSource(3)))
	records := r.Respond(domain.TierMaximum, domain.SeverityHigh, twoSignals)

	counts := methodsOf(records)
	if counts[domain.MethodSpoofing] != 1 {
		t.Fatalf("expected one spoofing record, got %d", counts[domain.MethodSpoofing])
	}
	if counts[domain.MethodJamming] != len(twoSignals) {
		t.Fatalf("expected one jamming record per signal, got %d", counts[domain.MethodJamming])
	}
	if counts[domain.MethodHopping] != 1 {
		t.Fatalf("expected one hopping record, got %d", counts[domain.MethodHopping])
	}
	if counts[domain.MethodEncryption] != 1 {
		t.Fatalf("expected one encryption record, got %d", counts[domain.MethodEncryption])
	}
}

func TestRespondMediumSeverityReducedSet(t *testing.T) {
	r := New(rand.New(rand.NewSource(4)))
	records := r.Respond(domain.TierMaximum, domain.SeverityMedium, twoSignals)

	counts := methodsOf(records)
	if counts[domain.MethodHopping] != 0 || counts[domain.MethodEncryption] != 0 {
		t.Fatalf("medium severity must not hop or encrypt: %v", counts)
	}
	if counts[domain.MethodSpoofing] != 1 || counts[domain.MethodJamming] != len(twoSignals) {
		t.Fatalf("medium severity should spoof and jam: %v", counts)
	}

	// Low tier has no jamming even at medium severity.
	lowRecords := r.Respond(domain.TierLow, domain.SeverityMedium, twoSignals)
	lowCounts := methodsOf(lowRecords)
	if lowCounts[domain.MethodJamming] != 0 {
		t.Fatalf("low tier must not jam: %v", lowCounts)
	}
}

func TestJammingPowerAndSuccess(t *testing.T) {
	r := New(rand.New(rand.NewSource(5)))

	for i := 0; i < 200; i++ {
		records := r.jam(twoSignals)
		for _, rec := range records {
			if rec.Effectiveness < 0.6 || rec.Effectiveness >= 0.95 {
				t.Fatalf("jamming power %f outside [0.6,0.95)", rec.Effectiveness)
			}
			if rec.Success != (rec.Effectiveness > 0.7) {
				t.Fatalf("success flag disagrees with power %f", rec.Effectiveness)
			}
		}
	}
}

func TestEncryptionKeyIsCosmetic(t *testing.T) {
	r := New(rand.New(rand.NewSource(6)))
	rec := r.encrypt()

	if rec.Method != domain.MethodEncryption || !rec.Success {
		t.Fatalf("unexpected record %+v", rec)
	}
	if !strings.HasPrefix(rec.Detail, "AES-256 key ") {
		t.Fatalf("unexpected detail %q", rec.Detail)
	}
	key := strings.TrimSuffix(strings.TrimPrefix(rec.Detail, "AES-256 key "), "...")
	if len(key) != 8 {
		t.Fatalf("expected 8 hex chars in the label, got %q", key)
	}
	for _, c := range key {
		if !strings.ContainsRune(hexDigits, c) {
			t.Fatalf("non-hex character %q in key label", c)
		}
	}
}

func TestEffectivenessBounds(t *testing.T) {
	r := New(rand.New(rand.NewSource(7)))
	for i := 0; i < 100; i++ {
		for _, rec := range r.Respond(domain.TierMaximum, domain.SeverityCritical, twoSignals) {
			if rec.Effectiveness < 0 || rec.Effectiveness >= 1 || math.IsNaN(rec.Effectiveness) {
				t.Fatalf("effectiveness %f out of range for %s", rec.Effectiveness, rec.Method)
			}
		}
	}
}
