// Package respond selects and applies countermeasure actions. Every action
// here is a simulation: effectiveness values are random draws and the
// encryption key is a cosmetic label, never real RF or cryptography.
package respond

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
)

// tierActions lists which methods each protection tier may apply.
var tierActions = map[domain.Tier][]domain.Method{
	domain.TierLow:     {domain.MethodSpoofing},
	domain.TierMedium:  {domain.MethodSpoofing, domain.MethodJamming},
	domain.TierHigh:    {domain.MethodSpoofing, domain.MethodJamming, domain.MethodHopping},
	domain.TierMaximum: {domain.MethodSpoofing, domain.MethodJamming, domain.MethodHopping, domain.MethodEncryption},
}

// reducedActions is the basic-protection subset applied at medium severity.
var reducedActions = map[domain.Method]bool{
	domain.MethodSpoofing: true,
	domain.MethodJamming:  true,
}

// decoyLocations are the fixed spoofing targets.
var decoyLocations = []struct {
	Name string
	Lat  float64
	Lon  float64
}{
	{"New York", 40.7128, -74.0060},
	{"London", 51.5074, -0.1278},
	{"Tokyo", 35.6762, 139.6503},
	{"Sydney", -33.8688, 151.2093},
	{"Moscow", 55.7558, 37.6176},
}

// hopPatterns are the fixed frequency-hopping sets, in MHz.
var hopPatterns = [][]float64{
	{1575.42, 1227.60, 1176.45}, // GPS carriers
	{2400.0, 5800.0, 900.0},
	{433.0, 868.0, 2400.0}, // ISM bands
}

const hexDigits = "0123456789ABCDEF"

// Responder applies countermeasures. It owns its random source and is used
// by exactly one tick worker, so no locking is needed.
type Responder struct {
	rnd *rand.Rand
	now func() time.Time
}

// New builds a responder around the given random source. A nil source gets
// a time-seeded one.
func New(rnd *rand.Rand) *Responder {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{rnd: rnd, now: time.Now}
}

// Respond applies the actions the tier allows, filtered by urgency:
// critical and high severity get the full tier list, medium gets the
// reduced list, anything lower gets nothing. It never fails and never
// blocks.
func (r *Responder) Respond(tier domain.Tier, severity domain.Severity, signals []domain.SignalSample) []domain.CountermeasureRecord {
	var eligible []domain.Method
	switch {
	case severity >= domain.SeverityHigh:
		eligible = tierActions[tier]
	case severity == domain.SeverityMedium:
		for _, m := range tierActions[tier] {
			if reducedActions[m] {
				eligible = append(eligible, m)
			}
		}
	default:
		return nil
	}

	var records []domain.CountermeasureRecord
	for _, method := range eligible {
		switch method {
		case domain.MethodSpoofing:
			records = append(records, r.spoof())
		case domain.MethodJamming:
			records = append(records, r.jam(signals)...)
		case domain.MethodHopping:
			records = append(records, r.hop())
		case domain.MethodEncryption:
			records = append(records, r.encrypt())
		}
	}
	return records
}

// spoof picks a decoy city. Spoofing has no failure concept.
func (r *Responder) spoof() domain.CountermeasureRecord {
	decoy := decoyLocations[r.rnd.Intn(len(decoyLocations))]
	return domain.CountermeasureRecord{
		Method:        domain.MethodSpoofing,
		Effectiveness: r.rnd.Float64(),
		Success:       true,
		Detail:        fmt.Sprintf("spoofed to %s (%.4f, %.4f)", decoy.Name, decoy.Lat, decoy.Lon),
		Timestamp:     r.now(),
	}
}

// jam produces one record per detected signal. Jamming is the only action
// that can fail: success requires power above 0.7.
func (r *Responder) jam(signals []domain.SignalSample) []domain.CountermeasureRecord {
	records := make([]domain.CountermeasureRecord, 0, len(signals))
	for _, sig := range signals {
		power := 0.6 + r.rnd.Float64()*0.35
		records = append(records, domain.CountermeasureRecord{
			Method:        domain.MethodJamming,
			Effectiveness: power,
			Success:       power > 0.7,
			Detail:        fmt.Sprintf("jamming %s @ %.2f MHz", sig.Band, sig.FrequencyMHz),
			Timestamp:     r.now(),
		})
	}
	return records
}

func (r *Responder) hop() domain.CountermeasureRecord {
	pattern := hopPatterns[r.rnd.Intn(len(hopPatterns))]
	interval := 0.1 + r.rnd.Float64()*0.4
	return domain.CountermeasureRecord{
		Method:        domain.MethodHopping,
		Effectiveness: r.rnd.Float64(),
		Success:       true,
		Detail:        fmt.Sprintf("%d frequencies, %.2fs interval", len(pattern), interval),
		Timestamp:     r.now(),
	}
}

// encrypt emits a random hex key label. This is a simulation-only record;
// nothing is actually encrypted.
func (r *Responder) encrypt() domain.CountermeasureRecord {
	key := make([]byte, 32)
	for i := range key {
		key[i] = hexDigits[r.rnd.Intn(len(hexDigits))]
	}
	return domain.CountermeasureRecord{
		Method:        domain.MethodEncryption,
		Effectiveness: r.rnd.Float64(),
		Success:       true,
		Detail:        fmt.Sprintf("AES-256 key %s...", key[:8]),
		Timestamp:     r.now(),
	}
}
