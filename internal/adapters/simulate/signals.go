// Package simulate implements the sampler ports with random draws over
// fixed reference tables. It stands where a radio or GNSS receiver adapter
// would go in a real deployment.
package simulate

import (
	"math/rand"
	"time"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
	"github.com/akhilc162005/anti-location-tracker/internal/ports"
)

// Band is one monitored GPS carrier.
type Band struct {
	Name         string
	FrequencyMHz float64
}

// GPSBands are the carriers every sweep covers.
var GPSBands = []Band{
	{"L1", 1575.42},
	{"L2", 1227.60},
	{"L5", 1176.45},
}

// detectionThreshold is the minimum strength for a band to appear in a sweep.
const detectionThreshold = 0.3

// SignalSimulator draws a sweep of band readings per call.
type SignalSimulator struct {
	rnd *rand.Rand
	now func() time.Time
}

// NewSignalSimulator builds a simulator around the given random source. A
// nil source gets a time-seeded one.
func NewSignalSimulator(rnd *rand.Rand) *SignalSimulator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SignalSimulator{rnd: rnd, now: time.Now}
}

// Sample sweeps every band, drawing strength from [0.1,1.0) and quality
// from [0.5,0.95). Bands below the detection threshold are omitted.
func (s *SignalSimulator) Sample() []domain.SignalSample {
	var out []domain.SignalSample
	for _, band := range GPSBands {
		strength := 0.1 + s.rnd.Float64()*0.9
		quality := 0.5 + s.rnd.Float64()*0.45
		if strength <= detectionThreshold {
			continue
		}
		out = append(out, domain.SignalSample{
			Band:         band.Name,
			FrequencyMHz: band.FrequencyMHz,
			Strength:     strength,
			Quality:      quality,
			Timestamp:    s.now(),
		})
	}
	return out
}

var _ ports.SignalSampler = (*SignalSimulator)(nil)
