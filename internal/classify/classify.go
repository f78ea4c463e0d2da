// Package classify derives a threat severity from a sweep of detected
// signals. The mapping is a pure function of the input: no state is kept
// between calls.
package classify

import "github.com/akhilc162005/anti-location-tracker/internal/domain"

// Threat maps total strength and mean quality onto a severity. Checks run
// in priority order, critical first. An empty sweep is SeverityNone.
func Threat(signals []domain.SignalSample) domain.Severity {
	if len(signals) == 0 {
		return domain.SeverityNone
	}

	var totalStrength, qualitySum float64
	for _, s := range signals {
		totalStrength += s.Strength
		qualitySum += s.Quality
	}
	avgQuality := qualitySum / float64(len(signals))

	switch {
	case totalStrength > 2.0 && avgQuality > 0.8:
		return domain.SeverityCritical
	case totalStrength > 1.5 && avgQuality > 0.7:
		return domain.SeverityHigh
	case totalStrength > 1.0:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}
