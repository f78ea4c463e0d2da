package ports

import "github.com/akhilc162005/anti-location-tracker/internal/domain"

// SignalSampler produces the set of carrier bands visible on one sweep.
// Implementations never fail; an empty slice means nothing was detected.
type SignalSampler interface {
	Sample() []domain.SignalSample
}

// LocationSampler produces one GPS fix per call. The production adapter is
// a random simulator; a real receiver backend can be substituted without
// touching the classifier, responder or history buffer.
type LocationSampler interface {
	Sample() domain.LocationSample
}
