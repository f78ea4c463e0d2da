package ports

import "github.com/akhilc162005/anti-location-tracker/internal/domain"

// Sink receives one log record per tick, in tick order.
type Sink interface {
	WriteSignal(rec domain.SignalLogRecord) error
	WriteLocation(rec domain.LocationLogRecord) error
	Name() string
}

// LocationArchive stores raw location samples for later analysis.
type LocationArchive interface {
	ArchiveBatch(samples []domain.LocationSample) error
	Name() string
}
