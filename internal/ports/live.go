package ports

import (
	"context"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
)

// LivePublisher pushes the latest fix to a shared store so other processes
// can render a live view. Publishing is best effort; a failed publish is
// logged and retried implicitly on the next tick.
type LivePublisher interface {
	Publish(ctx context.Context, s domain.LocationSample) error
	Name() string
}
