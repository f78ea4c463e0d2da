package antitracker

import (
	"testing"

	"go.uber.org/zap"
)

// The root package mirrors pkg/antitrack one to one; every functional
// option has to be reachable without importing the inner package.
func TestRootOptionSurface(t *testing.T) {
	opts := []Option{
		WithSignalSampler(nil),
		WithLocationSampler(nil),
		WithSink(nil),
		WithArchive(nil),
		WithLivePublisher(nil),
		WithObservability(nil),
		WithLogger(zap.NewNop()),
		WithSeed(42),
	}
	for i, opt := range opts {
		if opt == nil {
			t.Fatalf("option %d is nil", i)
		}
	}
}
