package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
)

// recordingArchive captures archived batches and optionally always fails.
type recordingArchive struct {
	mu      sync.Mutex
	batches int
	fail    bool
}

func (r *recordingArchive) ArchiveBatch(samples []domain.LocationSample) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("archive down")
	}
	r.batches++
	return nil
}

func (r *recordingArchive) Name() string { return "recording-archive" }

func (r *recordingArchive) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.batches
}

// recordingPublisher captures live publishes and optionally always fails.
type recordingPublisher struct {
	mu        sync.Mutex
	published int
	fail      bool
}

func (r *recordingPublisher) Publish(ctx context.Context, s domain.LocationSample) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("publisher down")
	}
	r.published++
	return nil
}

func (r *recordingPublisher) Name() string { return "recording-live" }

func (r *recordingPublisher) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.published
}

var walkFixes = []domain.LocationSample{
	{Name: "New York", Country: "USA", Lat: 40.7128, Lon: -74.0060, SpeedKPH: 30, AccuracyM: 5},
	{Name: "London", Country: "UK", Lat: 51.5074, Lon: -0.1278, SpeedKPH: 40, AccuracyM: 6},
	{Name: "Tokyo", Country: "Japan", Lat: 35.6762, Lon: 139.6503, SpeedKPH: 50, AccuracyM: 7},
}

func newTestTracker(sink *recordingSink, opts ...TrackerOption) *Tracker {
	return NewTracker(
		&cityWalkSampler{fixes: walkFixes},
		sink,
		testObs(),
		5*time.Millisecond,
		opts...,
	)
}

func TestTrackerRestartWaitsForOldWorker(t *testing.T) {
	sink := &recordingSink{}
	tr := newTestTracker(sink)

	if err := tr.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	waitFor(t, func() bool { return sink.locationCount() >= 1 }, "first location record")

	first := tr.Done()
	tr.Stop()
	if err := tr.Start(); err != nil {
		t.Fatalf("restart: %v", err)
	}

	select {
	case <-first:
	default:
		t.Fatal("previous worker still alive after restart")
	}
	if tr.Done() == first {
		t.Fatal("restart did not install a fresh done channel")
	}

	tr.Stop()
	<-tr.Done()
}

func TestTrackerLifecycleAndHistory(t *testing.T) {
	sink := &recordingSink{}
	tr := newTestTracker(sink)

	if err := tr.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := tr.Start(); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second start should fail, got %v", err)
	}

	waitFor(t, func() bool { return sink.locationCount() >= 3 }, "three location records")

	tr.Stop()
	<-tr.Done()

	snap := tr.Snapshot()
	if snap.Running {
		t.Fatal("still running after stop")
	}
	if snap.Stored < 3 || snap.Ticks < 3 {
		t.Fatalf("history not populated: %+v", snap)
	}
	if snap.Current == nil {
		t.Fatal("no current fix in snapshot")
	}
	if snap.DistanceKM <= 0 {
		t.Fatalf("expected positive distance over city hops, got %f", snap.DistanceKM)
	}

	if got := tr.History().Len(); got != snap.Stored {
		t.Fatalf("buffer length %d disagrees with snapshot %d", got, snap.Stored)
	}
}

func TestTrackerNoWritesAfterStop(t *testing.T) {
	sink := &recordingSink{}
	tr := newTestTracker(sink)

	if err := tr.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	waitFor(t, func() bool { return sink.locationCount() >= 1 }, "first record")

	tr.Stop()
	<-tr.Done()

	count := sink.locationCount()
	time.Sleep(50 * time.Millisecond)
	if got := sink.locationCount(); got != count {
		t.Fatalf("sink written after worker exit: %d -> %d", count, got)
	}
}

func TestTrackerRouteMode(t *testing.T) {
	sink := &recordingSink{}
	tr := newTestTracker(sink, WithRouteMode(true))

	if err := tr.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	waitFor(t, func() bool { return tr.Snapshot().LastRoute != nil }, "route estimate")

	tr.Stop()
	<-tr.Done()

	route := tr.Snapshot().LastRoute
	if route.DistanceKM <= 0 || route.DurationMin <= 0 {
		t.Fatalf("implausible route estimate: %+v", route)
	}

	tr.SetRouteMode(false)
	if tr.Snapshot().RouteMode {
		t.Fatal("route mode not disabled")
	}
}

func TestTrackerArchiveAndLivePublish(t *testing.T) {
	sink := &recordingSink{}
	archive := &recordingArchive{}
	publisher := &recordingPublisher{}
	tr := newTestTracker(sink, WithArchive(archive), WithLivePublisher(publisher))

	if err := tr.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	waitFor(t, func() bool {
		return archive.count() >= 2 && publisher.count() >= 2
	}, "archive and live deliveries")

	tr.Stop()
	<-tr.Done()
}

func TestTrackerBestEffortSideChannels(t *testing.T) {
	sink := &recordingSink{}
	archive := &recordingArchive{fail: true}
	publisher := &recordingPublisher{fail: true}
	tr := newTestTracker(sink, WithArchive(archive), WithLivePublisher(publisher))

	if err := tr.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	// Failing archive and publisher must not block the log sink.
	waitFor(t, func() bool { return sink.locationCount() >= 3 }, "log records despite side failures")

	tr.Stop()
	<-tr.Done()
}

func TestTrackerLogRecordShape(t *testing.T) {
	sink := &recordingSink{}
	tr := newTestTracker(sink)

	if err := tr.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	waitFor(t, func() bool { return sink.locationCount() >= 1 }, "first record")
	tr.Stop()
	<-tr.Done()

	sink.mu.Lock()
	rec := sink.locations[0]
	sink.mu.Unlock()

	if rec.Location != "New York" {
		t.Fatalf("unexpected location %q", rec.Location)
	}
	if rec.Coordinates != "40.712800,-74.006000" {
		t.Fatalf("unexpected coordinates %q", rec.Coordinates)
	}
	if rec.Timestamp.IsZero() {
		t.Fatal("timestamp not set")
	}
}
