package session

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/akhilc162005/anti-location-tracker/internal/adapters/observability"
	"github.com/akhilc162005/anti-location-tracker/internal/domain"
	"github.com/akhilc162005/anti-location-tracker/internal/geo"
	"github.com/akhilc162005/anti-location-tracker/internal/history"
	"github.com/akhilc162005/anti-location-tracker/internal/ports"
)

// publishTimeout bounds one live publish attempt.
const publishTimeout = 2 * time.Second

// Tracker runs the location loop: sample, append history, log, publish.
type Tracker struct {
	id       string
	sampler  ports.LocationSampler
	sink     ports.Sink
	archive  ports.LocationArchive // optional
	live     ports.LivePublisher   // optional
	obs      ports.Observability
	history  *history.Buffer
	interval time.Duration
	rnd      *rand.Rand

	running atomic.Bool

	lifecycle sync.Mutex // serializes Start and guards done
	done      chan struct{}

	mu        sync.Mutex
	routeMode bool
	ticks     uint64
	lastRoute *domain.RouteInfo
	prevFix   *domain.LocationSample
}

// TrackerSnapshot is a point-in-time view for UIs and status output.
type TrackerSnapshot struct {
	ID         string
	Running    bool
	Ticks      uint64
	Current    *domain.LocationSample
	Stored     int
	DistanceKM float64
	RouteMode  bool
	LastRoute  *domain.RouteInfo
}

// TrackerOption tweaks optional collaborators.
type TrackerOption func(*Tracker)

// WithArchive attaches a location archive.
func WithArchive(a ports.LocationArchive) TrackerOption {
	return func(t *Tracker) { t.archive = a }
}

// WithLivePublisher attaches a live-location publisher.
func WithLivePublisher(p ports.LivePublisher) TrackerOption {
	return func(t *Tracker) { t.live = p }
}

// WithRouteMode enables per-tick route estimation.
func WithRouteMode(on bool) TrackerOption {
	return func(t *Tracker) { t.routeMode = on }
}

// NewTracker wires a tracker session around a fresh history buffer. The
// interval falls back to 1s when zero.
func NewTracker(sampler ports.LocationSampler, sink ports.Sink, obs ports.Observability, interval time.Duration, opts ...TrackerOption) *Tracker {
	if interval <= 0 {
		interval = time.Second
	}
	t := &Tracker{
		id:       uuid.NewString(),
		sampler:  sampler,
		sink:     sink,
		obs:      obs,
		history:  history.New(history.DefaultCapacity),
		interval: interval,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

func (t *Tracker) ID() string { return t.id }

// History exposes the buffer for read-only consumers (UI, status).
func (t *Tracker) History() *history.Buffer { return t.history }

// Start moves the session to Running and spawns the worker. A restart
// waits for the previous worker to exit before the new one spawns.
func (t *Tracker) Start() error {
	t.lifecycle.Lock()
	defer t.lifecycle.Unlock()
	if t.running.Load() {
		return ErrAlreadyRunning
	}
	if t.done != nil {
		<-t.done
	}
	t.running.Store(true)
	t.done = make(chan struct{})
	t.obs.LogInfo("tracker_started",
		ports.Field{Key: "session", Value: t.id},
		ports.Field{Key: "interval", Value: t.interval.String()})
	go t.run(t.done)
	return nil
}

// Stop flips the running flag; at most one in-flight tick completes after
// it returns.
func (t *Tracker) Stop() {
	if t.running.CompareAndSwap(true, false) {
		t.obs.LogInfo("tracker_stopping", ports.Field{Key: "session", Value: t.id})
	}
}

// Done reports when the worker has exited. Nil before the first Start.
func (t *Tracker) Done() <-chan struct{} {
	t.lifecycle.Lock()
	defer t.lifecycle.Unlock()
	return t.done
}

// SetRouteMode toggles route estimation for subsequent ticks.
func (t *Tracker) SetRouteMode(on bool) {
	t.mu.Lock()
	t.routeMode = on
	t.mu.Unlock()
}

// Snapshot returns a consistent copy of the session state.
func (t *Tracker) Snapshot() TrackerSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := TrackerSnapshot{
		ID:         t.id,
		Running:    t.running.Load(),
		Ticks:      t.ticks,
		Stored:     t.history.Len(),
		DistanceKM: t.history.TotalDistance(),
		RouteMode:  t.routeMode,
	}
	if last, ok := t.history.Last(); ok {
		snap.Current = &last
	}
	if t.lastRoute != nil {
		route := *t.lastRoute
		snap.LastRoute = &route
	}
	return snap
}

func (t *Tracker) run(done chan struct{}) {
	defer close(done)
	for t.running.Load() {
		start := time.Now()
		if err := t.tick(); err != nil {
			t.obs.LogError("tracker_tick_failed", err, ports.Field{Key: "session", Value: t.id})
			t.obs.IncCounter(observability.MetricSinkErrors, 1)
			time.Sleep(errBackoff)
		}
		t.obs.ObserveDuration(observability.MetricTickDuration, time.Since(start).Seconds())
		time.Sleep(t.interval)
	}
	t.obs.LogInfo("tracker_stopped", ports.Field{Key: "session", Value: t.id})
}

func (t *Tracker) tick() error {
	fix := t.sampler.Sample()
	t.history.Append(fix)

	t.mu.Lock()
	t.ticks++
	if t.routeMode && t.prevFix != nil {
		route := geo.EstimateRoute(*t.prevFix, fix, t.rnd)
		t.lastRoute = &route
	}
	prev := fix
	t.prevFix = &prev
	t.mu.Unlock()

	t.obs.IncCounter(observability.MetricTicks, 1)
	t.obs.SetGauge(observability.MetricHistoryLength, float64(t.history.Len()))
	t.obs.SetGauge(observability.MetricDistanceKM, t.history.TotalDistance())

	// Archive and live publishing are best effort; a failure there must
	// not stall the log.
	if t.archive != nil {
		if err := t.archive.ArchiveBatch([]domain.LocationSample{fix}); err != nil {
			t.obs.LogError("archive_failed", err, ports.Field{Key: "archive", Value: t.archive.Name()})
			t.obs.IncCounter(observability.MetricSinkErrors, 1)
		}
	}
	if t.live != nil {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := t.live.Publish(ctx, fix); err != nil {
			t.obs.LogError("live_publish_failed", err, ports.Field{Key: "publisher", Value: t.live.Name()})
			t.obs.IncCounter(observability.MetricSinkErrors, 1)
		}
		cancel()
	}

	return t.sink.WriteLocation(domain.NewLocationLogRecord(fix))
}
