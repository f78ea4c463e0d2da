// Package session owns the tick loops. Each session is a two-state machine
// (Stopped, Running) with exactly one worker goroutine while running; the
// worker is the only writer to session state, so readers just take the
// mutex for a consistent snapshot.
package session

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/akhilc162005/anti-location-tracker/internal/adapters/observability"
	"github.com/akhilc162005/anti-location-tracker/internal/classify"
	"github.com/akhilc162005/anti-location-tracker/internal/domain"
	"github.com/akhilc162005/anti-location-tracker/internal/ports"
	"github.com/akhilc162005/anti-location-tracker/internal/respond"
)

// ErrAlreadyRunning is returned by Start on a running session.
var ErrAlreadyRunning = errors.New("session already running")

// errBackoff is the pause after a failed tick before the loop resumes.
const errBackoff = time.Second

// Monitor runs the signal sweep loop: sample, classify, respond, log.
type Monitor struct {
	id        string
	sampler   ports.SignalSampler
	responder *respond.Responder
	sink      ports.Sink
	obs       ports.Observability
	interval  time.Duration

	running atomic.Bool

	lifecycle sync.Mutex // serializes Start and guards done
	done      chan struct{}

	mu               sync.Mutex
	tier             domain.Tier
	mode             domain.DetectionMode
	ticks            uint64
	totalDetected    int
	lastSweep        []domain.SignalSample
	lastThreat       domain.Severity
	lastActions      []domain.CountermeasureRecord
	protectionActive bool
}

// MonitorSnapshot is a point-in-time view for UIs and status output.
type MonitorSnapshot struct {
	ID               string
	Running          bool
	Tier             domain.Tier
	Mode             domain.DetectionMode
	Ticks            uint64
	TotalDetected    int
	LastSweep        []domain.SignalSample
	LastThreat       domain.Severity
	LastActions      []domain.CountermeasureRecord
	ProtectionActive bool
}

// NewMonitor wires a monitor session. The interval falls back to 2s when
// zero.
func NewMonitor(sampler ports.SignalSampler, responder *respond.Responder, sink ports.Sink, obs ports.Observability, tier domain.Tier, mode domain.DetectionMode, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Monitor{
		id:        uuid.NewString(),
		sampler:   sampler,
		responder: responder,
		sink:      sink,
		obs:       obs,
		interval:  interval,
		tier:      tier,
		mode:      mode,
	}
}

func (m *Monitor) ID() string { return m.id }

// Start moves the session to Running and spawns the worker. Starting a
// running session is an error. A restart waits for the previous worker
// to exit before the new one spawns, so there is never more than one
// worker writing to the sink.
func (m *Monitor) Start() error {
	m.lifecycle.Lock()
	defer m.lifecycle.Unlock()
	if m.running.Load() {
		return ErrAlreadyRunning
	}
	if m.done != nil {
		<-m.done
	}
	m.running.Store(true)
	m.done = make(chan struct{})
	m.obs.LogInfo("monitor_started",
		ports.Field{Key: "session", Value: m.id},
		ports.Field{Key: "interval", Value: m.interval.String()})
	go m.run(m.done)
	return nil
}

// Stop flips the running flag. The worker observes it at the top of its
// next iteration, so at most one in-flight tick completes after Stop
// returns. Stopping a stopped session is a no-op.
func (m *Monitor) Stop() {
	if m.running.CompareAndSwap(true, false) {
		m.obs.LogInfo("monitor_stopping", ports.Field{Key: "session", Value: m.id})
	}
}

// Done reports when the worker has exited. Nil before the first Start.
func (m *Monitor) Done() <-chan struct{} {
	m.lifecycle.Lock()
	defer m.lifecycle.Unlock()
	return m.done
}

// SetTier applies a new protection tier. Unknown values are rejected and
// the prior tier is retained.
func (m *Monitor) SetTier(s string) error {
	tier, err := domain.ParseTier(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.tier = tier
	m.mu.Unlock()
	m.obs.LogInfo("tier_changed", ports.Field{Key: "tier", Value: tier.String()})
	return nil
}

// SetMode applies a new detection mode. Unknown values are rejected and
// the prior mode is retained. The mode is a label only.
func (m *Monitor) SetMode(s string) error {
	mode, err := domain.ParseDetectionMode(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.mode = mode
	m.mu.Unlock()
	m.obs.LogInfo("mode_changed", ports.Field{Key: "mode", Value: string(mode)})
	return nil
}

// Snapshot returns a consistent copy of the session state.
func (m *Monitor) Snapshot() MonitorSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return MonitorSnapshot{
		ID:               m.id,
		Running:          m.running.Load(),
		Tier:             m.tier,
		Mode:             m.mode,
		Ticks:            m.ticks,
		TotalDetected:    m.totalDetected,
		LastSweep:        append([]domain.SignalSample(nil), m.lastSweep...),
		LastThreat:       m.lastThreat,
		LastActions:      append([]domain.CountermeasureRecord(nil), m.lastActions...),
		ProtectionActive: m.protectionActive,
	}
}

func (m *Monitor) run(done chan struct{}) {
	defer close(done)
	for m.running.Load() {
		start := time.Now()
		if err := m.tick(); err != nil {
			m.obs.LogError("monitor_tick_failed", err, ports.Field{Key: "session", Value: m.id})
			m.obs.IncCounter(observability.MetricSinkErrors, 1)
			time.Sleep(errBackoff)
		}
		m.obs.ObserveDuration(observability.MetricTickDuration, time.Since(start).Seconds())
		time.Sleep(m.interval)
	}
	m.obs.LogInfo("monitor_stopped", ports.Field{Key: "session", Value: m.id})
}

func (m *Monitor) tick() error {
	sweep := m.sampler.Sample()
	threat := classify.Threat(sweep)

	m.mu.Lock()
	tier := m.tier
	mode := m.mode
	m.mu.Unlock()

	actions := m.responder.Respond(tier, threat, sweep)

	jammed := false
	for _, a := range actions {
		if a.Method == domain.MethodJamming && a.Success {
			jammed = true
			break
		}
	}

	m.mu.Lock()
	m.ticks++
	m.totalDetected += len(sweep)
	m.lastSweep = sweep
	m.lastThreat = threat
	m.lastActions = actions
	if jammed {
		m.protectionActive = true
	}
	protectionActive := m.protectionActive
	m.mu.Unlock()

	m.obs.IncCounter(observability.MetricTicks, 1)
	m.obs.IncCounter(observability.MetricSignalsDetected, float64(len(sweep)))
	m.obs.IncCounter(observability.MetricCountermeasures, float64(len(actions)))
	m.obs.SetGauge(observability.MetricThreatLevel, float64(threat))

	if threat >= domain.SeverityMedium {
		m.obs.LogInfo("threat_detected",
			ports.Field{Key: "session", Value: m.id},
			ports.Field{Key: "threat", Value: threat.String()},
			ports.Field{Key: "signals", Value: len(sweep)},
			ports.Field{Key: "actions", Value: len(actions)})
	}

	return m.sink.WriteSignal(domain.SignalLogRecord{
		Timestamp:        time.Now(),
		SignalsDetected:  len(sweep),
		ThreatLevel:      threat.String(),
		ProtectionActive: protectionActive,
		DetectionMode:    string(mode),
	})
}
