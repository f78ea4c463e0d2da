package antitrack

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/akhilc162005/anti-location-tracker/internal/adapters/live"
	"github.com/akhilc162005/anti-location-tracker/internal/adapters/observability"
	"github.com/akhilc162005/anti-location-tracker/internal/adapters/simulate"
	"github.com/akhilc162005/anti-location-tracker/internal/adapters/sink"
	"github.com/akhilc162005/anti-location-tracker/internal/app/session"
	"github.com/akhilc162005/anti-location-tracker/internal/domain"
	"github.com/akhilc162005/anti-location-tracker/internal/ports"
	"github.com/akhilc162005/anti-location-tracker/internal/respond"
)

// Re-exported domain types for embedders.
type (
	SignalSample         = domain.SignalSample
	LocationSample       = domain.LocationSample
	SignalLogRecord      = domain.SignalLogRecord
	LocationLogRecord    = domain.LocationLogRecord
	CountermeasureRecord = domain.CountermeasureRecord
	Severity             = domain.Severity
	Tier                 = domain.Tier
	DetectionMode        = domain.DetectionMode

	SignalSampler   = ports.SignalSampler
	LocationSampler = ports.LocationSampler
	Sink            = ports.Sink
	LivePublisher   = ports.LivePublisher
	LocationArchive = ports.LocationArchive
	Observability   = ports.Observability

	Monitor         = session.Monitor
	Tracker         = session.Tracker
	MonitorSnapshot = session.MonitorSnapshot
	TrackerSnapshot = session.TrackerSnapshot
)

// Option customizes the adapters a Runtime is built from.
type Option func(*overrides)

type overrides struct {
	signalSampler   ports.SignalSampler
	locationSampler ports.LocationSampler
	sink            ports.Sink
	livePublisher   ports.LivePublisher
	obs             ports.Observability
	archive         ports.LocationArchive
	logger          *zap.Logger
	seed            int64
	seeded          bool
}

// WithSignalSampler swaps the random signal simulator for a custom backend.
func WithSignalSampler(s ports.SignalSampler) Option {
	return func(o *overrides) { o.signalSampler = s }
}

// WithLocationSampler swaps the random location simulator.
func WithLocationSampler(s ports.LocationSampler) Option {
	return func(o *overrides) { o.locationSampler = s }
}

// WithSink replaces the JSONL log sink.
func WithSink(s ports.Sink) Option {
	return func(o *overrides) { o.sink = s }
}

// WithLivePublisher replaces (or injects) the live-location publisher.
func WithLivePublisher(p ports.LivePublisher) Option {
	return func(o *overrides) { o.livePublisher = p }
}

// WithArchive replaces (or injects) the location archive.
func WithArchive(a ports.LocationArchive) Option {
	return func(o *overrides) { o.archive = a }
}

// WithObservability replaces the zap+Prometheus observability stack.
func WithObservability(obs ports.Observability) Option {
	return func(o *overrides) { o.obs = obs }
}

// WithLogger supplies the zap logger used by the default observability.
func WithLogger(l *zap.Logger) Option {
	return func(o *overrides) { o.logger = l }
}

// WithSeed makes the simulators deterministic.
func WithSeed(seed int64) Option {
	return func(o *overrides) { o.seed = seed; o.seeded = true }
}

// Runtime bundles both sessions, the shared observability stack, and the
// metrics HTTP server.
type Runtime struct {
	cfg      *Config
	obs      ports.Observability
	sink     ports.Sink
	registry *prometheus.Registry

	monitor *session.Monitor
	tracker *session.Tracker

	metricsSrv *http.Server
	db         *sql.DB
	closers    []func() error
}

// NewRuntimeFromFile loads a YAML configuration and builds a runtime
// from it.
func NewRuntimeFromFile(path string, opts ...Option) (*Runtime, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return NewRuntime(cfg, opts...)
}

// NewRuntime builds a runtime from configuration, applying option
// overrides over the default adapters.
func NewRuntime(cfg *Config, opts ...Option) (*Runtime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o overrides
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	rt := &Runtime{cfg: cfg}

	rt.obs = o.obs
	if rt.obs == nil {
		logger := o.logger
		if logger == nil {
			var err error
			logger, err = zap.NewProduction()
			if err != nil {
				return nil, fmt.Errorf("init logger: %w", err)
			}
			rt.closers = append(rt.closers, func() error { _ = logger.Sync(); return nil })
		}
		rt.registry = prometheus.NewRegistry()
		rt.obs = observability.New(logger, rt.registry)
	}

	rt.sink = o.sink
	if rt.sink == nil {
		jsonl, err := sink.NewJSONLSink(cfg.Log.SignalPath, cfg.Log.LocationPath)
		if err != nil {
			return nil, err
		}
		rt.sink = jsonl
		rt.closers = append(rt.closers, jsonl.Close)
	}

	seedSource := func() *rand.Rand {
		if o.seeded {
			return rand.New(rand.NewSource(o.seed))
		}
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	signalSampler := o.signalSampler
	if signalSampler == nil {
		signalSampler = simulate.NewSignalSimulator(seedSource())
	}
	locationSampler := o.locationSampler
	if locationSampler == nil {
		locationSampler = simulate.NewLocationSimulator(seedSource(), simulate.Features{
			Weather: cfg.WeatherEnabled(),
			Traffic: cfg.TrafficEnabled(),
			Device:  cfg.DeviceEnabled(),
		})
	}

	archive := o.archive
	if archive == nil && cfg.Archive.ConnString != "" {
		db, err := sql.Open("postgres", cfg.Archive.ConnString)
		if err != nil {
			return nil, fmt.Errorf("open archive db: %w", err)
		}
		rt.db = db
		rt.closers = append(rt.closers, db.Close)
		archive = sink.NewPostgresArchive(db, cfg.Archive.Table)
	}

	livePublisher := o.livePublisher
	if livePublisher == nil && cfg.Live.Addr != "" {
		pub := live.NewRedisPublisher(cfg.Live.Addr, cfg.Live.Key, cfg.Live.Channel, cfg.Live.TTL)
		rt.closers = append(rt.closers, pub.Close)
		livePublisher = pub
	}

	rt.monitor = session.NewMonitor(
		signalSampler,
		respond.New(seedSource()),
		rt.sink,
		rt.obs,
		cfg.Tier(),
		cfg.Mode(),
		cfg.ScanInterval,
	)

	trackerOpts := []session.TrackerOption{session.WithRouteMode(cfg.RouteEnabled())}
	if archive != nil {
		trackerOpts = append(trackerOpts, session.WithArchive(archive))
	}
	if livePublisher != nil {
		trackerOpts = append(trackerOpts, session.WithLivePublisher(livePublisher))
	}
	rt.tracker = session.NewTracker(locationSampler, rt.sink, rt.obs, cfg.TrackInterval, trackerOpts...)

	return rt, nil
}

// Monitor returns the signal-monitoring session.
func (r *Runtime) Monitor() *session.Monitor { return r.monitor }

// Tracker returns the location-tracking session.
func (r *Runtime) Tracker() *session.Tracker { return r.tracker }

// Run starts the metrics server and both sessions, then blocks until ctx
// is cancelled. On return the sessions have finished their final tick.
func (r *Runtime) Run(ctx context.Context) error {
	r.startMetrics()

	if err := r.monitor.Start(); err != nil {
		return err
	}
	if err := r.tracker.Start(); err != nil {
		r.monitor.Stop()
		return err
	}

	<-ctx.Done()

	r.monitor.Stop()
	r.tracker.Stop()
	<-r.monitor.Done()
	<-r.tracker.Done()

	return r.Close()
}

func (r *Runtime) startMetrics() {
	if r.registry == nil {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.metricsSrv = &http.Server{
		Addr:    r.cfg.Metrics.Addr,
		Handler: mux,
	}

	go func() {
		if err := r.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.obs.LogError("metrics_server_exited", err)
		}
	}()
}

// Close stops the metrics server and releases held resources. Sessions
// must already be stopped.
func (r *Runtime) Close() error {
	var firstErr error
	if r.metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := r.metricsSrv.Shutdown(shutdownCtx); err != nil {
			firstErr = err
		}
		cancel()
		r.metricsSrv = nil
	}
	for _, closeFn := range r.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.closers = nil
	return firstErr
}
