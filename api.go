package antitracker

import (
	"go.uber.org/zap"

	base "github.com/akhilc162005/anti-location-tracker/pkg/antitrack"
)

// Re-exported errors for convenience.
var (
	ErrChannelSinkClosed = base.ErrChannelSinkClosed
)

// Type aliases so consumers can import
// github.com/akhilc162005/anti-location-tracker directly.
type (
	Config        = base.Config
	LogConfig     = base.LogConfig
	MetricsConfig = base.MetricsConfig
	FeatureConfig = base.FeatureConfig
	ArchiveConfig = base.ArchiveConfig
	LiveConfig    = base.LiveConfig

	Runtime = base.Runtime
	Option  = base.Option

	SignalSample         = base.SignalSample
	LocationSample       = base.LocationSample
	SignalLogRecord      = base.SignalLogRecord
	LocationLogRecord    = base.LocationLogRecord
	CountermeasureRecord = base.CountermeasureRecord
	Severity             = base.Severity
	Tier                 = base.Tier
	DetectionMode        = base.DetectionMode

	SignalSampler   = base.SignalSampler
	LocationSampler = base.LocationSampler
	Sink            = base.Sink
	LivePublisher   = base.LivePublisher
	LocationArchive = base.LocationArchive
	Observability   = base.Observability

	Monitor         = base.Monitor
	Tracker         = base.Tracker
	MonitorSnapshot = base.MonitorSnapshot
	TrackerSnapshot = base.TrackerSnapshot

	Record       = base.Record
	CallbackSink = base.CallbackSink
	ChannelSink  = base.ChannelSink
)

// Config helpers.
func LoadConfig(path string) (*Config, error) {
	return base.LoadConfig(path)
}

func DefaultConfig() *Config {
	return base.DefaultConfig()
}

// Runtime builder.
func NewRuntime(cfg *Config, opts ...Option) (*Runtime, error) {
	return base.NewRuntime(cfg, opts...)
}

func NewRuntimeFromFile(path string, opts ...Option) (*Runtime, error) {
	return base.NewRuntimeFromFile(path, opts...)
}

// Adapter overrides.
func WithSignalSampler(s SignalSampler) Option {
	return base.WithSignalSampler(s)
}

func WithLocationSampler(s LocationSampler) Option {
	return base.WithLocationSampler(s)
}

func WithSink(s Sink) Option {
	return base.WithSink(s)
}

func WithLivePublisher(p LivePublisher) Option {
	return base.WithLivePublisher(p)
}

func WithArchive(a LocationArchive) Option {
	return base.WithArchive(a)
}

func WithObservability(obs Observability) Option {
	return base.WithObservability(obs)
}

func WithLogger(l *zap.Logger) Option {
	return base.WithLogger(l)
}

func WithSeed(seed int64) Option {
	return base.WithSeed(seed)
}

// Sink adapters.
func NewCallbackSink(onSignal func(SignalLogRecord) error, onLocation func(LocationLogRecord) error) *CallbackSink {
	return base.NewCallbackSink(onSignal, onLocation)
}

func NewChannelSink(buffer int) *ChannelSink {
	return base.NewChannelSink(buffer)
}
