package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
)

type Config struct {
	ProtectionTier string        `yaml:"protection_tier"`
	DetectionMode  string        `yaml:"detection_mode"`
	ScanInterval   time.Duration `yaml:"scan_interval"`
	TrackInterval  time.Duration `yaml:"track_interval"`
	Theme          string        `yaml:"theme"`

	Log      LogConfig      `yaml:"log"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Features FeatureConfig  `yaml:"features"`
	Archive  ArchiveConfig  `yaml:"archive"`
	Live     LiveConfig     `yaml:"live"`
}

type LogConfig struct {
	SignalPath   string `yaml:"signal_path"`
	LocationPath string `yaml:"location_path"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// FeatureConfig toggles the optional blocks of each location fix. Pointers
// distinguish "unset" from an explicit false; weather and traffic default
// to on, device and route to off.
type FeatureConfig struct {
	Weather *bool `yaml:"weather"`
	Traffic *bool `yaml:"traffic"`
	Device  *bool `yaml:"device"`
	Route   *bool `yaml:"route"`
}

// ArchiveConfig enables the Postgres archive when ConnString is set.
type ArchiveConfig struct {
	ConnString string `yaml:"conn_string"`
	Table      string `yaml:"table"`
}

// LiveConfig enables the Redis live publisher when Addr is set.
type LiveConfig struct {
	Addr    string        `yaml:"addr"`
	Key     string        `yaml:"key"`
	Channel string        `yaml:"channel"`
	TTL     time.Duration `yaml:"ttl"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a ready-to-run configuration without a file on disk.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

func (c *Config) ApplyDefaults() {
	if c.ProtectionTier == "" {
		c.ProtectionTier = domain.TierMedium.String()
	}
	if c.DetectionMode == "" {
		c.DetectionMode = string(domain.ModePassive)
	}
	if c.ScanInterval == 0 {
		c.ScanInterval = 2 * time.Second
	}
	if c.TrackInterval == 0 {
		c.TrackInterval = time.Second
	}
	if c.Theme == "" {
		c.Theme = "classic"
	}
	if c.Log.SignalPath == "" {
		c.Log.SignalPath = "./data/anti_gps_log.jsonl"
	}
	if c.Log.LocationPath == "" {
		c.Log.LocationPath = "./data/locations_log.jsonl"
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9100"
	}
	if c.Features.Weather == nil {
		c.Features.Weather = boolPtr(true)
	}
	if c.Features.Traffic == nil {
		c.Features.Traffic = boolPtr(true)
	}
	if c.Features.Device == nil {
		c.Features.Device = boolPtr(false)
	}
	if c.Features.Route == nil {
		c.Features.Route = boolPtr(false)
	}
	if c.Archive.Table == "" {
		c.Archive.Table = "location_samples"
	}
	if c.Live.Key == "" {
		c.Live.Key = "antitrack:live"
	}
	if c.Live.Channel == "" {
		c.Live.Channel = "antitrack.live"
	}
	if c.Live.TTL == 0 {
		c.Live.TTL = 30 * time.Second
	}
}

func (c *Config) Validate() error {
	if _, err := domain.ParseTier(c.ProtectionTier); err != nil {
		return fmt.Errorf("protection_tier: %w", err)
	}
	if _, err := domain.ParseDetectionMode(c.DetectionMode); err != nil {
		return fmt.Errorf("detection_mode: %w", err)
	}
	if c.ScanInterval < 0 {
		return fmt.Errorf("scan_interval must be positive")
	}
	if c.TrackInterval < 0 {
		return fmt.Errorf("track_interval must be positive")
	}
	if c.Metrics.Addr == "" {
		return fmt.Errorf("metrics.addr is required")
	}
	return nil
}

// Tier returns the parsed protection tier. Validate must have passed.
func (c *Config) Tier() domain.Tier {
	t, _ := domain.ParseTier(c.ProtectionTier)
	return t
}

// Mode returns the parsed detection mode. Validate must have passed.
func (c *Config) Mode() domain.DetectionMode {
	m, _ := domain.ParseDetectionMode(c.DetectionMode)
	return m
}

func (c *Config) WeatherEnabled() bool { return c.Features.Weather != nil && *c.Features.Weather }
func (c *Config) TrafficEnabled() bool { return c.Features.Traffic != nil && *c.Features.Traffic }
func (c *Config) DeviceEnabled() bool  { return c.Features.Device != nil && *c.Features.Device }
func (c *Config) RouteEnabled() bool   { return c.Features.Route != nil && *c.Features.Route }

func boolPtr(b bool) *bool { return &b }
