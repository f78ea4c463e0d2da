package antitrack

import (
	"github.com/akhilc162005/anti-location-tracker/internal/app/config"
)

// Config re-exports the root configuration struct so embedders can build
// or tweak it programmatically.
type Config = config.Config

type (
	// LogConfig sets the JSONL log paths.
	LogConfig = config.LogConfig
	// MetricsConfig configures the metrics HTTP server.
	MetricsConfig = config.MetricsConfig
	// FeatureConfig toggles optional location fields.
	FeatureConfig = config.FeatureConfig
	// ArchiveConfig configures the optional Postgres archive.
	ArchiveConfig = config.ArchiveConfig
	// LiveConfig configures the optional Redis live publisher.
	LiveConfig = config.LiveConfig
)

// LoadConfig loads YAML from disk using the internal config reader.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// DefaultConfig returns a ready-to-run configuration.
func DefaultConfig() *Config {
	return config.Default()
}
