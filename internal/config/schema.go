// Package config loads the YAML configuration file, expands environment
// variables and validates its structure. Module sections stay raw YAML
// nodes; each module decodes its own.
package config

import (
	"gopkg.in/yaml.v3"

	"github.com/flemzord/slackkit/internal/telemetry"
)

// Config is the top-level configuration structure.
type Config struct {
	// Version is the config format version. Currently only "1" is supported.
	Version string `yaml:"version"`

	// Modules maps module IDs to their raw YAML configuration.
	// Keys must match registered module IDs (e.g. "channel.slack").
	Modules map[string]yaml.Node `yaml:"modules"`

	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// LogConfig controls the root logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Defaults to info.
	Level string `yaml:"level"`
	// Format is "text" (default) or "json".
	Format string `yaml:"format"`
}

// TelemetryConfig groups observability settings.
type TelemetryConfig struct {
	Tracing telemetry.TracingConfig `yaml:"tracing"`
}
