package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/flemzord/slackkit/internal/core"
)

var (
	logLevels  = []string{"", "debug", "info", "warn", "error"}
	logFormats = []string{"", "text", "json"}
)

// Validate checks the structural validity of a Config: the version field,
// that modules are present and registered, and the log and telemetry
// sections. All problems are reported together.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Version == "" {
		errs = append(errs, errors.New("config: version field is required"))
	} else if cfg.Version != "1" {
		errs = append(errs, fmt.Errorf("config: unsupported version %q (supported: \"1\")", cfg.Version))
	}

	if len(cfg.Modules) == 0 {
		errs = append(errs, errors.New("config: at least one module must be configured"))
	}

	for _, id := range Resolve(cfg) {
		if _, ok := core.GetModule(id); !ok {
			errs = append(errs, fmt.Errorf("config: unknown module %q", id))
		}
	}

	if !slices.Contains(logLevels, cfg.Log.Level) {
		errs = append(errs, fmt.Errorf("config: log.level must be debug, info, warn or error, got %q", cfg.Log.Level))
	}
	if !slices.Contains(logFormats, cfg.Log.Format) {
		errs = append(errs, fmt.Errorf("config: log.format must be text or json, got %q", cfg.Log.Format))
	}

	if err := cfg.Telemetry.Tracing.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("config: telemetry.tracing: %w", err))
	}

	return errors.Join(errs...)
}
