// Package app provides the shared entry point for the slackkit commands: it
// builds the logger and shared services and runs the configured modules.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/flemzord/slackkit/internal/channel"
	"github.com/flemzord/slackkit/internal/config"
	"github.com/flemzord/slackkit/internal/core"
	"github.com/flemzord/slackkit/internal/reload"
	"github.com/flemzord/slackkit/internal/security"
	"github.com/flemzord/slackkit/internal/telemetry"
)

// Service names registered on the root AppContext.
const (
	ServiceDispatcher  = "channel.dispatcher"
	ServiceMetrics     = "telemetry.metrics"
	ServiceCredentials = "security.credentials"
	ServiceRedactor    = "security.redactor"
)

// RunParams configures the main application loop.
type RunParams struct {
	// ConfigPath is an explicit path to the YAML configuration file.
	// If empty, ResolveConfigPath is called automatically.
	ConfigPath string

	// Version, Commit, and Date are injected at build time via ldflags.
	Version string
	Commit  string
	Date    string

	// LogLevel overrides log.level from the configuration when set.
	LogLevel string
}

// Runtime holds the shared services every module can discover.
type Runtime struct {
	Logger      *slog.Logger
	Metrics     *telemetry.Metrics
	Dispatcher  *channel.Dispatcher
	Credentials *security.CredentialStore
	Redactor    *security.Redactor
}

// NewRuntime builds the redacting logger, metrics registry and channel
// dispatcher. Logs are written to w.
func NewRuntime(w io.Writer, level, format string) (*Runtime, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	credStore := security.NewCredentialStore()
	redactor := security.NewRedactor()

	opts := &slog.HandlerOptions{Level: lvl}
	var inner slog.Handler
	if format == "json" {
		inner = slog.NewJSONHandler(w, opts)
	} else {
		inner = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(security.NewRedactingHandler(inner, redactor))

	metrics := telemetry.NewMetrics()
	dispatcher := channel.NewDispatcher(
		channel.WithLogger(logger.With("component", "dispatcher")),
		channel.WithMetrics(metrics),
		channel.WithTracer(telemetry.Tracer()),
	)

	return &Runtime{
		Logger:      logger,
		Metrics:     metrics,
		Dispatcher:  dispatcher,
		Credentials: credStore,
		Redactor:    redactor,
	}, nil
}

// AppContext returns a root context carrying the runtime services.
func (rt *Runtime) AppContext() *core.AppContext {
	appCtx := core.NewAppContext(rt.Logger)
	appCtx.RegisterService(ServiceDispatcher, rt.Dispatcher)
	appCtx.RegisterService(ServiceMetrics, rt.Metrics)
	appCtx.RegisterService(ServiceCredentials, rt.Credentials)
	appCtx.RegisterService(ServiceRedactor, rt.Redactor)
	return appCtx
}

// ParseLevel maps a level name to a slog.Level. An empty name means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Run loads configuration, starts all modules, and blocks until a shutdown
// signal is received. SIGHUP and file-change events trigger a live
// configuration reload for modules that implement core.Reloader.
func Run(params RunParams) error {
	cfgPath := params.ConfigPath
	if cfgPath == "" {
		resolved, err := ResolveConfigPath()
		if err != nil {
			return err
		}
		cfgPath = resolved
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	level := cfg.Log.Level
	if params.LogLevel != "" {
		level = params.LogLevel
	}
	rt, err := NewRuntime(os.Stderr, level, cfg.Log.Format)
	if err != nil {
		return err
	}
	logger := rt.Logger

	shutdownTracing, err := telemetry.SetupTracing(context.Background(), cfg.Telemetry.Tracing, params.Version)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	appCtx := rt.AppContext()
	appCtx.ConfigPath = cfgPath

	application := core.NewApp(appCtx.WithModuleConfigs(cfg.Modules))
	ids := config.Resolve(cfg)
	if err := application.LoadModules(ids); err != nil {
		return err
	}

	handler := reload.NewHandler(application, appCtx)

	if err := application.Start(); err != nil {
		return err
	}
	logger.Info("slackkit started",
		"version", params.Version,
		"config", cfgPath,
		"modules", len(ids),
		"channels", rt.Dispatcher.Channels(),
	)

	// --- signal handling ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	// --- file watcher ---
	watcher := reload.NewWatcher(reload.WatcherConfig{
		ConfigPath: cfgPath,
		Logger:     logger.With("component", "reload"),
	})
	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	watcher.Start(watchCtx)
	defer watcher.Stop()

	// --- main event loop ---
	for {
		select {
		case sig := <-sigCh:
			switch sig {
			case syscall.SIGHUP:
				logger.Info("SIGHUP received, reloading configuration")
				if err := handler.HandleReload(watchCtx, cfgPath); err != nil {
					logger.Error("reload failed", "error", err)
				}
			default:
				logger.Info("shutdown signal received", "signal", sig.String())
				application.Stop()
				logger.Info("shutdown complete")
				return nil
			}
		case evt := <-watcher.Events():
			logger.Info("config file changed, reloading", "path", evt.ConfigPath)
			if err := handler.HandleReload(watchCtx, cfgPath); err != nil {
				logger.Error("reload failed", "error", err)
			}
		}
	}
}

// ResolveConfigPath searches for a config file in standard locations.
// Search order: $XDG_CONFIG_HOME/slackkit/slackkit.yaml → ~/.config/slackkit/slackkit.yaml → ./slackkit.yaml
func ResolveConfigPath() (string, error) {
	var candidates []string

	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		candidates = append(candidates, filepath.Join(xdg, "slackkit", "slackkit.yaml"))
	} else if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "slackkit", "slackkit.yaml"))
	}

	candidates = append(candidates, "slackkit.yaml")

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no configuration file found (searched: %v)", candidates)
}
