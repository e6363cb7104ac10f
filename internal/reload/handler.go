package reload

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/flemzord/slackkit/internal/config"
	"github.com/flemzord/slackkit/internal/core"
)

// Handler reloads application configuration and notifies modules.
// Reloads are serialized: a SIGHUP racing a file change runs one after
// the other.
type Handler struct {
	mu     sync.Mutex
	app    *core.App
	base   *core.AppContext
	logger *slog.Logger
}

// NewHandler creates a reload handler. Module contexts for Reload are
// derived from base, so services registered at startup stay reachable.
func NewHandler(app *core.App, base *core.AppContext) *Handler {
	return &Handler{
		app:    app,
		base:   base,
		logger: base.Logger.With("component", "reload"),
	}
}

// HandleReload loads a fresh config from disk, validates it, and calls Reload
// on all modules that implement core.Reloader.
func (h *Handler) HandleReload(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	return h.HandleReloadFromConfig(ctx, cfg)
}

// HandleReloadFromConfig reloads modules from an already validated config.
func (h *Handler) HandleReloadFromConfig(ctx context.Context, cfg *config.Config) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled before reload: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if missing := h.missingModules(cfg); len(missing) > 0 {
		h.logger.Warn("module set changed; restart to load or unload modules", "modules", missing)
	}

	appCtx := h.base.WithModuleConfigs(cfg.Modules)
	if err := h.app.ReloadModules(appCtx); err != nil {
		return fmt.Errorf("reloading modules: %w", err)
	}

	h.logger.Info("configuration reloaded")
	return nil
}

// missingModules lists module IDs present on one side only.
func (h *Handler) missingModules(cfg *config.Config) []string {
	loaded := make(map[string]bool)
	for _, id := range h.app.ModuleIDs() {
		loaded[id] = true
	}
	var diff []string
	for _, id := range config.Resolve(cfg) {
		if !loaded[id] {
			diff = append(diff, id)
		}
		delete(loaded, id)
	}
	for id := range loaded {
		diff = append(diff, id)
	}
	return diff
}
