// Package gateway provides the HTTP relay: a health probe, Prometheus metrics
// and an authenticated endpoint that posts messages through the channel
// dispatcher. It binds to loopback by default and follows the module system
// pattern.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"gopkg.in/yaml.v3"

	"github.com/flemzord/slackkit/internal/channel"
	"github.com/flemzord/slackkit/internal/core"
	"github.com/flemzord/slackkit/internal/security"
	"github.com/flemzord/slackkit/internal/telemetry"
)

// ModuleID is the module identifier.
const ModuleID core.ModuleID = "gateway.http"

func init() {
	core.RegisterModule(&Gateway{})
}

var (
	_ core.Configurable = (*Gateway)(nil)
	_ core.Provisioner  = (*Gateway)(nil)
	_ core.Validator    = (*Gateway)(nil)
	_ core.Starter      = (*Gateway)(nil)
	_ core.Stopper      = (*Gateway)(nil)
)

// Gateway is the HTTP gateway module. It is a leaf module; nothing imports it.
type Gateway struct {
	config     Config
	logger     *slog.Logger
	server     *http.Server
	dispatcher *channel.Dispatcher
	metrics    *telemetry.Metrics
	redactor   *security.Redactor
	addr       net.Addr
}

// ModuleInfo implements core.Module.
func (g *Gateway) ModuleInfo() core.ModuleInfo {
	return core.ModuleInfo{
		ID:  ModuleID,
		New: func() core.Module { return &Gateway{} },
	}
}

// Configure implements core.Configurable.
func (g *Gateway) Configure(node *yaml.Node) error {
	if err := node.Decode(&g.config); err != nil {
		return fmt.Errorf("gateway: decode config: %w", err)
	}
	g.config.defaults()
	return nil
}

// Provision implements core.Provisioner.
func (g *Gateway) Provision(ctx *core.AppContext) error {
	g.config.defaults()
	g.logger = ctx.Logger
	g.dispatcher, _ = core.Service[*channel.Dispatcher](ctx, "channel.dispatcher")
	g.metrics, _ = core.Service[*telemetry.Metrics](ctx, "telemetry.metrics")
	g.redactor, _ = core.Service[*security.Redactor](ctx, "security.redactor")

	if creds, ok := core.Service[*security.CredentialStore](ctx, "security.credentials"); ok {
		creds.Set(string(ModuleID)+".bearer_token", g.config.Auth.BearerToken)
		creds.Set(string(ModuleID)+".basic_pass", g.config.Auth.BasicPass)
		if g.redactor != nil {
			g.redactor.SyncCredentials(creds)
		}
	}
	return nil
}

// Validate implements core.Validator.
func (g *Gateway) Validate() error {
	host, _, err := net.SplitHostPort(g.config.Bind)
	if err != nil {
		return errors.New("gateway: invalid bind address: " + g.config.Bind)
	}
	if (g.config.Auth.BasicUser == "") != (g.config.Auth.BasicPass == "") {
		return errors.New("gateway: basic_user and basic_pass must be set together")
	}
	if g.config.RateLimit.RequestsPerSecond < 0 || g.config.RateLimit.Burst < 0 {
		return errors.New("gateway: rate_limit values must not be negative")
	}
	if !g.config.Auth.IsConfigured() && !isLoopback(host) {
		g.logger.Warn("gateway: message API exposed without authentication", "bind", g.config.Bind)
	}
	return nil
}

// Start implements core.Starter.
func (g *Gateway) Start() error {
	if g.dispatcher == nil {
		return errors.New("gateway: channel.dispatcher service not found")
	}

	g.server = &http.Server{
		Addr:         g.config.Bind,
		Handler:      g.buildRouter(),
		ReadTimeout:  g.config.ReadTimeout,
		WriteTimeout: g.config.WriteTimeout,
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(context.Background(), "tcp", g.config.Bind)
	if err != nil {
		return fmt.Errorf("gateway: listen failed: %w", err)
	}
	g.addr = ln.Addr()

	go func() {
		g.logger.Info("gateway listening", "addr", g.addr.String())
		if err := g.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			g.logger.Error("gateway serve error", "error", err)
		}
	}()

	return nil
}

// Stop implements core.Stopper. Graceful shutdown with configured timeout.
func (g *Gateway) Stop(ctx context.Context) error {
	if g.server == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, g.config.ShutdownTimeout)
	defer cancel()

	g.logger.Info("gateway shutting down")
	return g.server.Shutdown(shutdownCtx)
}

// Addr returns the address the server is listening on, or nil before Start.
func (g *Gateway) Addr() net.Addr { return g.addr }

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
