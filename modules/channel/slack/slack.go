package slack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/flemzord/slackkit/internal/channel"
	"github.com/flemzord/slackkit/internal/core"
	"github.com/flemzord/slackkit/internal/security"
)

// ModuleID is the module identifier.
const ModuleID core.ModuleID = "channel.slack"

// DispatcherService is the service name under which the application
// publishes its *channel.Dispatcher.
const DispatcherService = "channel.dispatcher"

func init() {
	core.RegisterModule(&Slack{})
}

// Compile-time interface guards.
var (
	_ channel.Channel   = (*Slack)(nil)
	_ core.Configurable = (*Slack)(nil)
	_ core.Provisioner  = (*Slack)(nil)
	_ core.Validator    = (*Slack)(nil)
	_ core.Starter      = (*Slack)(nil)
	_ core.Reloader     = (*Slack)(nil)
)

// Slack is the channel.slack module. It wraps either a Webhook or a WebAPI
// transport, chosen from its configuration.
type Slack struct {
	config     Config
	logger     *slog.Logger
	dispatcher *channel.Dispatcher
	creds      *security.CredentialStore
	redactor   *security.Redactor

	mu        sync.RWMutex
	transport channel.Channel
}

// ModuleInfo implements core.Module.
func (s *Slack) ModuleInfo() core.ModuleInfo {
	return core.ModuleInfo{
		ID:  ModuleID,
		New: func() core.Module { return &Slack{} },
	}
}

// Configure implements core.Configurable.
func (s *Slack) Configure(node *yaml.Node) error {
	var cfg Config
	if err := node.Decode(&cfg); err != nil {
		return fmt.Errorf("slack: decode config: %w", err)
	}
	s.config = cfg
	return nil
}

// Provision implements core.Provisioner.
func (s *Slack) Provision(ctx *core.AppContext) error {
	s.config.defaults()
	s.logger = ctx.Logger
	s.dispatcher, _ = core.Service[*channel.Dispatcher](ctx, DispatcherService)
	s.creds, _ = core.Service[*security.CredentialStore](ctx, "security.credentials")
	s.redactor, _ = core.Service[*security.Redactor](ctx, "security.redactor")

	s.protectSecrets()
	s.transport = newTransport(s.config)
	return nil
}

// Validate implements core.Validator.
func (s *Slack) Validate() error {
	if err := s.config.validate(); err != nil {
		return err
	}
	if s.config.Mode == ModeWebAPI && s.config.Token == "" {
		return errors.New("slack: token is required when mode is \"webapi\"")
	}
	return nil
}

// Start implements core.Starter. It registers the transport with the
// dispatcher under the configured name.
func (s *Slack) Start() error {
	if s.dispatcher == nil {
		return fmt.Errorf("slack: %s service not found", DispatcherService)
	}
	if err := s.dispatcher.Register(s.config.Name, s); err != nil {
		return fmt.Errorf("slack: %w", err)
	}
	s.logger.Info("slack channel registered",
		"name", s.config.Name,
		"transport", s.config.transport(),
	)
	return nil
}

// Reload implements core.Reloader. It re-reads routing defaults from the
// new configuration; the dispatcher name cannot change at runtime.
func (s *Slack) Reload(ctx *core.AppContext) error {
	var cfg Config
	if node, ok := ctx.ModuleConfig(string(ModuleID)); ok {
		if err := node.Decode(&cfg); err != nil {
			return fmt.Errorf("slack: decode config: %w", err)
		}
	}
	cfg.defaults()
	if err := cfg.validate(); err != nil {
		return err
	}
	if cfg.Name != s.config.Name {
		return fmt.Errorf("slack: name cannot change on reload (%q to %q)", s.config.Name, cfg.Name)
	}

	s.mu.Lock()
	s.config = cfg
	s.transport = newTransport(cfg)
	s.mu.Unlock()
	s.protectSecrets()
	if s.dispatcher != nil {
		s.dispatcher.Replace(cfg.Name, s)
	}
	s.logger.Info("slack channel reloaded", "transport", s.Transport())
	return nil
}

// Send implements channel.Channel by delegating to the active transport.
func (s *Slack) Send(ctx context.Context, n channel.Notification) (channel.Receipt, error) {
	s.mu.RLock()
	t := s.transport
	s.mu.RUnlock()
	return t.Send(ctx, n)
}

// Transport returns "webhook" or "webapi".
func (s *Slack) Transport() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.transport()
}

// protectSecrets records the configured token and webhook URL in the
// credential store so the redacting logger scrubs them.
func (s *Slack) protectSecrets() {
	if s.creds == nil {
		return
	}
	s.creds.Set(string(ModuleID)+".token", s.config.Token)
	s.creds.Set(string(ModuleID)+".webhook_url", s.config.WebhookURL)
	if s.redactor != nil {
		s.redactor.SyncCredentials(s.creds)
	}
}

func newTransport(cfg Config) channel.Channel {
	client := NewClient(cfg.Timeout)
	if cfg.transport() == ModeWebAPI {
		return NewWebAPI(client, cfg.APIURL, cfg.Token, cfg.Channel)
	}
	return NewWebhook(client, cfg.WebhookURL)
}
