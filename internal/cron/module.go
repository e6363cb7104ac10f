package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/flemzord/slackkit/internal/channel"
	"github.com/flemzord/slackkit/internal/core"
	"github.com/flemzord/slackkit/internal/telemetry"
)

// ModuleID is the module identifier.
const ModuleID core.ModuleID = "schedule.cron"

func init() {
	core.RegisterModule(&Module{})
}

var (
	_ core.Configurable = (*Module)(nil)
	_ core.Provisioner  = (*Module)(nil)
	_ core.Validator    = (*Module)(nil)
	_ core.Starter      = (*Module)(nil)
	_ core.Stopper      = (*Module)(nil)
	_ core.Reloader     = (*Module)(nil)
)

// JobConfig describes one scheduled notification.
type JobConfig struct {
	Name     string        `yaml:"name"`
	Schedule string        `yaml:"schedule"`
	Channel  string        `yaml:"channel"`
	Route    channel.Route `yaml:"route"`
	Text     string        `yaml:"text"`
	// Template is a JSON document with a "blocks" array.
	Template string `yaml:"template"`
}

// Config holds the schedule.cron configuration.
type Config struct {
	Jobs []JobConfig `yaml:"jobs"`
}

func (c *Config) validate() error {
	var errs []error
	seen := make(map[string]bool)
	for i, j := range c.Jobs {
		if j.Name == "" {
			errs = append(errs, fmt.Errorf("cron: jobs[%d]: name is required", i))
		} else if seen[j.Name] {
			errs = append(errs, fmt.Errorf("cron: jobs[%d]: duplicate name %q", i, j.Name))
		}
		seen[j.Name] = true
		if err := ValidateSchedule(j.Schedule); err != nil {
			errs = append(errs, fmt.Errorf("cron: jobs[%d]: %w", i, err))
		}
		if j.Channel == "" {
			errs = append(errs, fmt.Errorf("cron: jobs[%d]: channel is required", i))
		}
		if j.Text == "" && j.Template == "" {
			errs = append(errs, fmt.Errorf("cron: jobs[%d]: text or template is required", i))
		}
		if j.Template != "" {
			job := NotificationJob{JobName: j.Name, Template: []byte(j.Template)}
			if _, err := job.Message(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Module is the schedule.cron module.
type Module struct {
	config  Config
	logger  *slog.Logger
	sender  Sender
	metrics *telemetry.Metrics

	scheduler *Scheduler
}

// ModuleInfo implements core.Module.
func (m *Module) ModuleInfo() core.ModuleInfo {
	return core.ModuleInfo{
		ID:  ModuleID,
		New: func() core.Module { return &Module{} },
	}
}

// Configure implements core.Configurable.
func (m *Module) Configure(node *yaml.Node) error {
	if err := node.Decode(&m.config); err != nil {
		return fmt.Errorf("cron: decode config: %w", err)
	}
	return nil
}

// Provision implements core.Provisioner.
func (m *Module) Provision(ctx *core.AppContext) error {
	m.logger = ctx.Logger
	m.metrics, _ = core.Service[*telemetry.Metrics](ctx, "telemetry.metrics")
	if d, ok := core.Service[*channel.Dispatcher](ctx, "channel.dispatcher"); ok {
		m.sender = d
	}
	return nil
}

// Validate implements core.Validator.
func (m *Module) Validate() error {
	return m.config.validate()
}

// Start implements core.Starter.
func (m *Module) Start() error {
	if m.sender == nil {
		return errors.New("cron: channel.dispatcher service not found")
	}
	s, err := m.buildScheduler(m.config)
	if err != nil {
		return err
	}
	if err := s.Start(); err != nil {
		return err
	}
	m.scheduler = s
	return nil
}

// Stop implements core.Stopper.
func (m *Module) Stop(ctx context.Context) error {
	if m.scheduler == nil {
		return nil
	}
	return m.scheduler.Stop(ctx)
}

// Reload implements core.Reloader. The new job set replaces the old one;
// in-flight runs finish first.
func (m *Module) Reload(ctx *core.AppContext) error {
	var cfg Config
	if node, ok := ctx.ModuleConfig(string(ModuleID)); ok {
		if err := node.Decode(&cfg); err != nil {
			return fmt.Errorf("cron: decode config: %w", err)
		}
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	next, err := m.buildScheduler(cfg)
	if err != nil {
		return err
	}

	if m.scheduler != nil {
		if err := m.scheduler.Stop(context.Background()); err != nil {
			return err
		}
	}
	if err := next.Start(); err != nil {
		return err
	}
	m.config = cfg
	m.scheduler = next
	m.logger.Info("cron: jobs reloaded", "jobs", len(cfg.Jobs))
	return nil
}

func (m *Module) buildScheduler(cfg Config) (*Scheduler, error) {
	s := NewScheduler(m.logger, m.metrics)
	for _, jc := range cfg.Jobs {
		job := &NotificationJob{
			JobName: jc.Name,
			Spec:    jc.Schedule,
			Channel: jc.Channel,
			Route:   jc.Route,
			Text:    jc.Text,
			Sender:  m.sender,
		}
		if jc.Template != "" {
			job.Template = []byte(jc.Template)
		}
		if err := s.RegisterJob(job); err != nil {
			return nil, err
		}
	}
	return s, nil
}
