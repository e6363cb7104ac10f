package slack

import (
	"fmt"
	"net/url"
	"time"
)

// Transport modes.
const (
	ModeAuto    = "auto"
	ModeWebhook = "webhook"
	ModeWebAPI  = "webapi"
)

// DefaultAPIURL is the Slack Web API base URL.
const DefaultAPIURL = "https://slack.com/api"

// Config holds the Slack channel configuration. Token, WebhookURL and
// Channel are defaults; a notification's route overrides them.
type Config struct {
	// Name is the dispatcher channel name. Defaults to "slack".
	Name       string        `yaml:"name"`
	Mode       string        `yaml:"mode"`
	WebhookURL string        `yaml:"webhook_url"`
	Token      string        `yaml:"token"`
	Channel    string        `yaml:"channel"`
	APIURL     string        `yaml:"api_url"`
	Timeout    time.Duration `yaml:"timeout"`
}

func (c *Config) defaults() {
	if c.Name == "" {
		c.Name = "slack"
	}
	if c.Mode == "" {
		c.Mode = ModeAuto
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
}

// transport resolves ModeAuto: the Web API when a token is configured,
// the webhook otherwise.
func (c *Config) transport() string {
	if c.Mode != ModeAuto {
		return c.Mode
	}
	if c.Token != "" {
		return ModeWebAPI
	}
	return ModeWebhook
}

func (c *Config) validate() error {
	switch c.Mode {
	case ModeAuto, ModeWebhook, ModeWebAPI:
	default:
		return fmt.Errorf("slack: invalid mode %q (must be %q, %q or %q)", c.Mode, ModeAuto, ModeWebhook, ModeWebAPI)
	}
	if err := checkURL("api_url", c.APIURL); err != nil {
		return err
	}
	if c.WebhookURL != "" {
		if err := checkURL("webhook_url", c.WebhookURL); err != nil {
			return err
		}
	}
	if c.Timeout > 2*time.Minute {
		return fmt.Errorf("slack: timeout must be at most 2m, got %s", c.Timeout)
	}
	return nil
}

func checkURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		// The value may be a secret; keep it out of the error.
		return fmt.Errorf("slack: %s must be a valid http/https URL", field)
	}
	return nil
}
