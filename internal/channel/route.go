package channel

// Route carries per-send routing values. Empty fields fall back to the
// channel's configured defaults.
type Route struct {
	// Channel is the conversation ID or name (Web API).
	Channel string `yaml:"channel" json:"channel,omitempty"`
	// Token is the bot token (Web API).
	Token string `yaml:"token" json:"-"`
	// WebhookURL is the incoming webhook (webhook).
	WebhookURL string `yaml:"webhook_url" json:"-"`
}

// Merge returns r with every empty field taken from defaults.
func (r Route) Merge(defaults Route) Route {
	if r.Channel == "" {
		r.Channel = defaults.Channel
	}
	if r.Token == "" {
		r.Token = defaults.Token
	}
	if r.WebhookURL == "" {
		r.WebhookURL = defaults.WebhookURL
	}
	return r
}
