package slack

import (
	"context"

	"github.com/flemzord/slackkit/internal/channel"
	"github.com/flemzord/slackkit/pkg/attachment"
)

// Text is a plain message. Over a webhook it is sent as a legacy message
// whose content is the text.
type Text string

// Render implements channel.Message.
func (t Text) Render() (*channel.Payload, error) {
	return attachment.New(string(t)).Render()
}

// Webhook posts messages to an incoming webhook URL.
type Webhook struct {
	client   *Client
	defaults channel.Route
}

var _ channel.Channel = (*Webhook)(nil)

// NewWebhook creates a webhook transport. url is used when a notification's
// route does not name one.
func NewWebhook(client *Client, url string) *Webhook {
	return &Webhook{client: client, defaults: channel.Route{WebhookURL: url}}
}

// Send implements channel.Channel. Any message kind is accepted.
func (w *Webhook) Send(ctx context.Context, n channel.Notification) (channel.Receipt, error) {
	route := n.Route.Merge(w.defaults)
	if route.WebhookURL == "" {
		return channel.Receipt{}, channel.ErrNoDestination
	}
	if n.Message == nil {
		return channel.Receipt{}, channel.ErrNoMessage
	}

	payload, err := n.Message.Render()
	if err != nil {
		return channel.Receipt{}, err
	}
	return w.client.post(ctx, ModeWebhook, route.WebhookURL, "", payload)
}
