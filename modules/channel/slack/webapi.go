package slack

import (
	"context"
	"fmt"
	"strings"

	"github.com/flemzord/slackkit/internal/channel"
	"github.com/flemzord/slackkit/pkg/blockkit"
)

// WebAPI posts Block Kit messages through chat.postMessage.
type WebAPI struct {
	client   *Client
	endpoint string
	defaults channel.Route
}

var _ channel.Channel = (*WebAPI)(nil)

// NewWebAPI creates a Web API transport against apiURL. token and
// defaultChannel apply when a notification's route leaves them empty.
func NewWebAPI(client *Client, apiURL, token, defaultChannel string) *WebAPI {
	return &WebAPI{
		client:   client,
		endpoint: strings.TrimSuffix(apiURL, "/") + "/chat.postMessage",
		defaults: channel.Route{Token: token, Channel: defaultChannel},
	}
}

// Send implements channel.Channel. Only *blockkit.Message is accepted.
//
// The conversation is taken from the route, then from the message itself,
// then from the configured default.
func (a *WebAPI) Send(ctx context.Context, n channel.Notification) (channel.Receipt, error) {
	msg, ok := n.Message.(*blockkit.Message)
	if !ok {
		return channel.Receipt{}, fmt.Errorf("%w: %T (the Web API accepts Block Kit messages)", channel.ErrUnsupportedMessage, n.Message)
	}

	route := n.Route
	if route.Channel == "" {
		route.Channel = msg.Channel()
	}
	route = route.Merge(a.defaults)
	if route.Channel == "" {
		return channel.Receipt{}, channel.ErrNoDestination
	}
	if route.Token == "" {
		return channel.Receipt{}, channel.ErrNoToken
	}

	payload, err := msg.Render()
	if err != nil {
		return channel.Receipt{}, err
	}
	payload.Set("channel", route.Channel)
	_ = payload.MoveToFront("channel")

	return a.client.post(ctx, ModeWebAPI, a.endpoint, route.Token, payload)
}
