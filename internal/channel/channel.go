// Package channel defines how rendered messages reach a messaging platform:
// the Channel interface, per-send routing, and a Dispatcher that routes
// notifications to named channels.
package channel

import (
	"context"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Payload is a rendered JSON object with ordered keys. It is the same type as
// blockkit.Payload and attachment.Payload.
type Payload = orderedmap.OrderedMap[string, any]

// Message is anything that renders to a payload: a *blockkit.Message or an
// *attachment.Message.
type Message interface {
	Render() (*Payload, error)
}

// Notification is one message to deliver, with optional routing overrides.
type Notification struct {
	Message Message
	Route   Route
}

// Receipt describes a delivered message.
type Receipt struct {
	// StatusCode is the HTTP status returned by the platform.
	StatusCode int `json:"status_code"`
	// Channel and Timestamp identify the posted message when the platform
	// reports them (Web API only).
	Channel   string `json:"channel,omitempty"`
	Timestamp string `json:"ts,omitempty"`
}

// Channel delivers notifications to one destination. Send performs a single
// attempt and never retries.
type Channel interface {
	Send(ctx context.Context, n Notification) (Receipt, error)
}
