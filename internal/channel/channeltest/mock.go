// Package channeltest provides a recording channel for tests.
package channeltest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/flemzord/slackkit/internal/channel"
)

// MockChannel records every notification it is asked to send, along with
// the rendered payload.
type MockChannel struct {
	mu       sync.Mutex
	sent     []channel.Notification
	payloads [][]byte

	// SendFunc, if set, is called instead of the default recording behavior.
	SendFunc func(ctx context.Context, n channel.Notification) (channel.Receipt, error)
}

// Compile-time interface guard.
var _ channel.Channel = (*MockChannel)(nil)

// NewMockChannel creates an empty MockChannel.
func NewMockChannel() *MockChannel {
	return &MockChannel{}
}

// Send renders the message and records it. If SendFunc is set, it delegates
// to it instead.
func (m *MockChannel) Send(ctx context.Context, n channel.Notification) (channel.Receipt, error) {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, n)
	}
	p, err := n.Message.Render()
	if err != nil {
		return channel.Receipt{}, err
	}
	b, err := json.Marshal(p)
	if err != nil {
		return channel.Receipt{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, n)
	m.payloads = append(m.payloads, b)
	return channel.Receipt{StatusCode: 200, Channel: n.Route.Channel}, nil
}

// Sent returns a copy of the recorded notifications.
func (m *MockChannel) Sent() []channel.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]channel.Notification, len(m.sent))
	copy(cp, m.sent)
	return cp
}

// Payloads returns the encoded payloads of the recorded notifications.
func (m *MockChannel) Payloads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.payloads))
	for i, p := range m.payloads {
		out[i] = string(p)
	}
	return out
}

// Reset clears recorded notifications.
func (m *MockChannel) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
	m.payloads = nil
}
