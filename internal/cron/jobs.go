package cron

import (
	"context"
	"fmt"

	"github.com/flemzord/slackkit/internal/channel"
	"github.com/flemzord/slackkit/pkg/blockkit"
)

// Sender delivers a notification through a named channel.
// *channel.Dispatcher implements it.
type Sender interface {
	Send(ctx context.Context, name string, n channel.Notification) (channel.Receipt, error)
}

// NotificationJob sends a Block Kit message on every tick. The message is
// rebuilt each run from Text and Template.
type NotificationJob struct {
	JobName string
	Spec    string
	// Channel is the dispatcher channel name.
	Channel string
	Route   channel.Route
	Text    string
	// Template is a JSON document with a "blocks" array.
	Template []byte
	Sender   Sender
}

var _ Job = (*NotificationJob)(nil)

// Name implements Job.
func (j *NotificationJob) Name() string { return j.JobName }

// Schedule implements Job.
func (j *NotificationJob) Schedule() string { return j.Spec }

// Message builds the message sent on each tick.
func (j *NotificationJob) Message() (*blockkit.Message, error) {
	msg := blockkit.NewMessage()
	if j.Text != "" {
		msg.Text(j.Text)
	}
	if len(j.Template) > 0 {
		if err := msg.UsingTemplate(j.Template); err != nil {
			return nil, fmt.Errorf("cron: job %q: %w", j.JobName, err)
		}
	}
	return msg, nil
}

// Run implements Job.
func (j *NotificationJob) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("cron: job %q cancelled: %w", j.JobName, err)
	}
	msg, err := j.Message()
	if err != nil {
		return err
	}
	if _, err := j.Sender.Send(ctx, j.Channel, channel.Notification{Message: msg, Route: j.Route}); err != nil {
		return fmt.Errorf("cron: job %q: %w", j.JobName, err)
	}
	return nil
}
