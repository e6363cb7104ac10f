package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/flemzord/slackkit/internal/channel"
	"github.com/flemzord/slackkit/modules/channel/slack"
	"github.com/flemzord/slackkit/pkg/app"
	"github.com/flemzord/slackkit/pkg/blockkit"
)

// messageFlags registers the flags shared by send and render.
func messageFlags(fs *pflag.FlagSet) {
	fs.String("text", "", "Fallback text of the message")
	fs.String("template", "", `JSON file with a "blocks" array ("-" reads stdin)`)
	fs.String("channel", "", "Destination channel")
	fs.String("thread-ts", "", "Reply in the thread of this message timestamp")
	fs.String("username", "", "Bot username")
	fs.String("icon-emoji", "", "Bot icon emoji, e.g. :rocket:")
}

// buildMessage assembles a Block Kit message from the message flags.
func buildMessage(cmd *cobra.Command, v *viper.Viper) (*blockkit.Message, error) {
	msg := blockkit.NewMessage()
	if text := v.GetString("text"); text != "" {
		msg.Text(text)
	}
	if ch := v.GetString("channel"); ch != "" {
		msg.To(ch)
	}
	if ts := v.GetString("thread_ts"); ts != "" {
		msg.ThreadTimestamp(ts)
	}
	if name := v.GetString("username"); name != "" {
		msg.Username(name)
	}
	if emoji := v.GetString("icon_emoji"); emoji != "" {
		msg.IconEmoji(emoji)
	}
	if path := v.GetString("template"); path != "" {
		raw, err := readTemplate(cmd.InOrStdin(), path)
		if err != nil {
			return nil, err
		}
		if err := msg.UsingTemplate(raw); err != nil {
			return nil, fmt.Errorf("template %s: %w", path, err)
		}
	}
	return msg, nil
}

func readTemplate(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func bindMessageFlags(v *viper.Viper, fs *pflag.FlagSet) {
	for key, flag := range map[string]string{
		"text":       "text",
		"template":   "template",
		"channel":    "channel",
		"thread_ts":  "thread-ts",
		"username":   "username",
		"icon_emoji": "icon-emoji",
	} {
		_ = v.BindPFlag(key, fs.Lookup(flag))
	}
	_ = v.BindEnv("channel", "SLACK_CHANNEL")
}

func sendCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send one message through an incoming webhook or chat.postMessage",
		Long: `Send one message and print the delivery receipt.

With --token (or SLACK_BOT_TOKEN) the message is posted with chat.postMessage
and --channel is required. Otherwise it goes to --webhook (or SLACK_WEBHOOK_URL).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindSendFlags(v, cmd.Flags())
			msg, err := buildMessage(cmd, v)
			if err != nil {
				return err
			}

			rt, err := app.NewRuntime(cmd.ErrOrStderr(), v.GetString("log_level"), "text")
			if err != nil {
				return err
			}
			client := slack.NewClient(v.GetDuration("timeout"))

			var transport channel.Channel
			switch {
			case v.GetString("token") != "":
				rt.Credentials.Set("cli.token", v.GetString("token"))
				transport = slack.NewWebAPI(client, v.GetString("api_url"), v.GetString("token"), v.GetString("channel"))
			case v.GetString("webhook") != "":
				rt.Credentials.Set("cli.webhook", v.GetString("webhook"))
				transport = slack.NewWebhook(client, v.GetString("webhook"))
			default:
				return errors.New("either --webhook or --token is required")
			}
			rt.Redactor.SyncCredentials(rt.Credentials)

			if err := rt.Dispatcher.Register("slack", transport); err != nil {
				return err
			}
			receipt, err := rt.Dispatcher.Send(cmd.Context(), "slack", channel.Notification{Message: msg})
			if err != nil {
				return errors.New(rt.Redactor.Redact(err.Error()))
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(receipt)
		},
	}

	fs := cmd.Flags()
	messageFlags(fs)
	fs.String("webhook", "", "Incoming webhook URL")
	fs.String("token", "", "Bot token for chat.postMessage")
	fs.String("api-url", slack.DefaultAPIURL, "Web API base URL")
	fs.Duration("timeout", 10*time.Second, "HTTP timeout")
	return cmd
}

// bindSendFlags binds at run time since send and render share flag names.
func bindSendFlags(v *viper.Viper, fs *pflag.FlagSet) {
	bindMessageFlags(v, fs)
	_ = v.BindPFlag("webhook", fs.Lookup("webhook"))
	_ = v.BindPFlag("token", fs.Lookup("token"))
	_ = v.BindPFlag("api_url", fs.Lookup("api-url"))
	_ = v.BindPFlag("timeout", fs.Lookup("timeout"))
	_ = v.BindEnv("webhook", "SLACK_WEBHOOK_URL")
	_ = v.BindEnv("token", "SLACK_BOT_TOKEN")
}
