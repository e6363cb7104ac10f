// Package slack delivers Block Kit and legacy attachment messages to Slack.
//
// Two transports are provided:
//
//   - Webhook posts the payload to an incoming webhook URL, unauthenticated.
//     It accepts any message, including plain Text.
//   - WebAPI posts Block Kit messages to chat.postMessage with a bot token.
//
// Each send is exactly one HTTP POST. Non-2xx statuses and ok:false bodies
// are returned as *channel.DeliveryError; nothing is retried.
//
// The module registers itself as "channel.slack" via init() and adds its
// transport to the "channel.dispatcher" service on Start.
package slack
