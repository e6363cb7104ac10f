package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/flemzord/slackkit/internal/channel"
	"github.com/flemzord/slackkit/internal/telemetry"
)

const maxResponseBytes = 1 << 20 // 1 MiB

// Client posts JSON payloads to Slack endpoints.
type Client struct {
	http   *http.Client
	tracer trace.Tracer
}

// NewClient creates a client whose requests time out after timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		http:   &http.Client{Timeout: timeout},
		tracer: telemetry.Tracer(),
	}
}

// post sends payload to endpoint once. token, when set, is sent as a bearer
// header. A non-2xx status or a JSON body with "ok": false is reported as a
// *channel.DeliveryError.
func (c *Client) post(ctx context.Context, transport, endpoint, token string, payload *channel.Payload) (channel.Receipt, error) {
	ctx, span := c.tracer.Start(ctx, "slack.post",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("slack.transport", transport)),
	)
	defer span.End()

	receipt, err := c.do(ctx, transport, endpoint, token, payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delivery failed")
	}
	if receipt.StatusCode != 0 {
		span.SetAttributes(attribute.Int("http.status_code", receipt.StatusCode))
	}
	return receipt, err
}

func (c *Client) do(ctx context.Context, transport, endpoint, token string, payload *channel.Payload) (channel.Receipt, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return channel.Receipt{}, fmt.Errorf("%s: encode payload: %w", transport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		// The endpoint may embed a secret; keep it out of the message.
		return channel.Receipt{}, fmt.Errorf("%s: create request: invalid endpoint", transport)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return channel.Receipt{}, &channel.DeliveryError{Transport: transport, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return channel.Receipt{}, &channel.DeliveryError{Transport: transport, StatusCode: resp.StatusCode, Err: err}
	}

	receipt := channel.Receipt{StatusCode: resp.StatusCode}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return receipt, &channel.DeliveryError{Transport: transport, StatusCode: resp.StatusCode, Body: body}
	}

	// Webhooks answer with a plain "ok"; only JSON bodies carry a status flag.
	if !gjson.ValidBytes(body) {
		return receipt, nil
	}
	result := gjson.ParseBytes(body)
	if ok := result.Get("ok"); ok.Exists() && !ok.Bool() {
		apiErr := result.Get("error").String()
		if apiErr == "" {
			apiErr = "unknown error"
		}
		return receipt, &channel.DeliveryError{
			Transport:  transport,
			StatusCode: resp.StatusCode,
			Body:       body,
			APIError:   apiErr,
		}
	}
	receipt.Channel = result.Get("channel").String()
	receipt.Timestamp = result.Get("ts").String()
	return receipt, nil
}
