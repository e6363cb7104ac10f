package gateway

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tidwall/gjson"

	"github.com/flemzord/slackkit/internal/channel"
	"github.com/flemzord/slackkit/internal/telemetry"
	"github.com/flemzord/slackkit/pkg/blockkit"
)

// MessageResponse is the JSON response for a delivered message.
type MessageResponse struct {
	OK         bool   `json:"ok"`
	Channel    string `json:"channel,omitempty"`
	Timestamp  string `json:"ts,omitempty"`
	StatusCode int    `json:"status_code"`
}

// handleSendMessage returns an http.HandlerFunc for POST /api/messages/{channel}.
//
// The body is a JSON object with optional text, channel, thread_ts, username
// and template keys. template is either an object with a "blocks" array or a
// string holding one.
func (g *Gateway) handleSendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "channel")
		if g.dispatcher == nil {
			writeError(w, http.StatusServiceUnavailable, "no channels available")
			return
		}
		if _, ok := g.dispatcher.Get(name); !ok {
			writeError(w, http.StatusNotFound, "unknown channel: "+name)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, g.config.MaxBodyBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable body")
			return
		}
		if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsObject() {
			writeError(w, http.StatusBadRequest, "body must be a JSON object")
			return
		}

		msg, err := messageFromRequest(body)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		receipt, err := g.dispatcher.Send(r.Context(), name, channel.Notification{Message: msg})
		if err != nil {
			writeError(w, sendStatus(err), g.redact(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{
			OK:         true,
			Channel:    receipt.Channel,
			Timestamp:  receipt.Timestamp,
			StatusCode: receipt.StatusCode,
		})
	}
}

func messageFromRequest(body []byte) (*blockkit.Message, error) {
	req := gjson.ParseBytes(body)
	msg := blockkit.NewMessage()
	if v := req.Get("text"); v.Exists() {
		msg.Text(v.String())
	}
	if v := req.Get("channel"); v.String() != "" {
		msg.To(v.String())
	}
	if v := req.Get("thread_ts"); v.String() != "" {
		msg.ThreadTimestamp(v.String())
	}
	if v := req.Get("username"); v.String() != "" {
		msg.Username(v.String())
	}
	if v := req.Get("template"); v.Exists() {
		raw := v.Raw
		if v.Type == gjson.String {
			raw = v.Str
		}
		if err := msg.UsingTemplate([]byte(raw)); err != nil {
			return nil, err
		}
	}
	return msg, nil
}

// sendStatus maps a dispatch error to an HTTP status.
func sendStatus(err error) int {
	if errors.Is(err, channel.ErrNoChannel) {
		return http.StatusNotFound
	}
	switch channel.Outcome(err) {
	case telemetry.OutcomeInvalid:
		return http.StatusUnprocessableEntity
	case telemetry.OutcomeRejected:
		return http.StatusBadGateway
	}
	var de *channel.DeliveryError
	if errors.As(err, &de) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (g *Gateway) redact(s string) string {
	if g.redactor == nil {
		return s
	}
	return g.redactor.Redact(s)
}
