package channel

import (
	"errors"
	"fmt"
)

// Sentinel errors for channel operations.
var (
	// ErrNoChannel indicates the notification targets a channel that is
	// not registered in the dispatcher.
	ErrNoChannel = errors.New("channel: unknown channel")

	// ErrDuplicateChannel indicates a channel with the same name is already
	// registered in the dispatcher.
	ErrDuplicateChannel = errors.New("channel: duplicate channel name")

	// ErrNoDestination indicates neither the route nor the configuration
	// name a destination (webhook URL or conversation).
	ErrNoDestination = errors.New("channel: destination is not set")

	// ErrNoToken indicates neither the route nor the configuration provide
	// an API token.
	ErrNoToken = errors.New("channel: token is not set")

	// ErrUnsupportedMessage indicates the channel cannot send this kind of
	// message.
	ErrUnsupportedMessage = errors.New("channel: unsupported message type")

	// ErrNoMessage indicates a notification without a message.
	ErrNoMessage = errors.New("channel: notification has no message")
)

// DeliveryError reports a message the platform did not accept. It carries
// the HTTP status and raw response body, or the transport error.
type DeliveryError struct {
	// Transport is "webhook" or "webapi".
	Transport  string
	StatusCode int
	Body       []byte
	// APIError is the "error" field of an ok:false response.
	APIError string
	// Err is the underlying transport error, if any.
	Err error
}

func (e *DeliveryError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: delivery failed: %v", e.Transport, e.Err)
	case e.APIError != "":
		return fmt.Sprintf("%s: delivery failed (status %d): %s", e.Transport, e.StatusCode, e.APIError)
	default:
		return fmt.Sprintf("%s: delivery failed (status %d): %s", e.Transport, e.StatusCode, e.Body)
	}
}

func (e *DeliveryError) Unwrap() error { return e.Err }
