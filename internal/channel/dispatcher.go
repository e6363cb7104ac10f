package channel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/flemzord/slackkit/internal/telemetry"
	"github.com/flemzord/slackkit/pkg/blockkit"
)

// Dispatcher routes notifications to named channels. Every send is timed,
// counted and traced.
type Dispatcher struct {
	mu       sync.RWMutex
	channels map[string]Channel

	logger  *slog.Logger
	metrics *telemetry.Metrics
	tracer  trace.Tracer
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the dispatcher logger.
func WithLogger(l *slog.Logger) Option { return func(d *Dispatcher) { d.logger = l } }

// WithMetrics records deliveries in m.
func WithMetrics(m *telemetry.Metrics) Option { return func(d *Dispatcher) { d.metrics = m } }

// WithTracer traces deliveries with t.
func WithTracer(t trace.Tracer) Option { return func(d *Dispatcher) { d.tracer = t } }

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		channels: make(map[string]Channel),
		logger:   slog.Default(),
		tracer:   noop.NewTracerProvider().Tracer(""),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register adds a channel under the given name.
// Returns ErrDuplicateChannel if the name is already taken.
func (d *Dispatcher) Register(name string, ch Channel) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.channels[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateChannel, name)
	}
	d.channels[name] = ch
	return nil
}

// Replace registers ch under name, replacing any existing channel. Used by
// modules that rebuild their channel on reload.
func (d *Dispatcher) Replace(name string, ch Channel) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.channels[name] = ch
}

// Get returns the channel registered under name, or false if none.
func (d *Dispatcher) Get(name string) (Channel, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ch, ok := d.channels[name]
	return ch, ok
}

// Channels returns the sorted names of all registered channels.
func (d *Dispatcher) Channels() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.channels))
	for name := range d.channels {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Send delivers n through the channel registered under name. It returns
// ErrNoChannel if no channel is registered under that name.
func (d *Dispatcher) Send(ctx context.Context, name string, n Notification) (Receipt, error) {
	ch, ok := d.Get(name)
	if !ok {
		return Receipt{}, fmt.Errorf("%w: %s", ErrNoChannel, name)
	}
	if n.Message == nil {
		return Receipt{}, ErrNoMessage
	}

	ctx, span := d.tracer.Start(ctx, "channel.send",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("channel.name", name)),
	)
	defer span.End()

	start := time.Now()
	receipt, err := ch.Send(ctx, n)
	elapsed := time.Since(start)

	outcome := Outcome(err)
	d.metrics.ObserveDelivery(name, outcome, elapsed)
	span.SetAttributes(attribute.String("delivery.outcome", outcome))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		d.logger.Error("delivery failed", "channel", name, "outcome", outcome, "error", err)
		return receipt, err
	}
	span.SetAttributes(attribute.Int("http.status_code", receipt.StatusCode))
	d.logger.Debug("message delivered", "channel", name, "elapsed", elapsed)
	return receipt, nil
}

// Outcome classifies a send error for metrics and logs.
func Outcome(err error) string {
	var delivery *DeliveryError
	switch {
	case err == nil:
		return telemetry.OutcomeDelivered
	case errors.Is(err, blockkit.ErrValidation),
		errors.Is(err, blockkit.ErrLogic),
		errors.Is(err, blockkit.ErrParse),
		errors.Is(err, ErrUnsupportedMessage),
		errors.Is(err, ErrNoDestination),
		errors.Is(err, ErrNoToken):
		return telemetry.OutcomeInvalid
	case errors.As(err, &delivery) && delivery.Err == nil:
		return telemetry.OutcomeRejected
	default:
		return telemetry.OutcomeFailed
	}
}
