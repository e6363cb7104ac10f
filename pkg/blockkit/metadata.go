package blockkit

// EventMetadata attaches a typed event to a message.
type EventMetadata struct {
	Type    string
	Payload map[string]any
}

// NewEventMetadata creates event metadata.
func NewEventMetadata(eventType string, payload map[string]any) *EventMetadata {
	return &EventMetadata{Type: eventType, Payload: payload}
}

// Render implements Renderer. A nil payload renders as an empty object.
func (m *EventMetadata) Render() (*Payload, error) {
	payload := m.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	p := NewPayload()
	p.Set("event_type", m.Type)
	p.Set("event_payload", payload)
	return p, nil
}
