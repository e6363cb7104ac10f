package blockkit

import (
	"unicode/utf8"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Payload is a rendered JSON object. Keys marshal in insertion order.
type Payload = orderedmap.OrderedMap[string, any]

// Renderer is implemented by every object that renders to a wire payload.
type Renderer interface {
	Render() (*Payload, error)
}

// NewPayload returns an empty payload.
func NewPayload() *Payload {
	return orderedmap.New[string, any]()
}

func typed(kind string) *Payload {
	p := NewPayload()
	p.Set("type", kind)
	return p
}

func setString(p *Payload, key string, v *string) {
	if v != nil {
		p.Set(key, *v)
	}
}

func setBool(p *Payload, key string, v *bool) {
	if v != nil {
		p.Set(key, *v)
	}
}

// checkLength validates that s has at most max characters.
func checkLength(field, s string, max int) error {
	if utf8.RuneCountInString(s) > max {
		return tooLong(field, max)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
