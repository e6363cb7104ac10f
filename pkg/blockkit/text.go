package blockkit

import "unicode/utf8"

// Text object types.
const (
	TypePlainText = "plain_text"
	TypeMarkdown  = "mrkdwn"
)

// Default text length bounds.
const (
	DefaultMinLength = 1
	DefaultMaxLength = 3000
)

// LengthOption overrides the default bounds of a text object.
type LengthOption func(*bounds)

type bounds struct {
	min, max int
}

// MaxLength sets the maximum number of characters.
func MaxLength(n int) LengthOption { return func(b *bounds) { b.max = n } }

// MinLength sets the minimum number of characters.
func MinLength(n int) LengthOption { return func(b *bounds) { b.min = n } }

// PlainText is a plain_text composition object. Its length is checked when
// it is created; a text outside its bounds leaves the object with an error
// that Err and Render report.
type PlainText struct {
	field string
	text  string
	min   int
	max   int
	emoji *bool
	err   error
}

// NewPlainText creates a plain text object, by default 1 to 3000 characters.
func NewPlainText(text string, opts ...LengthOption) *PlainText {
	return newPlainText("text", text, opts...)
}

func newPlainText(field, text string, opts ...LengthOption) *PlainText {
	b := bounds{min: DefaultMinLength, max: DefaultMaxLength}
	for _, opt := range opts {
		opt(&b)
	}
	t := &PlainText{field: field, text: text, min: b.min, max: b.max}
	n := utf8.RuneCountInString(text)
	switch {
	case n < b.min:
		t.err = tooShort(field, b.min)
	case n > b.max:
		t.err = tooLong(field, b.max)
	}
	return t
}

// Emoji sets whether emoji shortcodes are rendered.
func (t *PlainText) Emoji(enabled bool) *PlainText {
	t.emoji = &enabled
	return t
}

// Text returns the raw text.
func (t *PlainText) Text() string { return t.text }

// Err returns the length error recorded at creation, if any.
func (t *PlainText) Err() error { return t.err }

// Render implements Renderer.
func (t *PlainText) Render() (*Payload, error) {
	if t.err != nil {
		return nil, t.err
	}
	p := typed(TypePlainText)
	p.Set("text", t.text)
	setBool(p, "emoji", t.emoji)
	return p, nil
}

// RichText is a text object that renders either as plain_text or as mrkdwn.
// The emoji flag is only emitted in plain mode and the verbatim flag only in
// markdown mode; both are kept regardless of the mode at the time they are set.
type RichText struct {
	PlainText
	markdown bool
	verbatim *bool
}

// NewRichText creates a text object in plain mode, by default 1 to 3000 characters.
func NewRichText(text string, opts ...LengthOption) *RichText {
	return newRichText("text", text, opts...)
}

func newRichText(field, text string, opts ...LengthOption) *RichText {
	return &RichText{PlainText: *newPlainText(field, text, opts...)}
}

// Markdown switches to mrkdwn rendering.
func (t *RichText) Markdown() *RichText {
	t.markdown = true
	return t
}

// Plain switches to plain_text rendering.
func (t *RichText) Plain() *RichText {
	t.markdown = false
	return t
}

// Emoji sets whether emoji shortcodes are rendered in plain mode.
func (t *RichText) Emoji(enabled bool) *RichText {
	t.emoji = &enabled
	return t
}

// Verbatim sets whether Slack skips auto-linking in markdown mode.
func (t *RichText) Verbatim(enabled bool) *RichText {
	t.verbatim = &enabled
	return t
}

// Render implements Renderer.
func (t *RichText) Render() (*Payload, error) {
	if t.err != nil {
		return nil, t.err
	}
	if !t.markdown {
		return t.PlainText.Render()
	}
	p := typed(TypeMarkdown)
	p.Set("text", t.text)
	setBool(p, "verbatim", t.verbatim)
	return p, nil
}
