package blockkit

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultStaticSelectActionID is the action ID of a static select until
// ActionID overrides it.
const DefaultStaticSelectActionID = "static_select_element"

// selectBase holds the fields shared by every select menu.
type selectBase struct {
	actionID    string
	placeholder *PlainText
	focus       *bool
	err         error
}

func (s *selectBase) fail(err error) bool {
	if err == nil {
		return false
	}
	if s.err == nil {
		s.err = err
	}
	return true
}

func (s *selectBase) render(p *Payload) error {
	p.Set("action_id", s.actionID)
	if s.placeholder != nil {
		placeholder, err := s.placeholder.Render()
		if err != nil {
			return err
		}
		p.Set("placeholder", placeholder)
	}
	setBool(p, "focus_on_load", s.focus)
	return nil
}

func (s *selectBase) baseErr() error {
	if s.placeholder != nil {
		return firstErr(s.err, s.placeholder.Err())
	}
	return s.err
}

// SelectOption is one entry of a select menu. Its value is slugged.
type SelectOption struct {
	text  *RichText
	value string
}

// NewSelectOption creates an option with a label of at most 75 characters.
func NewSelectOption(label, value string) *SelectOption {
	return &SelectOption{
		text:  newRichText("text", label, MaxLength(75)),
		value: Slug(value),
	}
}

// Text returns the option label.
func (o *SelectOption) Text() *RichText { return o.text }

// Value returns the slugged value.
func (o *SelectOption) Value() string { return o.value }

// Render implements Renderer.
func (o *SelectOption) Render() (*Payload, error) {
	text, err := o.text.Render()
	if err != nil {
		return nil, err
	}
	p := NewPayload()
	p.Set("text", text)
	p.Set("value", o.value)
	return p, nil
}

// StaticSelect is a select menu with a fixed list of options.
//
// Options are keyed by the value passed to AddOption, before slugging. Adding
// the same value again replaces the option in place. Two different values that
// slug to the same string are kept as two options.
type StaticSelect struct {
	selectBase
	options *orderedmap.OrderedMap[string, *SelectOption]
	initial *SelectOption
}

// NewStaticSelect creates an empty static select.
func NewStaticSelect() *StaticSelect {
	return &StaticSelect{
		selectBase: selectBase{actionID: DefaultStaticSelectActionID},
		options:    orderedmap.New[string, *SelectOption](),
	}
}

// ActionID sets the action identifier (at most 255 characters).
func (s *StaticSelect) ActionID(id string) *StaticSelect {
	if !s.fail(checkLength("action_id", id, 255)) {
		s.actionID = id
	}
	return s
}

// Placeholder sets the text shown when nothing is selected.
func (s *StaticSelect) Placeholder(text string) *StaticSelect {
	s.placeholder = newPlainText("placeholder", text)
	return s
}

// Focus sets whether the menu is focused when the view loads.
func (s *StaticSelect) Focus(focus bool) *StaticSelect {
	s.focus = &focus
	return s
}

// AddOption inserts an option, or replaces the option added with the same value.
func (s *StaticSelect) AddOption(label, value string) *StaticSelect {
	s.options.Set(value, NewSelectOption(label, value))
	return s
}

// InitialOption preselects the option added with value. The option must
// already exist.
func (s *StaticSelect) InitialOption(value string) *StaticSelect {
	opt, ok := s.options.Get(value)
	if !ok {
		s.fail(&ValidationError{Field: "initial_option", Constraint: ConstraintReference, Value: value})
		return s
	}
	s.initial = opt
	return s
}

// Len returns the number of options.
func (s *StaticSelect) Len() int { return s.options.Len() }

// Err returns the first error recorded on the select or its options.
func (s *StaticSelect) Err() error {
	if err := s.baseErr(); err != nil {
		return err
	}
	for pair := s.options.Oldest(); pair != nil; pair = pair.Next() {
		if err := pair.Value.text.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Render implements Renderer.
func (s *StaticSelect) Render() (*Payload, error) {
	if s.err != nil {
		return nil, s.err
	}
	options := make([]any, 0, s.options.Len())
	for pair := s.options.Oldest(); pair != nil; pair = pair.Next() {
		opt, err := pair.Value.Render()
		if err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	p := typed(TypeStaticSelect)
	p.Set("options", options)
	if s.initial != nil {
		initial, err := s.initial.Render()
		if err != nil {
			return nil, err
		}
		p.Set("initial_option", initial)
	}
	if err := s.render(p); err != nil {
		return nil, err
	}
	return p, nil
}
