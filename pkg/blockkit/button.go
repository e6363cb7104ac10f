package blockkit

// Button is an interactive button element.
type Button struct {
	label              *PlainText
	actionID           string
	url                *string
	value              *string
	style              *string
	confirm            *ConfirmDialog
	accessibilityLabel *string
	err                error
}

// NewButton creates a button labelled with at most 75 characters. Its action
// ID is derived from the label until ActionID overrides it.
func NewButton(label string) *Button {
	return &Button{
		label:    newPlainText("text", label, MaxLength(75)),
		actionID: ActionID(label),
	}
}

func (b *Button) fail(err error) bool {
	if err == nil {
		return false
	}
	if b.err == nil {
		b.err = err
	}
	return true
}

// Label returns the button's text object.
func (b *Button) Label() *PlainText { return b.label }

// ActionID sets the action identifier (at most 255 characters).
func (b *Button) ActionID(id string) *Button {
	if !b.fail(checkLength("action_id", id, 255)) {
		b.actionID = id
	}
	return b
}

// URL sets a link opened when the button is clicked (at most 3000 characters).
func (b *Button) URL(url string) *Button {
	if !b.fail(checkLength("url", url, 3000)) {
		b.url = &url
	}
	return b
}

// Value sets the payload sent with the interaction (at most 2000 characters).
func (b *Button) Value(value string) *Button {
	if !b.fail(checkLength("value", value, 2000)) {
		b.value = &value
	}
	return b
}

// Primary styles the button as the primary action.
func (b *Button) Primary() *Button {
	b.style = ptr(StylePrimary)
	return b
}

// Danger styles the button as a destructive action.
func (b *Button) Danger() *Button {
	b.style = ptr(StyleDanger)
	return b
}

// Confirm attaches a confirmation dialog and returns it for configuration.
func (b *Button) Confirm(text string) *ConfirmDialog {
	b.confirm = NewConfirmDialog(text)
	return b.confirm
}

// AccessibilityLabel sets the label read by screen readers (at most 75 characters).
func (b *Button) AccessibilityLabel(label string) *Button {
	if !b.fail(checkLength("accessibility_label", label, 75)) {
		b.accessibilityLabel = &label
	}
	return b
}

// Err returns the first error recorded on the button or its sub-objects.
func (b *Button) Err() error {
	err := firstErr(b.err, b.label.Err())
	if err == nil && b.confirm != nil {
		err = b.confirm.Err()
	}
	return err
}

// Render implements Renderer.
func (b *Button) Render() (*Payload, error) {
	if b.err != nil {
		return nil, b.err
	}
	text, err := b.label.Render()
	if err != nil {
		return nil, err
	}
	p := typed(TypeButton)
	p.Set("text", text)
	p.Set("action_id", b.actionID)
	setString(p, "url", b.url)
	setString(p, "value", b.value)
	setString(p, "style", b.style)
	if b.confirm != nil {
		confirm, err := b.confirm.Render()
		if err != nil {
			return nil, err
		}
		p.Set("confirm", confirm)
	}
	setString(p, "accessibility_label", b.accessibilityLabel)
	return p, nil
}
