package blockkit

// Confirm dialog defaults.
const (
	DefaultConfirmTitle = "Are you sure?"
	DefaultConfirmText  = "Please confirm this action."
	DefaultConfirmLabel = "Yes"
	DefaultDenyLabel    = "No"
)

// ConfirmDialog asks the user to confirm an interactive action.
// It starts out valid: every text field is pre-filled.
type ConfirmDialog struct {
	title   *PlainText
	text    *RichText
	confirm *PlainText
	deny    *PlainText
	danger  bool
}

// NewConfirmDialog creates a dialog with the given body text, or the default
// body when text is empty.
func NewConfirmDialog(text string) *ConfirmDialog {
	if text == "" {
		text = DefaultConfirmText
	}
	d := &ConfirmDialog{}
	d.Title(DefaultConfirmTitle)
	d.Text(text)
	d.Confirm(DefaultConfirmLabel)
	d.Deny(DefaultDenyLabel)
	return d
}

// Title replaces the dialog title (at most 100 characters).
func (d *ConfirmDialog) Title(title string) *PlainText {
	d.title = newPlainText("title", title, MaxLength(100))
	return d.title
}

// Text replaces the dialog body (at most 300 characters).
func (d *ConfirmDialog) Text(text string) *RichText {
	d.text = newRichText("text", text, MaxLength(300))
	return d.text
}

// Confirm replaces the confirm button label (at most 30 characters).
func (d *ConfirmDialog) Confirm(label string) *PlainText {
	d.confirm = newPlainText("confirm", label, MaxLength(30))
	return d.confirm
}

// Deny replaces the deny button label (at most 30 characters).
func (d *ConfirmDialog) Deny(label string) *PlainText {
	d.deny = newPlainText("deny", label, MaxLength(30))
	return d.deny
}

// Danger styles the confirm button as destructive.
func (d *ConfirmDialog) Danger() *ConfirmDialog {
	d.danger = true
	return d
}

// Err returns the first length error among the dialog's texts.
func (d *ConfirmDialog) Err() error {
	return firstErr(d.title.Err(), d.text.Err(), d.confirm.Err(), d.deny.Err())
}

// Render implements Renderer.
func (d *ConfirmDialog) Render() (*Payload, error) {
	p := NewPayload()
	for _, part := range []struct {
		key string
		r   Renderer
	}{
		{"title", d.title},
		{"text", d.text},
		{"confirm", d.confirm},
		{"deny", d.deny},
	} {
		v, err := part.r.Render()
		if err != nil {
			return nil, err
		}
		p.Set(part.key, v)
	}
	if d.danger {
		p.Set("style", StyleDanger)
	}
	return p, nil
}
