package attachment

import (
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Field is a title/value pair shown in an attachment table.
type Field struct {
	title string
	value string
	short bool
}

// NewField creates a short field.
func NewField(title, value string) *Field {
	return &Field{title: title, value: value, short: true}
}

// Title sets the field title.
func (f *Field) Title(title string) *Field {
	f.title = title
	return f
}

// Value sets the field value.
func (f *Field) Value(value string) *Field {
	f.value = value
	return f
}

// Short sets whether the field is shown side by side with others.
func (f *Field) Short(short bool) *Field {
	f.short = short
	return f
}

// Render returns the field payload.
func (f *Field) Render() *Payload {
	p := orderedmap.New[string, any]()
	p.Set("title", f.title)
	p.Set("value", f.value)
	p.Set("short", f.short)
	return p
}

// Attachment is a legacy message attachment.
type Attachment struct {
	title      string
	titleLink  string
	pretext    string
	content    string
	fallback   string
	color      string
	fields     []*Field
	markdownIn []string
	imageURL   string
	thumbURL   string
	actions    []*Payload
	authorName string
	authorLink string
	authorIcon string
	footer     string
	footerIcon string
	ts         *int64
	callbackID string
}

// Title sets the title and, when url is not empty, the link it points to.
func (a *Attachment) Title(title, url string) *Attachment {
	a.title = title
	a.titleLink = url
	return a
}

// Pretext sets text shown above the attachment.
func (a *Attachment) Pretext(pretext string) *Attachment {
	a.pretext = pretext
	return a
}

// Content sets the attachment body.
func (a *Attachment) Content(content string) *Attachment {
	a.content = content
	return a
}

// Fallback sets the plain summary used by clients that cannot show attachments.
func (a *Attachment) Fallback(fallback string) *Attachment {
	a.fallback = fallback
	return a
}

// Color sets the color bar, overriding the message level color.
func (a *Attachment) Color(color string) *Attachment {
	a.color = color
	return a
}

// Field appends a short field.
func (a *Attachment) Field(title, value string) *Attachment {
	a.fields = append(a.fields, NewField(title, value))
	return a
}

// FieldFunc appends a field configured by fn.
func (a *Attachment) FieldFunc(fn func(*Field)) *Attachment {
	f := &Field{short: true}
	fn(f)
	a.fields = append(a.fields, f)
	return a
}

// Fields replaces all fields.
func (a *Attachment) Fields(fields ...*Field) *Attachment {
	a.fields = fields
	return a
}

// Markdown lists the attachment properties whose text is markdown.
func (a *Attachment) Markdown(fields ...string) *Attachment {
	a.markdownIn = fields
	return a
}

// Image sets a large image shown in the attachment.
func (a *Attachment) Image(url string) *Attachment {
	a.imageURL = url
	return a
}

// Thumb sets a thumbnail shown on the side of the attachment.
func (a *Attachment) Thumb(url string) *Attachment {
	a.thumbURL = url
	return a
}

// Action appends a link button. An empty style is left out.
func (a *Attachment) Action(title, url, style string) *Attachment {
	p := orderedmap.New[string, any]()
	p.Set("type", "button")
	p.Set("text", title)
	p.Set("url", url)
	if style != "" {
		p.Set("style", style)
	}
	a.actions = append(a.actions, p)
	return a
}

// Author sets the author line. Empty link or icon are left out.
func (a *Attachment) Author(name, link, icon string) *Attachment {
	a.authorName = name
	a.authorLink = link
	a.authorIcon = icon
	return a
}

// Footer sets the footer text.
func (a *Attachment) Footer(footer string) *Attachment {
	a.footer = footer
	return a
}

// FooterIcon sets the footer icon.
func (a *Attachment) FooterIcon(url string) *Attachment {
	a.footerIcon = url
	return a
}

// Timestamp sets the time shown in the footer.
func (a *Attachment) Timestamp(t time.Time) *Attachment {
	ts := t.Unix()
	a.ts = &ts
	return a
}

// CallbackID sets the identifier sent back with interactions.
func (a *Attachment) CallbackID(id string) *Attachment {
	a.callbackID = id
	return a
}

func (a *Attachment) render(messageColor string) *Payload {
	p := orderedmap.New[string, any]()
	setString(p, "title", a.title)
	setString(p, "title_link", a.titleLink)
	setString(p, "pretext", a.pretext)
	setString(p, "text", a.content)
	setString(p, "fallback", a.fallback)
	if a.color != "" {
		p.Set("color", a.color)
	} else {
		setString(p, "color", messageColor)
	}
	if len(a.fields) > 0 {
		fields := make([]any, 0, len(a.fields))
		for _, f := range a.fields {
			fields = append(fields, f.Render())
		}
		p.Set("fields", fields)
	}
	if len(a.markdownIn) > 0 {
		p.Set("mrkdwn_in", a.markdownIn)
	}
	setString(p, "image_url", a.imageURL)
	setString(p, "thumb_url", a.thumbURL)
	if len(a.actions) > 0 {
		p.Set("actions", a.actions)
	}
	setString(p, "author_name", a.authorName)
	setString(p, "author_link", a.authorLink)
	setString(p, "author_icon", a.authorIcon)
	setString(p, "footer", a.footer)
	setString(p, "footer_icon", a.footerIcon)
	if a.ts != nil {
		p.Set("ts", *a.ts)
	}
	setString(p, "callback_id", a.callbackID)
	return p
}
