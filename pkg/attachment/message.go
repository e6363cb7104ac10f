package attachment

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Payload is a rendered JSON object. Keys marshal in insertion order.
type Payload = orderedmap.OrderedMap[string, any]

// Level is the severity of a message. It decides the default color of its
// attachments.
type Level string

// Levels.
const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Color returns the attachment color for the level, or "" for info.
func (l Level) Color() string {
	switch l {
	case LevelSuccess:
		return "good"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "danger"
	default:
		return ""
	}
}

// Message is a legacy Slack message with attachments. Both an icon emoji and
// an icon URL may be set.
type Message struct {
	level       Level
	content     string
	channel     string
	username    string
	iconEmoji   string
	iconURL     string
	linkNames   bool
	unfurlLinks *bool
	unfurlMedia *bool
	attachments []*Attachment
}

// New creates an info-level message with the given text.
func New(content string) *Message {
	return &Message{level: LevelInfo, content: content}
}

// Info sets the info level.
func (m *Message) Info() *Message { return m.Level(LevelInfo) }

// Success sets the success level.
func (m *Message) Success() *Message { return m.Level(LevelSuccess) }

// Warning sets the warning level.
func (m *Message) Warning() *Message { return m.Level(LevelWarning) }

// Error sets the error level.
func (m *Message) Error() *Message { return m.Level(LevelError) }

// Level sets the severity level.
func (m *Message) Level(l Level) *Message {
	m.level = l
	return m
}

// Color returns the color attachments inherit, or "" when there is none.
func (m *Message) Color() string { return m.level.Color() }

// Content sets the message text.
func (m *Message) Content(content string) *Message {
	m.content = content
	return m
}

// To sets the destination channel.
func (m *Message) To(channel string) *Message {
	m.channel = channel
	return m
}

// Channel returns the destination channel.
func (m *Message) Channel() string { return m.channel }

// From sets the bot username and, when icon is not empty, its emoji icon.
func (m *Message) From(username, icon string) *Message {
	m.username = username
	if icon != "" {
		m.iconEmoji = icon
	}
	return m
}

// Image sets the bot icon URL.
func (m *Message) Image(url string) *Message {
	m.iconURL = url
	return m
}

// LinkNames links channel names and usernames in the text.
func (m *Message) LinkNames() *Message {
	m.linkNames = true
	return m
}

// UnfurlLinks sets whether text links are unfurled.
func (m *Message) UnfurlLinks(enabled bool) *Message {
	m.unfurlLinks = &enabled
	return m
}

// UnfurlMedia sets whether media links are unfurled.
func (m *Message) UnfurlMedia(enabled bool) *Message {
	m.unfurlMedia = &enabled
	return m
}

// Attachment appends an attachment configured by fn.
func (m *Message) Attachment(fn func(*Attachment)) *Message {
	a := &Attachment{}
	fn(a)
	m.attachments = append(m.attachments, a)
	return m
}

// Attachments returns the attachments in order.
func (m *Message) Attachments() []*Attachment { return m.attachments }

// Render builds the webhook payload. It never fails; the error is there so
// the message can be used wherever a renderer is expected.
func (m *Message) Render() (*Payload, error) {
	p := orderedmap.New[string, any]()
	setString(p, "text", m.content)
	setString(p, "channel", m.channel)
	setString(p, "username", m.username)
	setString(p, "icon_emoji", m.iconEmoji)
	setString(p, "icon_url", m.iconURL)
	if m.linkNames {
		p.Set("link_names", 1)
	}
	if m.unfurlLinks != nil {
		p.Set("unfurl_links", *m.unfurlLinks)
	}
	if m.unfurlMedia != nil {
		p.Set("unfurl_media", *m.unfurlMedia)
	}
	if len(m.attachments) > 0 {
		color := m.Color()
		attachments := make([]any, 0, len(m.attachments))
		for _, a := range m.attachments {
			attachments = append(attachments, a.render(color))
		}
		p.Set("attachments", attachments)
	}
	return p, nil
}

// MarshalJSON renders the message and encodes it.
func (m *Message) MarshalJSON() ([]byte, error) {
	p, _ := m.Render()
	return json.Marshal(p)
}

func setString(p *Payload, key, v string) {
	if v != "" {
		p.Set(key, v)
	}
}
