package blockkit

import (
	"encoding/json"
	"fmt"
)

// MaxMessageBlocks is the maximum number of blocks in a message.
const MaxMessageBlocks = 50

// Message is a Block Kit message. Blocks are rendered in the order they were
// added; typed blocks and blocks taken from a template may be mixed.
//
// A Message is not safe for concurrent use.
type Message struct {
	channel        *string
	text           *string
	blocks         []entry
	iconEmoji      *string
	iconURL        *string
	metadata       *EventMetadata
	mrkdwn         *bool
	threadTS       *string
	replyBroadcast *bool
	unfurlLinks    *bool
	unfurlMedia    *bool
	username       *string
}

// NewMessage creates an empty message.
func NewMessage() *Message { return &Message{} }

// To sets the destination channel.
func (m *Message) To(channel string) *Message {
	m.channel = &channel
	return m
}

// Channel returns the destination channel, or "" when unset.
func (m *Message) Channel() string {
	if m.channel == nil {
		return ""
	}
	return *m.channel
}

// Text sets the fallback text shown in notifications.
func (m *Message) Text(text string) *Message {
	m.text = &text
	return m
}

// AddBlock appends a block.
func (m *Message) AddBlock(b Block) *Message {
	m.blocks = append(m.blocks, entry{block: b})
	return m
}

// ActionsBlock appends an actions block configured by fn.
func (m *Message) ActionsBlock(fn func(*ActionsBlock)) *Message {
	b := NewActionsBlock()
	fn(b)
	return m.AddBlock(b)
}

// ContextBlock appends a context block configured by fn.
func (m *Message) ContextBlock(fn func(*ContextBlock)) *Message {
	b := NewContextBlock()
	fn(b)
	return m.AddBlock(b)
}

// DividerBlock appends a divider.
func (m *Message) DividerBlock() *Message {
	return m.AddBlock(NewDividerBlock())
}

// HeaderBlock appends a header, optionally configured by fn.
func (m *Message) HeaderBlock(text string, fn ...func(*HeaderBlock)) *Message {
	b := NewHeaderBlock(text)
	for _, f := range fn {
		f(b)
	}
	return m.AddBlock(b)
}

// ImageBlock appends an image block, optionally configured by fn.
func (m *Message) ImageBlock(url string, fn ...func(*ImageBlock)) *Message {
	b := NewImageBlock(url)
	for _, f := range fn {
		f(b)
	}
	return m.AddBlock(b)
}

// SectionBlock appends a section configured by fn.
func (m *Message) SectionBlock(fn func(*SectionBlock)) *Message {
	b := NewSectionBlock()
	fn(b)
	return m.AddBlock(b)
}

// UsingTemplate appends the blocks of a JSON document shaped like
// {"blocks": [...]}. The blocks are sent as-is. It returns a *ParseError for
// malformed JSON and a *LogicError when the blocks key is missing; the message
// is left unchanged on error.
func (m *Message) UsingTemplate(template []byte) error {
	entries, err := parseTemplate(template)
	if err != nil {
		return err
	}
	m.blocks = append(m.blocks, entries...)
	return nil
}

// IconEmoji sets the bot icon to an emoji code and clears any icon URL.
func (m *Message) IconEmoji(emoji string) *Message {
	m.iconURL = nil
	m.iconEmoji = &emoji
	return m
}

// IconURL sets the bot icon to an image and clears any icon emoji.
func (m *Message) IconURL(url string) *Message {
	m.iconEmoji = nil
	m.iconURL = &url
	return m
}

// Metadata attaches event metadata.
func (m *Message) Metadata(eventType string, payload map[string]any) *Message {
	m.metadata = NewEventMetadata(eventType, payload)
	return m
}

// DisableMarkdown turns off markdown parsing of the fallback text.
func (m *Message) DisableMarkdown() *Message {
	m.mrkdwn = ptr(false)
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

// Username sets the bot username.
func (m *Message) Username(username string) *Message {
	m.username = &username
	return m
}

// ThreadTimestamp posts the message as a reply in the thread of ts.
// An empty ts clears it.
func (m *Message) ThreadTimestamp(ts string) *Message {
	if ts == "" {
		m.threadTS = nil
		return m
	}
	m.threadTS = &ts
	return m
}

// BroadcastReply sets whether a thread reply is also posted to the channel.
func (m *Message) BroadcastReply(enabled bool) *Message {
	m.replyBroadcast = &enabled
	return m
}

// Len returns the number of blocks.
func (m *Message) Len() int { return len(m.blocks) }

// Err returns the first error recorded by a setter of any typed block.
func (m *Message) Err() error {
	for _, e := range m.blocks {
		if e.block == nil {
			continue
		}
		if err := e.block.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Render implements Renderer.
func (m *Message) Render() (*Payload, error) {
	if len(m.blocks) == 0 && m.text == nil {
		return nil, missing("message", "messages must contain at least a text message or block")
	}
	if len(m.blocks) > MaxMessageBlocks {
		return nil, overLimit("message", MaxMessageBlocks,
			fmt.Sprintf("messages can only contain up to %d blocks", MaxMessageBlocks))
	}

	p := NewPayload()
	setString(p, "channel", m.channel)
	setString(p, "text", m.text)
	if len(m.blocks) > 0 {
		blocks := make([]any, 0, len(m.blocks))
		for i, e := range m.blocks {
			b, err := e.render()
			if err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}
			blocks = append(blocks, b)
		}
		p.Set("blocks", blocks)
	}
	setString(p, "icon_emoji", m.iconEmoji)
	setString(p, "icon_url", m.iconURL)
	if m.metadata != nil {
		metadata, err := m.metadata.Render()
		if err != nil {
			return nil, err
		}
		p.Set("metadata", metadata)
	}
	setBool(p, "mrkdwn", m.mrkdwn)
	setString(p, "thread_ts", m.threadTS)
	setBool(p, "reply_broadcast", m.replyBroadcast)
	setBool(p, "unfurl_links", m.unfurlLinks)
	setBool(p, "unfurl_media", m.unfurlMedia)
	setString(p, "username", m.username)
	return p, nil
}

// MarshalJSON renders the message and encodes it.
func (m *Message) MarshalJSON() ([]byte, error) {
	p, err := m.Render()
	if err != nil {
		return nil, err
	}
	return json.Marshal(p)
}
