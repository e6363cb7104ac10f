package blockkit

import "fmt"

// SectionBlock shows text, up to ten fields and an optional accessory.
type SectionBlock struct {
	blockID
	text      *RichText
	fields    []*RichText
	accessory Accessory
}

// NewSectionBlock creates an empty section. It must be given text or at least
// one field before it renders.
func NewSectionBlock() *SectionBlock { return &SectionBlock{} }

// ID sets the block identifier.
func (b *SectionBlock) ID(id string) *SectionBlock {
	b.setID(id)
	return b
}

// Text sets the section text (at most 3000 characters) and returns it.
func (b *SectionBlock) Text(text string) *RichText {
	b.text = newRichText("text", text, MaxLength(3000))
	return b.text
}

// Field appends a field (at most 2000 characters) and returns it.
func (b *SectionBlock) Field(text string) *RichText {
	f := newRichText("fields", text, MaxLength(2000))
	b.fields = append(b.fields, f)
	return f
}

// Accessory attaches an element to the side of the section.
func (b *SectionBlock) Accessory(a Accessory) *SectionBlock {
	b.accessory = a
	return b
}

// Type implements Block.
func (*SectionBlock) Type() BlockType { return BlockTypeSection }

// Err implements Block.
func (b *SectionBlock) Err() error {
	if b.text != nil {
		if err := b.text.Err(); err != nil {
			return err
		}
	}
	if err := errAll(b.fields); err != nil {
		return err
	}
	if b.accessory != nil {
		return b.accessory.Err()
	}
	return nil
}

// Render implements Renderer.
func (b *SectionBlock) Render() (*Payload, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if b.text == nil && len(b.fields) == 0 {
		return nil, missing("section", "a section requires at least the text or fields to be set")
	}
	if len(b.fields) > MaxSectionFields {
		return nil, overLimit("section", MaxSectionFields,
			fmt.Sprintf("there is a maximum of %d fields in each section block", MaxSectionFields))
	}

	p := typed(string(BlockTypeSection))
	if b.text != nil {
		text, err := b.text.Render()
		if err != nil {
			return nil, err
		}
		p.Set("text", text)
	}
	b.apply(p)
	if b.accessory != nil {
		accessory, err := b.accessory.Render()
		if err != nil {
			return nil, err
		}
		p.Set("accessory", accessory)
	}
	if len(b.fields) > 0 {
		fields, err := renderAll(b.fields)
		if err != nil {
			return nil, err
		}
		p.Set("fields", fields)
	}
	return p, nil
}
