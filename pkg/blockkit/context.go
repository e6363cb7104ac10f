package blockkit

import "fmt"

// ContextBlock shows up to ten small text and image elements.
type ContextBlock struct {
	blockID
	elements []ContextElement
}

// NewContextBlock creates an empty context block.
func NewContextBlock() *ContextBlock { return &ContextBlock{} }

// ID sets the block identifier.
func (b *ContextBlock) ID(id string) *ContextBlock {
	b.setID(id)
	return b
}

// Text appends a text element and returns it.
func (b *ContextBlock) Text(text string) *RichText {
	t := NewRichText(text)
	b.elements = append(b.elements, t)
	return t
}

// Image appends an image element and returns it. Set its alt text before
// rendering.
func (b *ContextBlock) Image(url string) *ImageElement {
	img := NewImageElement(url)
	b.elements = append(b.elements, img)
	return img
}

// Type implements Block.
func (*ContextBlock) Type() BlockType { return BlockTypeContext }

// Err implements Block.
func (b *ContextBlock) Err() error { return errAll(b.elements) }

// Render implements Renderer.
func (b *ContextBlock) Render() (*Payload, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if len(b.elements) == 0 {
		return nil, missing("context", "there must be at least one element in each context block")
	}
	if len(b.elements) > MaxContextElements {
		return nil, overLimit("context", MaxContextElements,
			fmt.Sprintf("there is a maximum of %d elements in each context block", MaxContextElements))
	}
	elements, err := renderAll(b.elements)
	if err != nil {
		return nil, err
	}
	p := typed(string(BlockTypeContext))
	p.Set("elements", elements)
	b.apply(p)
	return p, nil
}
