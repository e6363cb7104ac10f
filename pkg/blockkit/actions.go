package blockkit

import "fmt"

// ActionsBlock holds up to 25 interactive elements.
type ActionsBlock struct {
	blockID
	elements []Element
}

// NewActionsBlock creates an empty actions block.
func NewActionsBlock() *ActionsBlock { return &ActionsBlock{} }

// ID sets the block identifier.
func (b *ActionsBlock) ID(id string) *ActionsBlock {
	b.setID(id)
	return b
}

// Button appends a button and returns it.
func (b *ActionsBlock) Button(label string) *Button {
	btn := NewButton(label)
	b.elements = append(b.elements, btn)
	return btn
}

// Element appends an element.
func (b *ActionsBlock) Element(e Element) *ActionsBlock {
	b.elements = append(b.elements, e)
	return b
}

// Type implements Block.
func (*ActionsBlock) Type() BlockType { return BlockTypeActions }

// Err implements Block.
func (b *ActionsBlock) Err() error { return errAll(b.elements) }

// Render implements Renderer.
func (b *ActionsBlock) Render() (*Payload, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if len(b.elements) == 0 {
		return nil, missing("actions", "there must be at least one element in each actions block")
	}
	if len(b.elements) > MaxActionsElements {
		return nil, overLimit("actions", MaxActionsElements,
			fmt.Sprintf("there is a maximum of %d elements in each actions block", MaxActionsElements))
	}
	elements, err := renderAll(b.elements)
	if err != nil {
		return nil, err
	}
	p := typed(string(BlockTypeActions))
	p.Set("elements", elements)
	b.apply(p)
	return p, nil
}
