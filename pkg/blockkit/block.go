package blockkit

// BlockType identifies a layout block.
type BlockType string

// Block types.
const (
	BlockTypeActions BlockType = "actions"
	BlockTypeContext BlockType = "context"
	BlockTypeDivider BlockType = "divider"
	BlockTypeHeader  BlockType = "header"
	BlockTypeImage   BlockType = "image"
	BlockTypeSection BlockType = "section"
)

// Block limits.
const (
	MaxBlockIDLength   = 255
	MaxSectionFields   = 10
	MaxActionsElements = 25
	MaxContextElements = 10
)

// Block is a top-level layout unit of a message.
type Block interface {
	Renderer
	// Type returns the block type.
	Type() BlockType
	// Err returns the first error recorded by a setter of the block or its
	// children. Structural rules are only checked by Render.
	Err() error
}

var (
	_ Block = (*ActionsBlock)(nil)
	_ Block = (*ContextBlock)(nil)
	_ Block = (*DividerBlock)(nil)
	_ Block = (*HeaderBlock)(nil)
	_ Block = (*ImageBlock)(nil)
	_ Block = (*SectionBlock)(nil)
)

// blockID is the optional identifier shared by all blocks. Its length is
// checked when the block is rendered.
type blockID struct {
	id *string
}

func (b *blockID) setID(id string) { b.id = &id }

func (b *blockID) validate() error {
	if b.id == nil {
		return nil
	}
	return checkLength("block_id", *b.id, MaxBlockIDLength)
}

func (b *blockID) apply(p *Payload) {
	setString(p, "block_id", b.id)
}

// renderAll renders each item in order.
func renderAll[T Renderer](items []T) ([]any, error) {
	out := make([]any, 0, len(items))
	for _, item := range items {
		p, err := item.Render()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func errAll[T interface{ Err() error }](items []T) error {
	for _, item := range items {
		if err := item.Err(); err != nil {
			return err
		}
	}
	return nil
}

// DividerBlock is a horizontal rule.
type DividerBlock struct {
	blockID
}

// NewDividerBlock creates a divider.
func NewDividerBlock() *DividerBlock { return &DividerBlock{} }

// ID sets the block identifier.
func (b *DividerBlock) ID(id string) *DividerBlock {
	b.setID(id)
	return b
}

// Type implements Block.
func (*DividerBlock) Type() BlockType { return BlockTypeDivider }

// Err implements Block.
func (*DividerBlock) Err() error { return nil }

// Render implements Renderer.
func (b *DividerBlock) Render() (*Payload, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	p := typed(string(BlockTypeDivider))
	b.apply(p)
	return p, nil
}

// HeaderBlock shows a line of large bold plain text.
type HeaderBlock struct {
	blockID
	text *PlainText
}

// NewHeaderBlock creates a header with at most 150 characters of text.
func NewHeaderBlock(text string) *HeaderBlock {
	return &HeaderBlock{text: newPlainText("text", text, MaxLength(150))}
}

// ID sets the block identifier.
func (b *HeaderBlock) ID(id string) *HeaderBlock {
	b.setID(id)
	return b
}

// Text returns the header's text object.
func (b *HeaderBlock) Text() *PlainText { return b.text }

// Type implements Block.
func (*HeaderBlock) Type() BlockType { return BlockTypeHeader }

// Err implements Block.
func (b *HeaderBlock) Err() error { return b.text.Err() }

// Render implements Renderer.
func (b *HeaderBlock) Render() (*Payload, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	text, err := b.text.Render()
	if err != nil {
		return nil, err
	}
	p := typed(string(BlockTypeHeader))
	p.Set("text", text)
	b.apply(p)
	return p, nil
}
