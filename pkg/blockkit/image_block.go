package blockkit

// ImageBlock shows a standalone image. The URL and alt text lengths are
// checked when set; the alt text itself is only required when rendering.
type ImageBlock struct {
	blockID
	url   string
	alt   *string
	title *PlainText
	err   error
}

// NewImageBlock creates an image block for a URL of at most 3000 characters.
func NewImageBlock(url string) *ImageBlock {
	b := &ImageBlock{url: url}
	b.err = checkLength("image_url", url, 3000)
	return b
}

// ID sets the block identifier.
func (b *ImageBlock) ID(id string) *ImageBlock {
	b.setID(id)
	return b
}

// Alt sets the alt text (at most 2000 characters).
func (b *ImageBlock) Alt(text string) *ImageBlock {
	if err := checkLength("alt_text", text, 2000); err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	b.alt = &text
	return b
}

// Title sets a title shown above the image (at most 2000 characters) and returns it.
func (b *ImageBlock) Title(title string) *PlainText {
	b.title = newPlainText("title", title, MaxLength(2000))
	return b.title
}

// Type implements Block.
func (*ImageBlock) Type() BlockType { return BlockTypeImage }

// Err implements Block.
func (b *ImageBlock) Err() error {
	if b.err == nil && b.title != nil {
		return b.title.Err()
	}
	return b.err
}

// Render implements Renderer.
func (b *ImageBlock) Render() (*Payload, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	if b.alt == nil {
		return nil, missing("image", "alt text is required for an image block")
	}
	p := typed(string(BlockTypeImage))
	p.Set("image_url", b.url)
	p.Set("alt_text", *b.alt)
	b.apply(p)
	if b.title != nil {
		title, err := b.title.Render()
		if err != nil {
			return nil, err
		}
		p.Set("title", title)
	}
	return p, nil
}
