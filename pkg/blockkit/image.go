package blockkit

// ImageElement is a decorative image placed in a context block or as a
// section accessory. Its alt text is required when rendering.
type ImageElement struct {
	url string
	alt *string
}

// NewImageElement creates an image element without alt text.
func NewImageElement(url string) *ImageElement {
	return &ImageElement{url: url}
}

// Alt sets the alt text.
func (i *ImageElement) Alt(text string) *ImageElement {
	i.alt = &text
	return i
}

// Err always returns nil: an image element has no eager constraints.
func (i *ImageElement) Err() error { return nil }

// Render implements Renderer.
func (i *ImageElement) Render() (*Payload, error) {
	if i.alt == nil {
		return nil, missing("image", "alt text is required for an image element")
	}
	p := typed(TypeImage)
	p.Set("image_url", i.url)
	p.Set("alt_text", *i.alt)
	return p, nil
}
