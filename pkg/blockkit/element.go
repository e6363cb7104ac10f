package blockkit

// Element types.
const (
	TypeButton       = "button"
	TypeImage        = "image"
	TypeStaticSelect = "static_select"
)

// Button and confirm styles.
const (
	StylePrimary = "primary"
	StyleDanger  = "danger"
)

// Element is an interactive component placed in an actions block.
type Element interface {
	Renderer
	Err() error
	element()
}

// Accessory is a component attached to the side of a section block.
type Accessory interface {
	Renderer
	Err() error
	accessory()
}

// ContextElement is a component placed in a context block.
type ContextElement interface {
	Renderer
	Err() error
	contextElement()
}

var (
	_ Element        = (*Button)(nil)
	_ Element        = (*ImageElement)(nil)
	_ Element        = (*StaticSelect)(nil)
	_ Accessory      = (*Button)(nil)
	_ Accessory      = (*ImageElement)(nil)
	_ Accessory      = (*StaticSelect)(nil)
	_ ContextElement = (*ImageElement)(nil)
	_ ContextElement = (*RichText)(nil)
)

func (*Button) element()   {}
func (*Button) accessory() {}

func (*ImageElement) element()        {}
func (*ImageElement) accessory()      {}
func (*ImageElement) contextElement() {}

func (*StaticSelect) element()   {}
func (*StaticSelect) accessory() {}

func (*RichText) contextElement() {}
