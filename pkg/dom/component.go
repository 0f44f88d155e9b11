package dom

// ComposeFunc builds a component's composition root from the
// attributes captured at construction and the current content items.
type ComposeFunc func(attrs Attributes, content Content) (Element, error)

// Component satisfies Element by delegating all markup to a single
// internally constructed root. The component itself contributes no tag
// and renders no attributes, so higher-level pieces compose
// transparently with containers and groups.
type Component struct {
	compose ComposeFunc
	attrs   Attributes
	root    Element
}

// NewComponent creates a component whose root is built by compose.
// compose runs once now and again on every content reset, each time
// with the attributes supplied here.
func NewComponent(compose ComposeFunc, attrs Attributes, content ...any) (*Component, error) {
	c := &Component{compose: compose}
	if err := construct(c, attrs, content); err != nil {
		return nil, err
	}
	return c, nil
}

// Serialise delegates entirely to the composition root.
func (c *Component) Serialise(minify bool) string {
	return c.root.Serialise(minify)
}

// SetContent rebuilds the composition root from the stored attributes
// and the new content.
func (c *Component) SetContent(content Content) error {
	root, err := c.compose(c.attrs, content)
	if err != nil {
		return err
	}
	if root == nil {
		root = &Group{}
	}
	c.root = root
	return nil
}

// ApplyAttributes captures the raw attributes for compose. They are
// interpreted by the compose function, not rendered by the component.
func (c *Component) ApplyAttributes(attrs Attributes) error {
	c.attrs = attrs
	return nil
}

func (c *Component) String() string { return c.Serialise(false) }
