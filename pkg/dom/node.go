package dom

// Attributes maps attribute names to raw, not-yet-encoded values.
// Values may be strings, numbers, booleans, or any JSON-encodable
// structure. Two keys are special: "classes" holds a set of class
// names (map[string]struct{}, map[string]bool, or []string) and
// "style" holds either a CSS string or a Style declaration list.
type Attributes map[string]any

// Content is the ordered item list supplied to a node at construction
// or reset time. Each item must be an Element, a string (wrapped in a
// text node), a []Element (spliced in place), or nil (dropped).
type Content []any

// Element is the capability contract shared by every node shape.
//
// ApplyAttributes is invoked exactly once, at construction, before the
// first SetContent call. SetContent may be invoked again at any time
// to replace the node's content wholesale. Serialise is read-only.
type Element interface {
	// Serialise returns the markup for this node. Minified output has
	// no inter-element whitespace; pretty output inserts a newline
	// after open tags and before close tags and indents each child
	// block four spaces relative to its parent.
	Serialise(minify bool) string

	// SetContent replaces the node's content with the given items.
	SetContent(content Content) error

	// ApplyAttributes binds the node's attributes.
	ApplyAttributes(attrs Attributes) error
}

// construct runs the shared construction protocol: attributes first,
// then content. Every constructor goes through here, which is what
// guarantees the apply-before-first-set ordering without a runtime
// state check.
func construct(el Element, attrs Attributes, content Content) error {
	if err := el.ApplyAttributes(attrs); err != nil {
		return err
	}
	return el.SetContent(content)
}
