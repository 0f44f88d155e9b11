package dom

import (
	"fmt"
	"strings"
)

// TextElement holds a single verbatim string. Text is not escaped on
// output; callers escape raw content themselves where needed.
type TextElement struct {
	content string
}

// NewText creates a text node from exactly one string item.
func NewText(content ...any) (*TextElement, error) {
	t := &TextElement{}
	if err := construct(t, nil, content); err != nil {
		return nil, err
	}
	return t, nil
}

// Serialise returns the text verbatim in both modes.
func (t *TextElement) Serialise(minify bool) string { return t.content }

// SetContent requires exactly one string item.
func (t *TextElement) SetContent(content Content) error {
	if len(content) != 1 {
		return fmt.Errorf("text: got %d items: %w", len(content), ErrContentArity)
	}
	s, ok := content[0].(string)
	if !ok {
		return fmt.Errorf("text: got %T: %w", content[0], ErrContentArity)
	}
	t.content = s
	return nil
}

// ApplyAttributes rejects any attributes; text carries none.
func (t *TextElement) ApplyAttributes(attrs Attributes) error {
	if len(attrs) > 0 {
		return fmt.Errorf("text: %w", ErrAttributesNotAllowed)
	}
	return nil
}

func (t *TextElement) String() string { return t.Serialise(false) }

// Container is an element with a tag, a normalised attribute mapping,
// and an ordered list of owned children, serialised with open and
// close tags.
type Container struct {
	tag        string
	attributes map[string]string
	children   []Element
}

// NewContainer creates a container element with the given tag.
// Attributes are normalised once, up front; content may be replaced
// later with SetContent.
func NewContainer(tag string, attrs Attributes, content ...any) (*Container, error) {
	c := &Container{tag: tag}
	if err := construct(c, attrs, content); err != nil {
		return nil, err
	}
	return c, nil
}

// Serialise renders the open tag, the child block, and the close tag.
// In pretty mode the child block sits on its own lines, indented one
// level; in minified mode everything is concatenated directly.
func (c *Container) Serialise(minify bool) string {
	sep := "\n"
	if minify {
		sep = ""
	}
	block := serialiseChildren(c.children, minify)
	if !minify {
		block = indentBlock(block)
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(c.tag)
	writeAttributes(&b, c.attributes)
	b.WriteByte('>')
	b.WriteString(sep)
	b.WriteString(block)
	b.WriteString(sep)
	b.WriteString("</")
	b.WriteString(c.tag)
	b.WriteByte('>')
	return b.String()
}

// SetContent replaces the container's children wholesale.
func (c *Container) SetContent(content Content) error {
	children, err := coerce(content)
	if err != nil {
		return fmt.Errorf("<%s>: %w", c.tag, err)
	}
	c.children = children
	return nil
}

// ApplyAttributes normalises and binds the attribute mapping.
func (c *Container) ApplyAttributes(attrs Attributes) error {
	normalised, err := Transform(attrs)
	if err != nil {
		return fmt.Errorf("<%s>: %w", c.tag, err)
	}
	c.attributes = normalised
	return nil
}

func (c *Container) String() string { return c.Serialise(false) }

// Void is a self-closing element with a tag and attributes but no
// children, such as <img /> or <br />.
type Void struct {
	tag        string
	attributes map[string]string
}

// NewVoid creates a void element with the given tag.
func NewVoid(tag string, attrs Attributes) (*Void, error) {
	v := &Void{tag: tag}
	if err := construct(v, attrs, nil); err != nil {
		return nil, err
	}
	return v, nil
}

// Serialise is identical in both modes; a void element has no child
// block to indent.
func (v *Void) Serialise(minify bool) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(v.tag)
	writeAttributes(&b, v.attributes)
	b.WriteString(" />")
	return b.String()
}

// SetContent rejects any content.
func (v *Void) SetContent(content Content) error {
	if len(content) > 0 {
		return fmt.Errorf("<%s />: %w", v.tag, ErrContentNotAllowed)
	}
	return nil
}

// ApplyAttributes normalises and binds the attribute mapping.
func (v *Void) ApplyAttributes(attrs Attributes) error {
	normalised, err := Transform(attrs)
	if err != nil {
		return fmt.Errorf("<%s />: %w", v.tag, err)
	}
	v.attributes = normalised
	return nil
}

func (v *Void) String() string { return v.Serialise(false) }

// Group bundles sibling elements without a wrapping tag. Useful for
// components that produce several top-level elements.
type Group struct {
	children []Element
}

// NewGroup creates a tag-less group of the given content items.
func NewGroup(content ...any) (*Group, error) {
	g := &Group{}
	if err := construct(g, nil, content); err != nil {
		return nil, err
	}
	return g, nil
}

// Serialise joins the children directly when minified and with
// newlines otherwise; a group adds no indentation of its own.
func (g *Group) Serialise(minify bool) string {
	return serialiseChildren(g.children, minify)
}

// SetContent replaces the group's children wholesale.
func (g *Group) SetContent(content Content) error {
	children, err := coerce(content)
	if err != nil {
		return fmt.Errorf("group: %w", err)
	}
	g.children = children
	return nil
}

// ApplyAttributes rejects any attributes; a group has no tag to carry
// them.
func (g *Group) ApplyAttributes(attrs Attributes) error {
	if len(attrs) > 0 {
		return fmt.Errorf("group: %w", ErrAttributesNotAllowed)
	}
	return nil
}

func (g *Group) String() string { return g.Serialise(false) }
