// Package dom provides the core markup tree: node shapes, the
// attribute transform, content coercion, and the serialiser.
//
// A document is built strictly top-down from five node shapes —
// TextElement, Container, Void, Group, and Component — all satisfying
// the Element contract. Attributes are bound exactly once at
// construction; content may be replaced wholesale at any time with
// SetContent; Serialise is read-only and may run any number of times.
//
// # Building trees
//
// Constructors return an error when a shape's contract is violated
// (text that is not a single string, content on a void element,
// attributes on a text node or group). For known-good trees, Must
// keeps construction declarative:
//
//	page := dom.Must(dom.NewContainer("div",
//	    dom.Attributes{"classes": []string{"card"}},
//	    dom.Must(dom.NewContainer("p", nil, "hello")),
//	))
//	fmt.Println(page.Serialise(true)) // <div class="card"><p>hello</p></div>
//
// Tag catalogs live in the html and svg packages; this package knows
// nothing about concrete tags.
//
// # Attributes
//
// Attribute mappings accept arbitrary JSON-encodable values. Two keys
// are special: "classes" holds a set of class names and collapses into
// the class attribute, and "style" holds either a CSS string or an
// ordered Style declaration list. Underscores in names become hyphens
// (double underscore for a literal underscore, single trailing
// underscore dropped), and "colour" may be used for "color" outside
// data-* names. See Transform for the full rules.
//
// # Output modes
//
// Serialise(true) produces minified markup with no inter-element
// whitespace. Serialise(false) pretty-prints: a newline after each
// open tag and before each close tag, children indented four spaces
// per level. Text content is emitted verbatim in both modes; callers
// escape raw text themselves.
//
// # Concurrency
//
// Nodes are exclusively owned by their parent and assume a single
// non-concurrent mutator. Serialise does not mutate the tree, but the
// package adds no synchronisation of its own.
package dom
