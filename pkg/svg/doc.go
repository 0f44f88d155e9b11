// Package svg provides the declarative SVG tag catalog on top of the
// dom package.
//
// Every factory is a Container: SVG defines no void elements, and any
// SVG element may carry children such as <title> or <animate>, so
// childless shapes serialise as <circle></circle> rather than
// self-closing. Attribute encoding is inherited from the dom package;
// the colour/color aliasing applies to SVG names like stop-colour as
// well.
package svg
