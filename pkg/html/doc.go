// Package html provides the declarative HTML tag catalog on top of the
// dom package.
//
// Every factory picks exactly one base shape and a fixed tag string;
// all markup behaviour (attribute encoding, content coercion,
// serialisation) is inherited from the shape. Container tags take an
// attribute mapping plus content items, void tags take attributes
// only:
//
//	page := dom.Must(html.Div(dom.Attributes{"id": "root"},
//	    dom.Must(html.H1(nil, "Hello")),
//	    dom.Must(html.Img(dom.Attributes{"src": "a.png"})),
//	))
//
// Tag constructs an element with a custom tag name, dispatching on the
// HTML void-element list. Reusable fragments built on dom.Component
// (Document, Card) live in components.go.
package html
