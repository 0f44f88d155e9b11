package svg

import (
	"testing"

	"github.com/markdom-dev/markdom/pkg/dom"
)

func TestShapesAreContainers(t *testing.T) {
	circle, err := Circle(dom.Attributes{"r": 5})
	if err != nil {
		t.Fatalf("Circle() error = %v", err)
	}

	// No void elements in SVG; childless shapes still open and close.
	if got, want := circle.Serialise(true), `<circle r="5"></circle>`; got != want {
		t.Errorf("Serialise(true) = %q, want %q", got, want)
	}
}

func TestNestedDrawing(t *testing.T) {
	drawing, err := Svg(dom.Attributes{
		"xmlns":   "http://www.w3.org/2000/svg",
		"viewBox": "0 0 10 10",
	},
		dom.Must(G(dom.Attributes{"fill_colour": "red"},
			dom.Must(Rect(dom.Attributes{"width": 4, "height": 4})),
			dom.Must(Circle(dom.Attributes{"r": 3})),
		)),
	)
	if err != nil {
		t.Fatalf("Svg() error = %v", err)
	}

	want := `<svg viewBox="0 0 10 10" xmlns="http://www.w3.org/2000/svg">` +
		`<g fill-color="red">` +
		`<rect height="4" width="4"></rect>` +
		`<circle r="3"></circle>` +
		`</g></svg>`
	if got := drawing.Serialise(true); got != want {
		t.Errorf("Serialise(true) = %q, want %q", got, want)
	}
}

func TestTextContent(t *testing.T) {
	label, err := Text(dom.Attributes{"x": 1, "y": 2}, "hi")
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}

	if got, want := label.Serialise(true), `<text x="1" y="2">hi</text>`; got != want {
		t.Errorf("Serialise(true) = %q, want %q", got, want)
	}
}

func TestGradientOrder(t *testing.T) {
	grad, err := LinearGradient(dom.Attributes{"id": "g"},
		dom.Must(Stop(dom.Attributes{"offset": "0%", "stop_colour": "red"})),
		dom.Must(Stop(dom.Attributes{"offset": "100%", "stop_colour": "blue"})),
	)
	if err != nil {
		t.Fatalf("LinearGradient() error = %v", err)
	}

	want := `<linearGradient id="g">` +
		`<stop offset="0%" stop-color="red"></stop>` +
		`<stop offset="100%" stop-color="blue"></stop>` +
		`</linearGradient>`
	if got := grad.Serialise(true); got != want {
		t.Errorf("Serialise(true) = %q, want %q", got, want)
	}
}
