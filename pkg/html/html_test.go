package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/markdom-dev/markdom/pkg/dom"
)

func TestIsVoidElement(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"img", true},
		{"br", true},
		{"input", true},
		{"meta", true},
		{"div", false},
		{"span", false},
		{"script", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := IsVoidElement(tt.tag); got != tt.want {
				t.Errorf("IsVoidElement(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestCatalogShapes(t *testing.T) {
	div, err := Div(dom.Attributes{"id": "root"}, "hi")
	if err != nil {
		t.Fatalf("Div() error = %v", err)
	}
	if got, want := div.Serialise(true), `<div id="root">hi</div>`; got != want {
		t.Errorf("Div Serialise(true) = %q, want %q", got, want)
	}

	img, err := Img(dom.Attributes{"src": "a.png"})
	if err != nil {
		t.Fatalf("Img() error = %v", err)
	}
	if got, want := img.Serialise(true), `<img src="a.png" />`; got != want {
		t.Errorf("Img Serialise(true) = %q, want %q", got, want)
	}
}

func TestCatalogInheritsAttributeRules(t *testing.T) {
	a, err := A(dom.Attributes{
		"href":    "/home",
		"classes": []string{"nav", "active"},
	}, "Home")
	if err != nil {
		t.Fatalf("A() error = %v", err)
	}
	want := `<a class="active nav" href="/home">Home</a>`
	if got := a.Serialise(true); got != want {
		t.Errorf("Serialise(true) = %q, want %q", got, want)
	}
}

func TestTagDispatch(t *testing.T) {
	el, err := Tag("my-widget", nil, "x")
	if err != nil {
		t.Fatalf("Tag() error = %v", err)
	}
	if _, ok := el.(*dom.Container); !ok {
		t.Errorf("Tag(my-widget) = %T, want *dom.Container", el)
	}

	el, err = Tag("br", nil)
	if err != nil {
		t.Fatalf("Tag() error = %v", err)
	}
	if _, ok := el.(*dom.Void); !ok {
		t.Errorf("Tag(br) = %T, want *dom.Void", el)
	}
}

func TestTagRejectsContentForVoid(t *testing.T) {
	_, err := Tag("br", nil, "x")
	if !errors.Is(err, dom.ErrContentNotAllowed) {
		t.Errorf("Tag() error = %v, want ErrContentNotAllowed", err)
	}
}

func TestDocument(t *testing.T) {
	doc, err := Document(dom.Attributes{"title": "Hello"},
		dom.Must(P(nil, "hi")))
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}

	want := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8" />` +
		`<title>Hello</title></head><body><p>hi</p></body></html>`
	if got := doc.Serialise(true); got != want {
		t.Errorf("Serialise(true) = %q, want %q", got, want)
	}
}

func TestDocumentDefaultsAndOverrides(t *testing.T) {
	doc, err := Document(dom.Attributes{"lang": "de", "charset": "latin1"})
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}

	out := doc.Serialise(true)
	if !strings.Contains(out, `<html lang="de">`) {
		t.Errorf("output missing lang override: %q", out)
	}
	if !strings.Contains(out, `<meta charset="latin1" />`) {
		t.Errorf("output missing charset override: %q", out)
	}
	if strings.Contains(out, "<title>") {
		t.Errorf("output has title without one being set: %q", out)
	}
}

func TestDocumentPretty(t *testing.T) {
	doc, err := Document(nil, dom.Must(P(nil, "hi")))
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}

	want := strings.Join([]string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"    <head>",
		`        <meta charset="utf-8" />`,
		"    </head>",
		"    <body>",
		"        <p>",
		"            hi",
		"        </p>",
		"    </body>",
		"</html>",
	}, "\n")
	if got := doc.Serialise(false); got != want {
		t.Errorf("Serialise(false) = %q, want %q", got, want)
	}
}

func TestCard(t *testing.T) {
	card, err := Card(dom.Attributes{"title": "Totals"}, "42")
	if err != nil {
		t.Fatalf("Card() error = %v", err)
	}

	want := `<div class="card"><div class="card-header">Totals</div>` +
		`<div class="card-body">42</div></div>`
	if got := card.Serialise(true); got != want {
		t.Errorf("Serialise(true) = %q, want %q", got, want)
	}
}

func TestCardWithoutTitleAndExtraClasses(t *testing.T) {
	card, err := Card(dom.Attributes{"classes": []string{"wide"}}, "x")
	if err != nil {
		t.Fatalf("Card() error = %v", err)
	}

	want := `<div class="card wide"><div class="card-body">x</div></div>`
	if got := card.Serialise(true); got != want {
		t.Errorf("Serialise(true) = %q, want %q", got, want)
	}
}

func TestCardReset(t *testing.T) {
	card, err := Card(dom.Attributes{"title": "T"}, "one")
	if err != nil {
		t.Fatalf("Card() error = %v", err)
	}
	if err := card.SetContent(dom.Content{"two"}); err != nil {
		t.Fatalf("SetContent() error = %v", err)
	}

	want := `<div class="card"><div class="card-header">T</div>` +
		`<div class="card-body">two</div></div>`
	if got := card.Serialise(true); got != want {
		t.Errorf("Serialise(true) = %q, want %q", got, want)
	}
}
