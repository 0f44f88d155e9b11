package dom

import (
	"errors"
	"testing"
)

func TestIf(t *testing.T) {
	el := Must(NewText("x"))

	if got := If(true, el); got != Element(el) {
		t.Errorf("If(true) = %v, want the element", got)
	}
	if got := If(false, el); got != nil {
		t.Errorf("If(false) = %v, want nil", got)
	}
}

func TestIfElse(t *testing.T) {
	a := Must(NewText("a"))
	b := Must(NewText("b"))

	if got := IfElse(true, a, b); got != Element(a) {
		t.Errorf("IfElse(true) = %v, want first", got)
	}
	if got := IfElse(false, a, b); got != Element(b) {
		t.Errorf("IfElse(false) = %v, want second", got)
	}
}

func TestUnless(t *testing.T) {
	el := Must(NewText("x"))

	if got := Unless(false, el); got != Element(el) {
		t.Errorf("Unless(false) = %v, want the element", got)
	}
	if got := Unless(true, el); got != nil {
		t.Errorf("Unless(true) = %v, want nil", got)
	}
}

func TestWhenIsLazy(t *testing.T) {
	called := false
	fn := func() Element {
		called = true
		return Must(NewText("x"))
	}

	if got := When(false, fn); got != nil {
		t.Errorf("When(false) = %v, want nil", got)
	}
	if called {
		t.Error("When(false) called fn")
	}

	if got := When(true, fn); got == nil {
		t.Error("When(true) = nil, want element")
	}
	if !called {
		t.Error("When(true) did not call fn")
	}
}

func TestEither(t *testing.T) {
	a := Must(NewText("a"))
	b := Must(NewText("b"))

	if got := Either(a, b); got != Element(a) {
		t.Errorf("Either(a, b) = %v, want first", got)
	}
	if got := Either(nil, b); got != Element(b) {
		t.Errorf("Either(nil, b) = %v, want second", got)
	}
}

func TestRange(t *testing.T) {
	items := []string{"a", "b", "c"}
	els := Range(items, func(item string, index int) Element {
		if item == "b" {
			return nil
		}
		return Must(NewContainer("li", nil, item))
	})

	if len(els) != 2 {
		t.Fatalf("Range() returned %d elements, want 2", len(els))
	}

	// The result splices directly into a content list.
	ul := Must(NewContainer("ul", nil, els))
	if got, want := ul.Serialise(true), "<ul><li>a</li><li>c</li></ul>"; got != want {
		t.Errorf("Serialise(true) = %q, want %q", got, want)
	}
}

func TestRepeat(t *testing.T) {
	els := Repeat(3, func(i int) Element {
		return Must(NewContainer("td", nil))
	})
	if len(els) != 3 {
		t.Errorf("Repeat(3) returned %d elements, want 3", len(els))
	}

	if got := Repeat(0, func(i int) Element { return nil }); got != nil {
		t.Errorf("Repeat(0) = %v, want nil", got)
	}
}

func TestMust(t *testing.T) {
	el := Must(NewContainer("div", nil, "hi"))
	if got := el.Serialise(true); got != "<div>hi</div>" {
		t.Errorf("Serialise(true) = %q, want %q", got, "<div>hi</div>")
	}

	defer func() {
		if recover() == nil {
			t.Error("Must did not panic on error")
		}
	}()
	Must(NewText())
}

func TestConditionalChildren(t *testing.T) {
	showDetail := false
	c, err := NewContainer("div", nil,
		"always",
		If(showDetail, Must(NewContainer("p", nil, "detail"))),
	)
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}
	if got := c.Serialise(true); got != "<div>always</div>" {
		t.Errorf("Serialise(true) = %q, want %q", got, "<div>always</div>")
	}
}

func TestCoerceRejectsNonElement(t *testing.T) {
	g, err := NewGroup("a")
	if err != nil {
		t.Fatalf("NewGroup() error = %v", err)
	}
	if err := g.SetContent(Content{3.14}); !errors.Is(err, ErrBadContentItem) {
		t.Errorf("SetContent() error = %v, want ErrBadContentItem", err)
	}
}
