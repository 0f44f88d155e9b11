package html

import (
	"fmt"

	"github.com/markdom-dev/markdom/pkg/dom"
)

// voidElements are the tags that cannot have children and serialise
// self-closing.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Tag creates an element with a custom tag name, choosing the void or
// container shape from the void-element list. Content supplied for a
// void tag is a construction error.
func Tag(tag string, attrs dom.Attributes, content ...any) (dom.Element, error) {
	if IsVoidElement(tag) {
		if len(content) > 0 {
			return nil, fmt.Errorf("<%s />: %w", tag, dom.ErrContentNotAllowed)
		}
		return dom.NewVoid(tag, attrs)
	}
	return dom.NewContainer(tag, attrs, content...)
}

func container(tag string, attrs dom.Attributes, content []any) (*dom.Container, error) {
	return dom.NewContainer(tag, attrs, content...)
}

// Document structure elements

func Html(attrs dom.Attributes, content ...any) (*dom.Container, error)  { return container("html", attrs, content) }
func Head(attrs dom.Attributes, content ...any) (*dom.Container, error)  { return container("head", attrs, content) }
func Body(attrs dom.Attributes, content ...any) (*dom.Container, error)  { return container("body", attrs, content) }
func Title(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("title", attrs, content) }
func Meta(attrs dom.Attributes) (*dom.Void, error)                       { return dom.NewVoid("meta", attrs) }
func Link(attrs dom.Attributes) (*dom.Void, error)                       { return dom.NewVoid("link", attrs) }
func Base(attrs dom.Attributes) (*dom.Void, error)                       { return dom.NewVoid("base", attrs) }
func Style(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("style", attrs, content) }

// Content sectioning elements

func Header(attrs dom.Attributes, content ...any) (*dom.Container, error)  { return container("header", attrs, content) }
func Footer(attrs dom.Attributes, content ...any) (*dom.Container, error)  { return container("footer", attrs, content) }
func Main(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("main", attrs, content) }
func Nav(attrs dom.Attributes, content ...any) (*dom.Container, error)     { return container("nav", attrs, content) }
func Section(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("section", attrs, content) }
func Article(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("article", attrs, content) }
func Aside(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("aside", attrs, content) }
func Address(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("address", attrs, content) }
func H1(attrs dom.Attributes, content ...any) (*dom.Container, error)      { return container("h1", attrs, content) }
func H2(attrs dom.Attributes, content ...any) (*dom.Container, error)      { return container("h2", attrs, content) }
func H3(attrs dom.Attributes, content ...any) (*dom.Container, error)      { return container("h3", attrs, content) }
func H4(attrs dom.Attributes, content ...any) (*dom.Container, error)      { return container("h4", attrs, content) }
func H5(attrs dom.Attributes, content ...any) (*dom.Container, error)      { return container("h5", attrs, content) }
func H6(attrs dom.Attributes, content ...any) (*dom.Container, error)      { return container("h6", attrs, content) }
func Hgroup(attrs dom.Attributes, content ...any) (*dom.Container, error)  { return container("hgroup", attrs, content) }

// Text content elements

func Div(attrs dom.Attributes, content ...any) (*dom.Container, error)        { return container("div", attrs, content) }
func P(attrs dom.Attributes, content ...any) (*dom.Container, error)          { return container("p", attrs, content) }
func Span(attrs dom.Attributes, content ...any) (*dom.Container, error)       { return container("span", attrs, content) }
func Pre(attrs dom.Attributes, content ...any) (*dom.Container, error)        { return container("pre", attrs, content) }
func Blockquote(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("blockquote", attrs, content) }
func Ul(attrs dom.Attributes, content ...any) (*dom.Container, error)         { return container("ul", attrs, content) }
func Ol(attrs dom.Attributes, content ...any) (*dom.Container, error)         { return container("ol", attrs, content) }
func Li(attrs dom.Attributes, content ...any) (*dom.Container, error)         { return container("li", attrs, content) }
func Dl(attrs dom.Attributes, content ...any) (*dom.Container, error)         { return container("dl", attrs, content) }
func Dt(attrs dom.Attributes, content ...any) (*dom.Container, error)         { return container("dt", attrs, content) }
func Dd(attrs dom.Attributes, content ...any) (*dom.Container, error)         { return container("dd", attrs, content) }
func Hr(attrs dom.Attributes) (*dom.Void, error)                              { return dom.NewVoid("hr", attrs) }
func Figure(attrs dom.Attributes, content ...any) (*dom.Container, error)     { return container("figure", attrs, content) }
func Figcaption(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("figcaption", attrs, content) }

// Inline text semantics

func A(attrs dom.Attributes, content ...any) (*dom.Container, error)      { return container("a", attrs, content) }
func Strong(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("strong", attrs, content) }
func Em(attrs dom.Attributes, content ...any) (*dom.Container, error)     { return container("em", attrs, content) }
func B(attrs dom.Attributes, content ...any) (*dom.Container, error)      { return container("b", attrs, content) }
func I(attrs dom.Attributes, content ...any) (*dom.Container, error)      { return container("i", attrs, content) }
func U(attrs dom.Attributes, content ...any) (*dom.Container, error)      { return container("u", attrs, content) }
func S(attrs dom.Attributes, content ...any) (*dom.Container, error)      { return container("s", attrs, content) }
func Small(attrs dom.Attributes, content ...any) (*dom.Container, error)  { return container("small", attrs, content) }
func Mark(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("mark", attrs, content) }
func Sub(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("sub", attrs, content) }
func Sup(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("sup", attrs, content) }
func Code(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("code", attrs, content) }
func Kbd(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("kbd", attrs, content) }
func Samp(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("samp", attrs, content) }
func Var(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("var", attrs, content) }
func Abbr(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("abbr", attrs, content) }
func Time(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("time", attrs, content) }
func Cite(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("cite", attrs, content) }
func Q(attrs dom.Attributes, content ...any) (*dom.Container, error)      { return container("q", attrs, content) }
func Dfn(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("dfn", attrs, content) }
func Ins(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("ins", attrs, content) }
func Del(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("del", attrs, content) }
func Ruby(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("ruby", attrs, content) }
func Rt(attrs dom.Attributes, content ...any) (*dom.Container, error)     { return container("rt", attrs, content) }
func Rp(attrs dom.Attributes, content ...any) (*dom.Container, error)     { return container("rp", attrs, content) }
func Bdi(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("bdi", attrs, content) }
func Bdo(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("bdo", attrs, content) }
func Data(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("data", attrs, content) }
func Br(attrs dom.Attributes) (*dom.Void, error)                          { return dom.NewVoid("br", attrs) }
func Wbr(attrs dom.Attributes) (*dom.Void, error)                         { return dom.NewVoid("wbr", attrs) }

// Form elements

func Form(attrs dom.Attributes, content ...any) (*dom.Container, error)     { return container("form", attrs, content) }
func Input(attrs dom.Attributes) (*dom.Void, error)                         { return dom.NewVoid("input", attrs) }
func Textarea(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("textarea", attrs, content) }
func Select(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("select", attrs, content) }
func Option(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("option", attrs, content) }
func Optgroup(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("optgroup", attrs, content) }
func Button(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("button", attrs, content) }
func Label(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("label", attrs, content) }
func Fieldset(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("fieldset", attrs, content) }
func Legend(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("legend", attrs, content) }
func Datalist(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("datalist", attrs, content) }
func Output(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("output", attrs, content) }
func Progress(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("progress", attrs, content) }
func Meter(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("meter", attrs, content) }

// Table elements

func Table(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("table", attrs, content) }
func Thead(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("thead", attrs, content) }
func Tbody(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("tbody", attrs, content) }
func Tfoot(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("tfoot", attrs, content) }
func Tr(attrs dom.Attributes, content ...any) (*dom.Container, error)       { return container("tr", attrs, content) }
func Th(attrs dom.Attributes, content ...any) (*dom.Container, error)       { return container("th", attrs, content) }
func Td(attrs dom.Attributes, content ...any) (*dom.Container, error)       { return container("td", attrs, content) }
func Caption(attrs dom.Attributes, content ...any) (*dom.Container, error)  { return container("caption", attrs, content) }
func Colgroup(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("colgroup", attrs, content) }
func Col(attrs dom.Attributes) (*dom.Void, error)                           { return dom.NewVoid("col", attrs) }

// Media elements

func Img(attrs dom.Attributes) (*dom.Void, error)                          { return dom.NewVoid("img", attrs) }
func Picture(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("picture", attrs, content) }
func Source(attrs dom.Attributes) (*dom.Void, error)                       { return dom.NewVoid("source", attrs) }
func Video(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("video", attrs, content) }
func Audio(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("audio", attrs, content) }
func Track(attrs dom.Attributes) (*dom.Void, error)                        { return dom.NewVoid("track", attrs) }
func Iframe(attrs dom.Attributes, content ...any) (*dom.Container, error)  { return container("iframe", attrs, content) }
func Embed(attrs dom.Attributes) (*dom.Void, error)                        { return dom.NewVoid("embed", attrs) }
func Object(attrs dom.Attributes, content ...any) (*dom.Container, error)  { return container("object", attrs, content) }
func Param(attrs dom.Attributes) (*dom.Void, error)                        { return dom.NewVoid("param", attrs) }
func Canvas(attrs dom.Attributes, content ...any) (*dom.Container, error)  { return container("canvas", attrs, content) }
func Map(attrs dom.Attributes, content ...any) (*dom.Container, error)     { return container("map", attrs, content) }
func Area(attrs dom.Attributes) (*dom.Void, error)                         { return dom.NewVoid("area", attrs) }

// Interactive elements

func Details(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("details", attrs, content) }
func Summary(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("summary", attrs, content) }
func Dialog(attrs dom.Attributes, content ...any) (*dom.Container, error)  { return container("dialog", attrs, content) }
func Menu(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("menu", attrs, content) }

// Scripting elements

func Script(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("script", attrs, content) }
func Noscript(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("noscript", attrs, content) }
func Template(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("template", attrs, content) }
func Slot(attrs dom.Attributes, content ...any) (*dom.Container, error)     { return container("slot", attrs, content) }
