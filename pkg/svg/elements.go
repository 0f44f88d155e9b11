package svg

import "github.com/markdom-dev/markdom/pkg/dom"

func container(tag string, attrs dom.Attributes, content []any) (*dom.Container, error) {
	return dom.NewContainer(tag, attrs, content...)
}

// Root and structural elements

func Svg(attrs dom.Attributes, content ...any) (*dom.Container, error)     { return container("svg", attrs, content) }
func G(attrs dom.Attributes, content ...any) (*dom.Container, error)       { return container("g", attrs, content) }
func Defs(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("defs", attrs, content) }
func Symbol(attrs dom.Attributes, content ...any) (*dom.Container, error)  { return container("symbol", attrs, content) }
func Use(attrs dom.Attributes, content ...any) (*dom.Container, error)     { return container("use", attrs, content) }
func Marker(attrs dom.Attributes, content ...any) (*dom.Container, error)  { return container("marker", attrs, content) }
func Switch(attrs dom.Attributes, content ...any) (*dom.Container, error)  { return container("switch", attrs, content) }
func View(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("view", attrs, content) }
func Desc(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("desc", attrs, content) }
func Title(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("title", attrs, content) }
func Metadata(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("metadata", attrs, content) }

// Shape elements

func Circle(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("circle", attrs, content) }
func Ellipse(attrs dom.Attributes, content ...any) (*dom.Container, error)  { return container("ellipse", attrs, content) }
func Rect(attrs dom.Attributes, content ...any) (*dom.Container, error)     { return container("rect", attrs, content) }
func Line(attrs dom.Attributes, content ...any) (*dom.Container, error)     { return container("line", attrs, content) }
func Polyline(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("polyline", attrs, content) }
func Polygon(attrs dom.Attributes, content ...any) (*dom.Container, error)  { return container("polygon", attrs, content) }
func Path(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("path", attrs, content) }

// Text elements

func Text(attrs dom.Attributes, content ...any) (*dom.Container, error)     { return container("text", attrs, content) }
func Tspan(attrs dom.Attributes, content ...any) (*dom.Container, error)    { return container("tspan", attrs, content) }
func TextPath(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("textPath", attrs, content) }

// Paint server elements

func LinearGradient(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("linearGradient", attrs, content) }
func RadialGradient(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("radialGradient", attrs, content) }
func Stop(attrs dom.Attributes, content ...any) (*dom.Container, error)           { return container("stop", attrs, content) }
func Pattern(attrs dom.Attributes, content ...any) (*dom.Container, error)        { return container("pattern", attrs, content) }

// Clipping, masking, and filter elements

func ClipPath(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("clipPath", attrs, content) }
func Mask(attrs dom.Attributes, content ...any) (*dom.Container, error)     { return container("mask", attrs, content) }
func Filter(attrs dom.Attributes, content ...any) (*dom.Container, error)   { return container("filter", attrs, content) }

// Embedded content

func Image(attrs dom.Attributes, content ...any) (*dom.Container, error)         { return container("image", attrs, content) }
func ForeignObject(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("foreignObject", attrs, content) }

// Animation elements

func Animate(attrs dom.Attributes, content ...any) (*dom.Container, error)       { return container("animate", attrs, content) }
func AnimateMotion(attrs dom.Attributes, content ...any) (*dom.Container, error) { return container("animateMotion", attrs, content) }
func Set(attrs dom.Attributes, content ...any) (*dom.Container, error)           { return container("set", attrs, content) }
func Mpath(attrs dom.Attributes, content ...any) (*dom.Container, error)         { return container("mpath", attrs, content) }
