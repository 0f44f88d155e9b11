package dom

import (
	"sort"
	"strings"
)

// indentUnit is the per-level indentation used by pretty output.
const indentUnit = "    "

// serialiseChildren renders each child and joins the results: directly
// when minified, with newlines otherwise.
func serialiseChildren(children []Element, minify bool) string {
	parts := make([]string, 0, len(children))
	for _, child := range children {
		parts = append(parts, child.Serialise(minify))
	}
	sep := "\n"
	if minify {
		sep = ""
	}
	return strings.Join(parts, sep)
}

// writeAttributes appends " key=value" pairs in sorted key order. The
// values are the quoted tokens produced by Transform. An empty mapping
// writes nothing, so a bare tag gets no trailing space.
func writeAttributes(b *strings.Builder, attrs map[string]string) {
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(attrs[k])
	}
}

// indentBlock indents every line of block by one level, interior empty
// lines included. A trailing empty segment after a final newline stays
// unindented so text ending in a newline does not grow trailing
// spaces.
func indentBlock(block string) string {
	if block == "" {
		return ""
	}
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if line == "" && i == len(lines)-1 {
			continue
		}
		lines[i] = indentUnit + line
	}
	return strings.Join(lines, "\n")
}
