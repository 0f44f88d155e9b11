package dom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Style is an ordered list of CSS declarations for the style
// attribute. A slice rather than a map keeps declaration order stable
// when the list is minified to "prop:value;prop:value".
type Style []StyleDecl

// StyleDecl is a single CSS property/value pair.
type StyleDecl struct {
	Property string
	Value    string
}

func (s Style) minify() string {
	parts := make([]string, 0, len(s))
	for _, d := range s {
		parts = append(parts, d.Property+":"+d.Value)
	}
	return strings.Join(parts, ";")
}

// Transform normalises an attribute mapping for serialisation.
//
// The input is not mutated; a new string→string mapping is returned,
// each value a double-quoted token ready to be printed as key=value.
//
// "classes", if present, must be a set of class names: a
// map[string]struct{}, a map[string]bool (false entries toggle the
// class off), or a []string. Empty strings are removed, then the
// remainder is space-joined under the "class" key; an empty set emits
// no class attribute at all.
//
// "style", if present, must be a Style list or a string. A Style list
// is minified to "prop:value" pairs joined with ";" in list order;
// strings pass through unchanged; an empty result is skipped.
//
// Underscores in attribute names become hyphens (for ARIA, data-* and
// similar) - use a double underscore for a literal underscore. A
// single trailing underscore is dropped, so names that collide with
// keywords stay usable. "colour" may be written wherever "color" is
// meant, except in data-* names, which are never rewritten; when both
// spellings of a name are supplied, the "colour" spelling wins.
//
// Values that are not already strings are encoded as JSON first. The
// resulting string then has literal double quotes replaced with &quot;
// and is JSON-encoded once more, producing the final quoted token.
func Transform(attributes Attributes) (map[string]string, error) {
	work := make(Attributes, len(attributes))
	for k, v := range attributes {
		work[k] = v
	}

	if classes, ok := work["classes"]; ok {
		delete(work, "classes")
		joined, err := joinClasses(classes)
		if err != nil {
			return nil, err
		}
		if joined != "" {
			work["class"] = joined
		}
	}

	if style, ok := work["style"]; ok {
		delete(work, "style")
		var css string
		switch v := style.(type) {
		case string:
			css = v
		case Style:
			css = v.minify()
		default:
			return nil, fmt.Errorf("style must be a string or Style, got %T: %w", style, ErrBadAttributeValue)
		}
		if css != "" {
			work["style"] = css
		}
	}

	out := make(map[string]string, len(work))
	for key, value := range work {
		// When both *colour* and *color* spellings are present, the
		// colour spelling takes precedence. Keys with a literal data-
		// prefix are exempt from the aliasing.
		sibling := key
		if !strings.HasPrefix(key, "data-") {
			sibling = strings.ReplaceAll(key, "color", "colour")
		}
		if sibling != key {
			if _, clash := work[sibling]; clash {
				continue
			}
		}

		token, err := encodeValue(key, value)
		if err != nil {
			return nil, err
		}
		out[normaliseKey(key)] = token
	}
	return out, nil
}

// joinClasses flattens a class set into a space-joined string. Names
// are sorted so output is reproducible; the contract only promises set
// semantics, not order.
func joinClasses(v any) (string, error) {
	var names []string
	switch set := v.(type) {
	case map[string]struct{}:
		for name := range set {
			if name != "" {
				names = append(names, name)
			}
		}
	case map[string]bool:
		for name, on := range set {
			if on && name != "" {
				names = append(names, name)
			}
		}
	case []string:
		seen := make(map[string]bool, len(set))
		for _, name := range set {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	default:
		return "", fmt.Errorf("classes must be a set of strings, got %T: %w", v, ErrBadAttributeValue)
	}
	sort.Strings(names)
	return strings.Join(names, " "), nil
}

// encodeValue produces the double-quoted attribute token. Non-string
// values survive as attribute values (arrays, objects, numbers) by
// being JSON-encoded up front; literal double quotes are replaced with
// &quot; before the final JSON encoding so the printed token stays
// valid inside a double-quoted attribute.
func encodeValue(key string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		encoded, err := jsonEncode(value)
		if err != nil {
			return "", fmt.Errorf("attribute %q: %v: %w", key, err, ErrBadAttributeValue)
		}
		s = encoded
	}
	s = strings.ReplaceAll(s, `"`, "&quot;")
	token, err := jsonEncode(s)
	if err != nil {
		return "", fmt.Errorf("attribute %q: %v: %w", key, err, ErrBadAttributeValue)
	}
	return token, nil
}

// jsonEncode marshals without HTML escaping, so entity references like
// &quot; and characters such as < survive verbatim in the token.
func jsonEncode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// underscorePlaceholder stands in for a literal underscore while the
// remaining single underscores are rewritten to hyphens.
const underscorePlaceholder = "\x00"

// normaliseKey applies the name rewriting rules: strip a single
// trailing underscore, map double underscores to literal underscores
// and the rest to hyphens, then normalise "colour" to "color" for
// everything except data-* names.
func normaliseKey(key string) string {
	if n := len(key); n >= 2 && key[n-1] == '_' && key[n-2] != '_' {
		key = key[:n-1]
	}
	key = strings.ReplaceAll(key, "__", underscorePlaceholder)
	key = strings.ReplaceAll(key, "_", "-")
	key = strings.ReplaceAll(key, underscorePlaceholder, "_")
	if !strings.HasPrefix(key, "data-") {
		key = strings.ReplaceAll(key, "colour", "color")
	}
	return key
}
