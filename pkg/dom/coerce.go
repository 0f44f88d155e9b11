package dom

import "fmt"

// coerce turns a heterogeneous content list into a uniform list of
// owned child elements. Strings are wrapped in text nodes, nil items
// are dropped so conditional helpers like If can contribute nothing,
// element slices are spliced in place, and anything else is rejected.
// Order is preserved.
func coerce(content Content) ([]Element, error) {
	children := make([]Element, 0, len(content))
	for i, item := range content {
		switch v := item.(type) {
		case nil:
			continue
		case Element:
			children = append(children, v)
		case string:
			children = append(children, &TextElement{content: v})
		case []Element:
			for _, el := range v {
				if el != nil {
					children = append(children, el)
				}
			}
		default:
			return nil, fmt.Errorf("content item %d is %T: %w", i, item, ErrBadContentItem)
		}
	}
	return children, nil
}
