package html

import "github.com/markdom-dev/markdom/pkg/dom"

// Document is a full-page scaffold built on dom.Component: doctype,
// <html> with <head> and <body>, the content items becoming the body.
// Recognised attributes: "title" for the document title, "lang" for
// the root element (default "en"), and "charset" for the meta charset
// (default "utf-8").
func Document(attrs dom.Attributes, content ...any) (*dom.Component, error) {
	return dom.NewComponent(documentRoot, attrs, content...)
}

func documentRoot(attrs dom.Attributes, content dom.Content) (dom.Element, error) {
	lang, _ := attrs["lang"].(string)
	if lang == "" {
		lang = "en"
	}
	charset, _ := attrs["charset"].(string)
	if charset == "" {
		charset = "utf-8"
	}

	headItems := dom.Content{}
	charsetMeta, err := Meta(dom.Attributes{"charset": charset})
	if err != nil {
		return nil, err
	}
	headItems = append(headItems, charsetMeta)
	if title, _ := attrs["title"].(string); title != "" {
		titleEl, err := Title(nil, title)
		if err != nil {
			return nil, err
		}
		headItems = append(headItems, titleEl)
	}

	head, err := Head(nil, headItems...)
	if err != nil {
		return nil, err
	}
	body, err := Body(nil, content...)
	if err != nil {
		return nil, err
	}
	root, err := Html(dom.Attributes{"lang": lang}, head, body)
	if err != nil {
		return nil, err
	}
	return dom.NewGroup("<!DOCTYPE html>", root)
}

// Card wraps content in a titled card: an outer div with class "card",
// an optional header div holding the "title" attribute, and a body div
// holding the content. Extra classes can be supplied through a
// "classes" set, which is merged onto the outer div.
func Card(attrs dom.Attributes, content ...any) (*dom.Component, error) {
	return dom.NewComponent(cardRoot, attrs, content...)
}

func cardRoot(attrs dom.Attributes, content dom.Content) (dom.Element, error) {
	items := dom.Content{}
	if title, _ := attrs["title"].(string); title != "" {
		header, err := Div(dom.Attributes{"classes": []string{"card-header"}}, title)
		if err != nil {
			return nil, err
		}
		items = append(items, header)
	}
	body, err := Div(dom.Attributes{"classes": []string{"card-body"}}, content...)
	if err != nil {
		return nil, err
	}
	items = append(items, body)

	classes := []string{"card"}
	switch extra := attrs["classes"].(type) {
	case []string:
		classes = append(classes, extra...)
	case map[string]bool:
		for name, on := range extra {
			if on {
				classes = append(classes, name)
			}
		}
	case map[string]struct{}:
		for name := range extra {
			classes = append(classes, name)
		}
	}
	return Div(dom.Attributes{"classes": classes}, items...)
}
