package dom

import "errors"

// Construction failures. Constructors wrap these sentinels with
// shape-specific detail, so callers match them with errors.Is.
var (
	// ErrContentArity reports text content that is not exactly one
	// string item.
	ErrContentArity = errors.New("text content must be a single string")

	// ErrContentNotAllowed reports content given to a shape that
	// cannot hold any.
	ErrContentNotAllowed = errors.New("content not allowed")

	// ErrAttributesNotAllowed reports attributes given to a shape that
	// cannot carry any.
	ErrAttributesNotAllowed = errors.New("attributes not allowed")

	// ErrBadContentItem reports a content item that is neither an
	// Element nor a string.
	ErrBadContentItem = errors.New("content item must be an Element or string")

	// ErrBadAttributeValue reports an attribute value the transform
	// cannot encode, such as a "classes" entry that is not a set of
	// strings.
	ErrBadAttributeValue = errors.New("attribute value cannot be encoded")
)
