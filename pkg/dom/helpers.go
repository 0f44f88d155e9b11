package dom

// Must panics if err is non-nil and returns el otherwise. It keeps
// declarative trees readable when the inputs are known-good:
//
//	page := dom.Must(dom.NewContainer("div", nil, "hi"))
func Must[E Element](el E, err error) E {
	if err != nil {
		panic(err)
	}
	return el
}

// If returns el when condition is true and nil otherwise. Nil items
// are dropped during content coercion, so this enables conditional
// children inline.
func If(condition bool, el Element) Element {
	if condition {
		return el
	}
	return nil
}

// IfElse returns the first element if condition is true, the second
// otherwise.
func IfElse(condition bool, ifTrue, ifFalse Element) Element {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Unless is the inverse of If: it returns el when condition is false.
func Unless(condition bool, el Element) Element {
	if !condition {
		return el
	}
	return nil
}

// When is like If with lazy construction. The function only runs when
// condition is true.
func When(condition bool, fn func() Element) Element {
	if condition {
		return fn()
	}
	return nil
}

// Either returns first if it is non-nil, otherwise second.
func Either(first, second Element) Element {
	if first != nil {
		return first
	}
	return second
}

// Range maps a slice to elements, dropping nil results. The returned
// slice splices directly into a content list.
func Range[T any](items []T, fn func(item T, index int) Element) []Element {
	result := make([]Element, 0, len(items))
	for i, item := range items {
		el := fn(item, i)
		if el != nil {
			result = append(result, el)
		}
	}
	return result
}

// Repeat creates n elements using the given function, dropping nils.
func Repeat(n int, fn func(i int) Element) []Element {
	if n <= 0 {
		return nil
	}
	result := make([]Element, 0, n)
	for i := 0; i < n; i++ {
		el := fn(i)
		if el != nil {
			result = append(result, el)
		}
	}
	return result
}
