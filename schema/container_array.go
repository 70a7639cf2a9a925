package schema

// ArraySchema stores a contiguous, zero-based sequence of elements of one
// declared type (primitive, string, or nested schema). Elements are
// stored as `any`, the Go analogue of the source protocol's type-erased
// `ArraySchema<char*>` cast the generated accessors use internally to
// share one container shape across every element type (see
// ArraySchemaTypes.hpp in the original). The reconciler is the only
// writer; listeners are the only reader of structural changes.
type ArraySchema struct {
	elements []any

	OnAdd    func(arr *ArraySchema, element any, index int)
	OnChange func(arr *ArraySchema, element any, index int)
	OnRemove func(arr *ArraySchema, element any, index int)
}

// NewArraySchema constructs an empty array container.
func NewArraySchema() *ArraySchema {
	return &ArraySchema{}
}

// Len reports the current element count.
func (a *ArraySchema) Len() int {
	if a == nil {
		return 0
	}
	return len(a.elements)
}

// At returns the element at i, or (nil, false) if i is out of range.
func (a *ArraySchema) At(i int) (any, bool) {
	if a == nil || i < 0 || i >= len(a.elements) {
		return nil, false
	}
	return a.elements[i], true
}

// Elements returns the live backing slice for read-only iteration (e.g.
// by printers and tests). Callers must not mutate it.
func (a *ArraySchema) Elements() []any {
	if a == nil {
		return nil
	}
	return a.elements
}

// SetAt writes v at index i. Per spec §4.3.b: i == size appends, i < size
// overwrites, i > size is undefined in the source and rejected here.
func (a *ArraySchema) SetAt(i int, v any) error {
	switch {
	case i == len(a.elements):
		a.elements = append(a.elements, v)
	case i < len(a.elements):
		a.elements[i] = v
	default:
		return errInvalidSetAt(i, len(a.elements))
	}
	return nil
}

// Shrink truncates the array to newLen, returning the removed elements in
// ascending index order. It fires no listener itself: the reconciler fires
// on_remove for each element past newLen before calling Shrink (spec
// §4.3.b: truncation happens before the per-change loop, and removal
// callbacks fire before any add/change in that loop).
func (a *ArraySchema) Shrink(newLen int) []any {
	if a == nil || newLen >= len(a.elements) {
		return nil
	}
	removed := append([]any(nil), a.elements[newLen:]...)
	a.elements = a.elements[:newLen]
	return removed
}

// fireAdd/fireChange/fireRemove centralize the nil-check every call site
// would otherwise repeat.
func (a *ArraySchema) fireAdd(element any, index int) {
	if a.OnAdd != nil {
		a.OnAdd(a, element, index)
	}
}

func (a *ArraySchema) fireChange(element any, index int) {
	if a.OnChange != nil {
		a.OnChange(a, element, index)
	}
}

func (a *ArraySchema) fireRemove(element any, index int) {
	if a.OnRemove != nil {
		a.OnRemove(a, element, index)
	}
}

// FireAdd, FireChange, and FireRemove let the reconciler package dispatch
// listener callbacks without exposing the unexported fire* helpers
// themselves.
func (a *ArraySchema) FireAdd(element any, index int)    { a.fireAdd(element, index) }
func (a *ArraySchema) FireChange(element any, index int) { a.fireChange(element, index) }
func (a *ArraySchema) FireRemove(element any, index int) { a.fireRemove(element, index) }
