package jsonxx

// Array is an ordered sequence of values. Insertion order is significant and
// preserved through serialization. The zero Array is empty and ready to use.
type Array struct {
	values []*Value
}

// NewArray returns an empty Array.
func NewArray() *Array { return &Array{} }

// Len reports the number of elements.
func (a *Array) Len() int { return len(a.values) }

// Value returns the element at index i, or nil when i is out of range.
func (a *Array) Value(i int) *Value {
	if i < 0 || i >= len(a.values) {
		return nil
	}
	return a.values[i]
}

// Values returns the underlying element slice. The slice is shared with the
// Array; callers must not reorder it while a serialization is in progress.
func (a *Array) Values() []*Value { return a.values }

// Append adds v at the end. Nil values are appended as null.
func (a *Array) Append(v *Value) {
	if v == nil {
		v = NewNull()
	}
	a.values = append(a.values, v)
}
