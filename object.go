package jsonxx

import "sort"

// Object maps string keys to values, keys unique. Iteration and
// serialization visit keys in lexicographic order, not insertion order. The
// zero Object is empty and ready to use.
type Object struct {
	members map[string]*Value
}

// NewObject returns an empty Object.
func NewObject() *Object { return &Object{} }

// Len reports the number of members.
func (o *Object) Len() int { return len(o.members) }

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.members[key]
	return ok
}

// Get returns the value for key.
func (o *Object) Get(key string) (*Value, bool) {
	v, ok := o.members[key]
	return v, ok
}

// Set assigns v to key, replacing any prior value. Nil values are stored as
// null.
func (o *Object) Set(key string, v *Value) {
	if v == nil {
		v = NewNull()
	}
	if o.members == nil {
		o.members = make(map[string]*Value)
	}
	o.members[key] = v
}

// Delete removes key if present.
func (o *Object) Delete(key string) {
	delete(o.members, key)
}

// Keys returns the member keys in lexicographic order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.members))
	for k := range o.members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
