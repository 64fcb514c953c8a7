package jsonxx

// Kind discriminates the active representation of a Value.
type Kind int

const (
	// KindInvalid is the state of a freshly constructed Value before any
	// payload has been installed. It is distinct from KindNull and only
	// observable transiently during parsing.
	KindInvalid Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is a tagged node holding exactly one representation at a time. The
// zero Value is in the invalid state. Setters replace the discriminant and
// payload together, so the two can never disagree and no call site has to
// remember a separate reset step.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	a    *Array
	o    *Object
}

// NewNull returns a Value holding null.
func NewNull() *Value { v := &Value{}; v.SetNull(); return v }

// NewBool returns a Value holding b.
func NewBool(b bool) *Value { v := &Value{}; v.SetBool(b); return v }

// NewNumber returns a Value holding n.
func NewNumber(n float64) *Value { v := &Value{}; v.SetNumber(n); return v }

// NewString returns a Value holding s.
func NewString(s string) *Value { v := &Value{}; v.SetString(s); return v }

// Kind reports the active representation.
func (v *Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload, or false when the Value holds another
// kind.
func (v *Value) Bool() bool { return v.kind == KindBoolean && v.b }

// Number returns the numeric payload, or 0 when the Value holds another kind.
func (v *Value) Number() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.n
}

// StringValue returns the string payload, or "" when the Value holds another
// kind.
func (v *Value) StringValue() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// Array returns the array payload, or nil when the Value holds another kind.
func (v *Value) Array() *Array {
	if v.kind != KindArray {
		return nil
	}
	return v.a
}

// Object returns the object payload, or nil when the Value holds another
// kind.
func (v *Value) Object() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.o
}

// SetNull switches the Value to null, dropping any prior payload.
func (v *Value) SetNull() { v.reset(KindNull) }

// SetBool switches the Value to boolean b.
func (v *Value) SetBool(b bool) { v.reset(KindBoolean); v.b = b }

// SetNumber switches the Value to number n.
func (v *Value) SetNumber(n float64) { v.reset(KindNumber); v.n = n }

// SetString switches the Value to string s.
func (v *Value) SetString(s string) { v.reset(KindString); v.s = s }

// SetArray switches the Value to hold a. A nil a installs an empty Array.
func (v *Value) SetArray(a *Array) {
	if a == nil {
		a = &Array{}
	}
	v.reset(KindArray)
	v.a = a
}

// SetObject switches the Value to hold o. A nil o installs an empty Object.
func (v *Value) SetObject(o *Object) {
	if o == nil {
		o = &Object{}
	}
	v.reset(KindObject)
	v.o = o
}

// reset drops every payload field before installing the new discriminant;
// stale payloads must never survive a kind switch.
func (v *Value) reset(k Kind) {
	*v = Value{kind: k}
}
