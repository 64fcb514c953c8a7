package jsonxx

import (
	"fmt"

	gojson "github.com/goccy/go-json"
)

// FromAny builds a Value tree from an arbitrary Go value. The value is
// normalized through go-json first, so struct tags and custom marshalers
// apply the same way they would for ordinary JSON encoding.
func FromAny(v any) (*Value, error) {
	b, err := gojson.Marshal(v)
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: "encode input", Cause: err, Offset: -1}}
	}
	var raw any
	if err := gojson.Unmarshal(b, &raw); err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: "decode normalized input", Cause: err, Offset: -1}}
	}
	return fromRaw(raw)
}

// Decode unmarshals the tree into dst through go-json, honoring the usual
// unmarshaling conventions (struct tags, json.Unmarshaler).
func (v *Value) Decode(dst any) error {
	return gojson.Unmarshal([]byte(v.JSON()), dst)
}

// Decode unmarshals the object into dst through go-json.
func (o *Object) Decode(dst any) error {
	return gojson.Unmarshal([]byte(o.JSON()), dst)
}

// Decode unmarshals the array into dst through go-json.
func (a *Array) Decode(dst any) error {
	return gojson.Unmarshal([]byte(a.JSON()), dst)
}

// fromRaw converts a decoded dynamic value (maps, slices, primitives) into a
// Value tree. Shared by the go-json and YAML import paths.
func fromRaw(v any) (*Value, error) {
	switch t := v.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case float64:
		return NewNumber(t), nil
	case int:
		// YAML scalars arrive as native integer types
		return NewNumber(float64(t)), nil
	case int64:
		return NewNumber(float64(t)), nil
	case uint64:
		return NewNumber(float64(t)), nil
	case []any:
		a := &Array{}
		for _, el := range t {
			ev, err := fromRaw(el)
			if err != nil {
				return nil, err
			}
			a.Append(ev)
		}
		out := &Value{}
		out.SetArray(a)
		return out, nil
	case map[string]any:
		o := &Object{}
		for k, mv := range t {
			ev, err := fromRaw(mv)
			if err != nil {
				return nil, err
			}
			o.Set(k, ev)
		}
		out := &Value{}
		out.SetObject(o)
		return out, nil
	default:
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: fmt.Sprintf("unsupported value of type %T", v), Offset: -1}}
	}
}
