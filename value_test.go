package jsonxx_test

import (
	"testing"

	jsonxx "github.com/jsonxx/jsonxx"
)

func TestValue_ZeroIsInvalid(t *testing.T) {
	var v jsonxx.Value
	if v.Kind() != jsonxx.KindInvalid {
		t.Fatalf("zero Value kind = %v, want invalid", v.Kind())
	}
	if v.Kind().String() != "invalid" {
		t.Fatalf("kind name = %q", v.Kind().String())
	}
}

func TestValue_SettersReplacePayload(t *testing.T) {
	v := jsonxx.NewString("hello")
	if v.Kind() != jsonxx.KindString || v.StringValue() != "hello" {
		t.Fatalf("string value = %v %q", v.Kind(), v.StringValue())
	}

	v.SetBool(true)
	if v.Kind() != jsonxx.KindBoolean || !v.Bool() {
		t.Fatalf("boolean value = %v %v", v.Kind(), v.Bool())
	}
	if v.StringValue() != "" {
		t.Fatalf("stale string payload survived kind switch: %q", v.StringValue())
	}

	a := jsonxx.NewArray()
	a.Append(jsonxx.NewNumber(1))
	v.SetArray(a)
	if v.Kind() != jsonxx.KindArray || v.Array().Len() != 1 {
		t.Fatalf("array value = %v", v.Kind())
	}
	if v.Bool() {
		t.Fatalf("stale boolean payload survived kind switch")
	}

	v.SetNull()
	if v.Kind() != jsonxx.KindNull || v.Array() != nil {
		t.Fatalf("null value still exposes array: %v", v.Array())
	}
}

func TestValue_AccessorsOnWrongKind(t *testing.T) {
	v := jsonxx.NewNumber(7)
	if v.Bool() || v.StringValue() != "" || v.Array() != nil || v.Object() != nil {
		t.Fatalf("wrong-kind accessors leaked payloads")
	}
	if v.Number() != 7 {
		t.Fatalf("number = %v", v.Number())
	}
}

func TestValue_SetContainerNil(t *testing.T) {
	v := &jsonxx.Value{}
	v.SetArray(nil)
	if v.Array() == nil || v.Array().Len() != 0 {
		t.Fatalf("nil array not normalized to empty")
	}
	v.SetObject(nil)
	if v.Object() == nil || v.Object().Len() != 0 {
		t.Fatalf("nil object not normalized to empty")
	}
}

func TestObject_SetGetDelete(t *testing.T) {
	o := jsonxx.NewObject()
	o.Set("b", jsonxx.NewNumber(2))
	o.Set("a", jsonxx.NewNumber(1))
	o.Set("c", nil)

	if got := o.Keys(); len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("keys not sorted: %v", got)
	}
	if v, ok := o.Get("c"); !ok || v.Kind() != jsonxx.KindNull {
		t.Fatalf("nil member not stored as null")
	}

	o.Set("a", jsonxx.NewString("replaced"))
	if v, _ := o.Get("a"); v.StringValue() != "replaced" {
		t.Fatalf("Set did not replace prior value")
	}
	if o.Len() != 3 {
		t.Fatalf("replacing grew the object: %d", o.Len())
	}

	o.Delete("b")
	if o.Has("b") || o.Len() != 2 {
		t.Fatalf("Delete failed")
	}
}

func TestArray_AppendAndIndex(t *testing.T) {
	a := jsonxx.NewArray()
	a.Append(jsonxx.NewNumber(1))
	a.Append(nil)
	if a.Len() != 2 {
		t.Fatalf("len = %d", a.Len())
	}
	if a.Value(1).Kind() != jsonxx.KindNull {
		t.Fatalf("nil element not stored as null")
	}
	if a.Value(-1) != nil || a.Value(2) != nil {
		t.Fatalf("out-of-range index did not return nil")
	}
}
