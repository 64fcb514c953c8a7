package jsonxx_test

import (
	"testing"

	jsonxx "github.com/jsonxx/jsonxx"
)

func TestJSON_ObjectInKeyOrder(t *testing.T) {
	o := jsonxx.NewObject()
	o.Set("b", jsonxx.NewNumber(2))
	o.Set("a", jsonxx.NewNumber(1))
	if got, want := o.JSON(), `{"a": 1, "b": 2}`; got != want {
		t.Fatalf("JSON = %q, want %q", got, want)
	}
}

func TestJSON_Array(t *testing.T) {
	a := jsonxx.NewArray()
	a.Append(jsonxx.NewNumber(1))
	a.Append(jsonxx.NewBool(false))
	a.Append(jsonxx.NewNull())
	if got, want := a.JSON(), `[1, false, null]`; got != want {
		t.Fatalf("JSON = %q, want %q", got, want)
	}
}

func TestJSON_StringEscaping(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`he said "hi"`, `"he said \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"a/b", `"a\/b"`},
		{"tab\there", `"tab\there"`},
		{"line\nbreak", `"line\nbreak"`},
		{"\b\f\r", `"\b\f\r"`},
		{string([]byte{0x01, 0x1f}), `"\u0001\u001f"`},
		{"plain … utf8 passes through", `"plain … utf8 passes through"`},
	}
	for _, tc := range cases {
		if got := jsonxx.NewString(tc.in).JSON(); got != tc.want {
			t.Fatalf("JSON(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// Numeric \u00XX escapes are not decoded on input: an unknown escape is
// copied through verbatim, backslash included. A serialized control
// character therefore re-parses as the six characters of its escape, not as
// the control byte; only the two-character escapes round-trip to themselves.
func TestJSON_NumericEscapeReparsesVerbatim(t *testing.T) {
	out := jsonxx.NewString("\x01").JSON()
	if out != `""` {
		t.Fatalf("JSON(0x01) = %q, want %q", out, `""`)
	}
	v, err := jsonxx.Parse(jsonxx.String(out))
	if err != nil {
		t.Fatalf("re-parse of %q: %v", out, err)
	}
	if got := v.StringValue(); got != `` {
		t.Fatalf("re-parse of %q = %q, want the literal escape text", out, got)
	}
}

func TestJSON_EscapeUnescapeRoundTrip(t *testing.T) {
	inputs := []string{
		`quotes " and \ and /`,
		"controls \b\f\n\r\t",
		"mixed \" \\ / \n end",
	}
	for _, s := range inputs {
		v, err := jsonxx.Parse(jsonxx.String(jsonxx.NewString(s).JSON()))
		if err != nil {
			t.Fatalf("re-parse of %q: %v", s, err)
		}
		if got := v.StringValue(); got != s {
			t.Fatalf("round trip of %q = %q", s, got)
		}
	}
}

func TestJSON_MarshalerInterface(t *testing.T) {
	o := jsonxx.NewObject()
	o.Set("n", jsonxx.NewNumber(1.5))
	b, err := o.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(b) != `{"n": 1.5}` {
		t.Fatalf("MarshalJSON = %q", b)
	}
}

func TestJSON_Stringer(t *testing.T) {
	v, err := jsonxx.Parse(jsonxx.String(`{"a": [1, null]}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := v.String(), `{"a": [1, null]}`; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestJSON_NumberFormatting(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{-1500, "-1500"},
		{2.5, "2.5"},
		{0.001, "0.001"},
	}
	for _, tc := range cases {
		if got := jsonxx.NewNumber(tc.in).JSON(); got != tc.want {
			t.Fatalf("JSON(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
