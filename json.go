package jsonxx

import (
	"fmt"
	"strconv"
	"strings"
)

// JSON renders the Value as compact, single-line JSON text.
func (v *Value) JSON() string {
	sb := &strings.Builder{}
	v.writeJSON(sb)
	return sb.String()
}

// JSON renders the Object as compact JSON, members in key order.
func (o *Object) JSON() string {
	sb := &strings.Builder{}
	o.writeJSON(sb)
	return sb.String()
}

// JSON renders the Array as compact JSON, elements in sequence order.
func (a *Array) JSON() string {
	sb := &strings.Builder{}
	a.writeJSON(sb)
	return sb.String()
}

// String renders the Value as JSON.
func (v *Value) String() string { return v.JSON() }

// String renders the Object as JSON.
func (o *Object) String() string { return o.JSON() }

// String renders the Array as JSON.
func (a *Array) String() string { return a.JSON() }

// MarshalJSON implements json.Marshaler.
func (v *Value) MarshalJSON() ([]byte, error) { return []byte(v.JSON()), nil }

// MarshalJSON implements json.Marshaler.
func (o *Object) MarshalJSON() ([]byte, error) { return []byte(o.JSON()), nil }

// MarshalJSON implements json.Marshaler.
func (a *Array) MarshalJSON() ([]byte, error) { return []byte(a.JSON()), nil }

func (v *Value) writeJSON(sb *strings.Builder) {
	switch v.kind {
	case KindBoolean:
		if v.b {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindNumber:
		sb.WriteString(formatNumber(v.n))
	case KindString:
		writeQuoted(sb, v.s)
	case KindArray:
		v.a.writeJSON(sb)
	case KindObject:
		v.o.writeJSON(sb)
	default:
		// null, and the invalid state should it ever escape a parser
		sb.WriteString("null")
	}
}

func (o *Object) writeJSON(sb *strings.Builder) {
	sb.WriteByte('{')
	for i, k := range o.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeQuoted(sb, k)
		sb.WriteString(": ")
		o.members[k].writeJSON(sb)
	}
	sb.WriteByte('}')
}

func (a *Array) writeJSON(sb *strings.Builder) {
	sb.WriteByte('[')
	for i, v := range a.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		v.writeJSON(sb)
	}
	sb.WriteByte(']')
}

// writeQuoted wraps s in double quotes, escaping the delimiter, backslash,
// slash, and the named control characters to their two-character escapes and
// any other byte below 32 to a \u00XX escape. Bytes 32 and above pass
// through untouched; the text is not validated as any particular encoding.
func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch b {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '/':
			sb.WriteString(`\/`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if b < 32 {
				fmt.Fprintf(sb, `\u%04x`, b)
			} else {
				sb.WriteByte(b)
			}
		}
	}
	sb.WriteByte('"')
}

func formatNumber(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
