package jsonxx

import "strings"

// Format selects an XML serialization dialect.
type Format int

const (
	// JSONx is the verbose dialect: one element name per kind
	// (json:object, json:string, ...) with an optional name="..." attribute
	// for keyed nodes, and an IBM JSONx namespace block on the root by
	// default.
	JSONx Format = iota
	// JXML is the compact dialect: a single element name "j" for every
	// node, with a son="type[:name]" attribute carrying a one-character
	// type code and the optional key. No default root attributes.
	JXML
)

// XMLOpt configures the document-level pieces of XML rendering.
type XMLOpt struct {
	// Header replaces the default XML declaration line. It is emitted
	// verbatim before the root element.
	Header string
	// RootAttrib replaces the default attribute block on the root element,
	// e.g. custom namespace declarations.
	RootAttrib string
}

// XML renders the Object as a tab-indented XML document in the given
// dialect, one line per node, members in key order. An unrecognized Format
// yields empty tag text.
func (o *Object) XML(f Format, opts ...XMLOpt) string {
	root := &Value{kind: KindObject, o: o}
	return xmlDocument(f, root, opts)
}

// XML renders the Array as a tab-indented XML document in the given
// dialect, one line per node, elements in sequence order.
func (a *Array) XML(f Format, opts ...XMLOpt) string {
	root := &Value{kind: KindArray, a: a}
	return xmlDocument(f, root, opts)
}

// xmlDocument assembles header plus root tag. The root Value is a transient
// view constructed by the XML entry points purely to reuse the recursive
// tagging routine; it aliases the caller's container and is dropped on
// return.
func xmlDocument(f Format, root *Value, opts []XMLOpt) string {
	var opt XMLOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	header := opt.Header
	if header == "" {
		header = defaultHeader
	}
	attrib := opt.RootAttrib
	if attrib == "" && f == JSONx {
		attrib = jsonxRootAttrib
	}
	return header + tag(f, 0, "", root, attrib)
}

const defaultHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

const jsonxRootAttrib = ` xsi:schemaLocation="http://www.datapower.com/schemas/json jsonx.xsd"` +
	` xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"` +
	` xmlns:json="http://www.ibm.com/xmlns/prod/2009/jsonx"`

// tag renders one node and, for containers, its children, each line indented
// by depth tabs and terminated by a newline. Null nodes self-close; every
// other kind opens, emits its body or children, then closes.
func tag(f Format, depth int, name string, v *Value, attr string) string {
	indent := strings.Repeat("\t", depth)

	switch v.kind {
	case KindBoolean:
		body := "false"
		if v.b {
			body = "true"
		}
		return indent + openTag(f, 'b', name, "") + body + closeTag(f, 'b') + "\n"

	case KindNumber:
		return indent + openTag(f, 'n', name, "") + formatNumber(v.n) + closeTag(f, 'n') + "\n"

	case KindString:
		return indent + openTag(f, 's', name, "") + escapeTag(v.s) + closeTag(f, 's') + "\n"

	case KindArray:
		sb := &strings.Builder{}
		for _, it := range v.a.values {
			sb.WriteString(tag(f, depth+1, "", it, ""))
		}
		return indent + openTag(f, 'a', name, attr) + "\n" +
			sb.String() +
			indent + closeTag(f, 'a') + "\n"

	case KindObject:
		sb := &strings.Builder{}
		for _, k := range v.o.Keys() {
			sb.WriteString(tag(f, depth+1, k, v.o.members[k], ""))
		}
		return indent + openTag(f, 'o', name, attr) + "\n" +
			sb.String() +
			indent + closeTag(f, 'o') + "\n"

	default:
		// null (and the invalid state) self-closes
		return indent + openTag(f, '0', name, " /") + "\n"
	}
}

// openTag builds the opening tag for a node of type code t. Unknown formats
// yield empty text, the defensive default for invalid enumerants.
func openTag(f Format, t byte, name, attr string) string {
	var tagname string
	switch f {
	case JXML:
		if name == "" {
			tagname = `j son="` + string(t) + `"`
		} else {
			tagname = `j son="` + string(t) + ":" + escapeAttrib(name) + `"`
		}

	case JSONx:
		if name != "" {
			tagname = ` name="` + escapeAttrib(name) + `"`
		}
		switch t {
		case 'b':
			tagname = "json:boolean" + tagname
		case 'a':
			tagname = "json:array" + tagname
		case 's':
			tagname = "json:string" + tagname
		case 'o':
			tagname = "json:object" + tagname
		case 'n':
			tagname = "json:number" + tagname
		default:
			tagname = "json:null" + tagname
		}

	default:
		return ""
	}
	return "<" + tagname + attr + ">"
}

// closeTag builds the closing tag for a node of type code t.
func closeTag(f Format, t byte) string {
	switch f {
	case JXML:
		return "</j>"

	case JSONx:
		switch t {
		case 'b':
			return "</json:boolean>"
		case 'a':
			return "</json:array>"
		case 'o':
			return "</json:object>"
		case 's':
			return "</json:string>"
		case 'n':
			return "</json:number>"
		default:
			return "</json:null>"
		}

	default:
		return ""
	}
}

// escapeAttrib escapes quote characters for attribute content.
func escapeAttrib(s string) string {
	sb := &strings.Builder{}
	for i := 0; i < len(s); i++ {
		switch b := s[i]; b {
		case '"':
			sb.WriteString(`\"`)
		case '\'':
			sb.WriteString(`\'`)
		default:
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

// escapeTag escapes angle brackets, and only those, for element text.
func escapeTag(s string) string {
	sb := &strings.Builder{}
	for i := 0; i < len(s); i++ {
		switch b := s[i]; b {
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		default:
			sb.WriteByte(b)
		}
	}
	return sb.String()
}
