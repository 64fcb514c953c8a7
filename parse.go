package jsonxx

import (
	"strconv"
	"strings"

	"github.com/jsonxx/jsonxx/internal/scan"
)

// Parse is the primary entry point. It consumes characters from the Source
// and builds a Value tree for the first JSON value in the input. On failure
// the returned error is an Issues value locating the deepest committed
// production that went wrong.
func Parse(src Source, opts ...ParseOpt) (*Value, error) {
	p := newParser(src, opts)
	v := &Value{}
	if !p.value(v) {
		return nil, p.failure("value")
	}
	return v, nil
}

// ParseObject parses an object at the start of the input.
func ParseObject(src Source, opts ...ParseOpt) (*Object, error) {
	p := newParser(src, opts)
	o := &Object{}
	if !p.object(o) {
		return nil, p.failure("object")
	}
	return o, nil
}

// ParseArray parses an array at the start of the input.
func ParseArray(src Source, opts ...ParseOpt) (*Array, error) {
	p := newParser(src, opts)
	a := &Array{}
	if !p.array(a) {
		return nil, p.failure("array")
	}
	return a, nil
}

// parser threads the character source, options, and the path to the node
// being built. Productions return a bare bool so that alternatives can be
// tried speculatively; only failures of a committed construct (one whose
// opening token already matched) record an Issue, since those can never lie
// on a path the dispatch later abandons for a successful alternative.
type parser struct {
	s     *scan.Reader
	opt   ParseOpt
	path  []string
	issue *Issue
}

func newParser(src Source, opts []ParseOpt) *parser {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return &parser{s: src.scanner(), opt: opt}
}

// failure converts a failed parse into Issues, preferring the deepest
// recorded issue over the generic fallback.
func (p *parser) failure(what string) error {
	if p.issue != nil {
		return Issues{*p.issue}
	}
	return Issues{Issue{
		Path:    "/",
		Code:    CodeParseError,
		Message: "cannot parse " + what,
		Offset:  p.s.Offset(),
	}}
}

// failAt records an issue at the current path and offset. The first record
// wins: inner constructs fail before the outer ones that contain them.
func (p *parser) failAt(code, msg string) {
	if p.issue != nil {
		return
	}
	p.issue = &Issue{Path: p.pointer(), Code: code, Message: msg, Offset: p.s.Offset()}
}

func (p *parser) pointer() string {
	if len(p.path) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.path, "/")
}

func (p *parser) push(seg string) { p.path = append(p.path, seg) }
func (p *parser) pop()            { p.path = p.path[:len(p.path)-1] }

// value attempts the productions in fixed priority order and commits to the
// first that succeeds: string, number, boolean, null, array (only when the
// next non-whitespace character is '['), and finally object as the
// unconditional fallback. Each setter replaces any payload installed by an
// earlier run; when every alternative fails the Value is left unspecified
// and the caller discards it.
func (p *parser) value(v *Value) bool {
	if s, ok := p.parseString(); ok {
		v.SetString(s)
		return true
	}
	if n, ok := p.parseNumber(); ok {
		v.SetNumber(n)
		return true
	}
	if b, ok := p.parseBool(); ok {
		v.SetBool(b)
		return true
	}
	if p.parseNull() {
		v.SetNull()
		return true
	}
	p.s.SkipSpace()
	if b, ok := p.s.Peek(); ok && b == '[' {
		a := &Array{}
		if p.array(a) {
			v.SetArray(a)
			return true
		}
		// half-built array dropped; fall through to the object attempt
	}
	o := &Object{}
	if p.object(o) {
		v.SetObject(o)
		return true
	}
	return false
}

// parseString consumes a quoted string literal. The primary delimiter is the
// double quote; relaxed mode additionally accepts single-quoted strings.
// Escapes follow the serializer's set, with one tolerance: an unrecognized
// escape that is not the active delimiter is copied verbatim, backslash
// included, rather than rejected. On failure the partially decoded text is
// discarded.
func (p *parser) parseString() (string, bool) {
	delim := byte('"')
	if !p.s.Match(`"`) {
		if p.opt.Strict {
			p.s.SkipSpace()
			if b, ok := p.s.Peek(); ok && b == '\'' {
				p.failAt(CodeStrictViolation, "single-quoted string in strict mode")
			}
			return "", false
		}
		p.s.SkipSpace()
		b, ok := p.s.Peek()
		if !ok || b != '\'' {
			return "", false
		}
		p.s.ReadByte()
		delim = '\''
	}
	var sb strings.Builder
	for {
		b, ok := p.s.ReadByte()
		if !ok {
			p.failAt(CodeUnterminated, "unterminated string")
			return "", false
		}
		if b == delim {
			return sb.String(), true
		}
		if b != '\\' {
			sb.WriteByte(b)
			continue
		}
		e, ok := p.s.ReadByte()
		if !ok {
			p.failAt(CodeUnterminated, "unterminated string")
			return "", false
		}
		switch e {
		case '\\', '/':
			sb.WriteByte(e)
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		default:
			if e != delim {
				sb.WriteByte('\\')
			}
			sb.WriteByte(e)
		}
	}
}

// parseNumber skips whitespace and attempts a floating-point literal: sign,
// digits, optional fraction, optional exponent. On failure everything
// consumed by the attempt is pushed back, so a number probe never eats into
// the tokens of the next production.
func (p *parser) parseNumber() (float64, bool) {
	p.s.SkipSpace()
	var taken []byte

	next := func() (byte, bool) {
		b, ok := p.s.ReadByte()
		if ok {
			taken = append(taken, b)
		}
		return b, ok
	}
	restore := func() {
		for i := len(taken) - 1; i >= 0; i-- {
			p.s.Unread(taken[i])
		}
	}
	digits := func() int {
		n := 0
		for {
			b, ok := p.s.Peek()
			if !ok || b < '0' || b > '9' {
				return n
			}
			next()
			n++
		}
	}

	if b, ok := p.s.Peek(); ok && (b == '+' || b == '-') {
		next()
	}
	n := digits()
	if b, ok := p.s.Peek(); ok && b == '.' {
		next()
		n += digits()
	}
	if n == 0 {
		restore()
		return 0, false
	}
	if b, ok := p.s.Peek(); ok && (b == 'e' || b == 'E') {
		// commit the exponent only when at least one digit follows
		mark := len(taken)
		next()
		if b, ok := p.s.Peek(); ok && (b == '+' || b == '-') {
			next()
		}
		if digits() == 0 {
			for i := len(taken) - 1; i >= mark; i-- {
				p.s.Unread(taken[i])
			}
			taken = taken[:mark]
		}
	}

	f, err := strconv.ParseFloat(string(taken), 64)
	if err != nil {
		restore()
		return 0, false
	}
	return f, true
}

// parseBool accepts exactly the literals "true" and "false".
func (p *parser) parseBool() (bool, bool) {
	if p.s.Match("true") {
		return true, true
	}
	if p.s.Match("false") {
		return false, true
	}
	return false, false
}

// parseNull accepts the literal "null". Relaxed mode additionally treats an
// omitted value directly before a comma as null, tolerating inputs like
// [1, , 3] from informally written configuration files. The trigger is
// deliberately narrow: a peek for the comma, nothing more.
func (p *parser) parseNull() bool {
	if p.s.Match("null") {
		return true
	}
	if p.opt.Strict {
		return false
	}
	p.s.SkipSpace()
	b, ok := p.s.Peek()
	return ok && b == ','
}

// object runs the member state machine: '{', then either an immediate '}'
// for the empty object or a key/colon/value loop continued by commas, then
// the closing '}'. A key that fails to parse ends the object early in
// relaxed mode when the next character is '}' (trailing-comma tolerance); a
// committed "key:" whose value fails to parse fails the whole object.
func (p *parser) object(o *Object) bool {
	if !p.s.Match("{") {
		return false
	}
	if p.s.Match("}") {
		return true
	}
	for {
		key, ok := p.parseString()
		if !ok {
			if !p.opt.Strict {
				p.s.SkipSpace()
				if b, ok := p.s.Peek(); ok && b == '}' {
					break
				}
			}
			p.failAt(CodeTokenMismatch, "object key expected")
			return false
		}
		if !p.s.Match(":") {
			p.failAt(CodeTokenMismatch, `":" expected after object key`)
			return false
		}
		v := &Value{}
		p.push(key)
		ok = p.value(v)
		p.pop()
		if !ok {
			p.failAt(CodeTokenMismatch, "object value expected")
			return false
		}
		o.Set(key, v)
		if !p.s.Match(",") {
			break
		}
	}
	if !p.s.Match("}") {
		p.failAt(CodeTokenMismatch, `"}" expected`)
		return false
	}
	return true
}

// array mirrors object without keys: '[', then values continued by commas,
// then ']'. The element loop stops, without failing the array, the first
// time a value fails to parse; that is also how the empty array parses.
func (p *parser) array(a *Array) bool {
	if !p.s.Match("[") {
		return false
	}
	for {
		v := &Value{}
		p.push(strconv.Itoa(len(a.values)))
		ok := p.value(v)
		p.pop()
		if !ok {
			break
		}
		a.values = append(a.values, v)
		if !p.s.Match(",") {
			break
		}
	}
	if !p.s.Match("]") {
		p.failAt(CodeTokenMismatch, `"]" expected`)
		return false
	}
	return true
}
