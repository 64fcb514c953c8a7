// Package scan provides the forward-scanning character source used by the
// parser: single-byte reads, arbitrary pushback, whitespace skipping, and a
// literal-token matcher that restores the cursor fully on mismatch.
package scan

import "io"

// Reader wraps an io.Reader as a byte source with an unbounded pushback
// stack. Offset reports the net number of bytes consumed, so a fully
// backtracked speculative read leaves it unchanged.
type Reader struct {
	r      io.Reader
	buf    [1]byte
	unread []byte // pushback stack; the last byte pushed is read first
	off    int64
	eof    bool
}

// New wraps r. The Reader owns the traversal; callers must not read from r
// while parsing is in progress.
func New(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadByte returns the next byte, preferring pushed-back bytes. Any read
// error, io.EOF included, is reported as (0, false); the parser treats a bad
// stream the same as an exhausted one.
func (s *Reader) ReadByte() (byte, bool) {
	if n := len(s.unread); n > 0 {
		b := s.unread[n-1]
		s.unread = s.unread[:n-1]
		s.off++
		return b, true
	}
	if s.eof {
		return 0, false
	}
	for {
		n, err := s.r.Read(s.buf[:])
		if n > 0 {
			s.off++
			return s.buf[0], true
		}
		if err != nil {
			s.eof = true
			return 0, false
		}
	}
}

// Unread pushes b back onto the stream so the next ReadByte returns it.
func (s *Reader) Unread(b byte) {
	s.unread = append(s.unread, b)
	s.off--
}

// Peek returns the next byte without consuming it.
func (s *Reader) Peek() (byte, bool) {
	b, ok := s.ReadByte()
	if ok {
		s.Unread(b)
	}
	return b, ok
}

// SkipSpace consumes a run of JSON whitespace (space, tab, CR, LF).
func (s *Reader) SkipSpace() {
	for {
		b, ok := s.ReadByte()
		if !ok {
			return
		}
		if !isSpace(b) {
			s.Unread(b)
			return
		}
	}
}

// Match skips leading whitespace, then attempts to consume exactly the bytes
// of pattern. On success the cursor sits immediately after the matched text.
// On any mismatch every consumed byte is pushed back, the skipped whitespace
// included, so a failed Match leaves the cursor untouched. Higher-level
// productions rely on this to retry alternatives from the same position.
func (s *Reader) Match(pattern string) bool {
	var taken []byte
	for {
		b, ok := s.ReadByte()
		if !ok {
			break
		}
		if isSpace(b) {
			taken = append(taken, b)
			continue
		}
		s.Unread(b)
		break
	}
	for i := 0; i < len(pattern); i++ {
		b, ok := s.ReadByte()
		if !ok {
			s.restore(taken)
			return false
		}
		if b != pattern[i] {
			s.Unread(b)
			s.restore(taken)
			return false
		}
		taken = append(taken, b)
	}
	return true
}

// Offset reports the net number of bytes consumed so far.
func (s *Reader) Offset() int64 { return s.off }

func (s *Reader) restore(taken []byte) {
	for i := len(taken) - 1; i >= 0; i-- {
		s.Unread(taken[i])
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
