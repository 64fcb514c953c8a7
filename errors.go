package jsonxx

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeParseError reports a value that matched none of the grammar's
	// productions.
	CodeParseError = "parse_error"
	// CodeTokenMismatch reports a committed construct missing an expected
	// token, such as ":" after an object key or an unmatched closing brace.
	CodeTokenMismatch = "token_mismatch"
	// CodeUnterminated reports a string whose closing delimiter was never
	// reached before the input ended.
	CodeUnterminated = "unterminated_string"
	// CodeStrictViolation reports input only acceptable under relaxed mode,
	// rejected because strict mode is on.
	CodeStrictViolation = "strict_violation"
)

// Issue represents a single parse failure.
type Issue struct {
	Path    string // JSON Pointer into the partially built tree (for example: /items/2).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	Offset  int64 // Byte offset in the input source (-1 when unknown).
}

// Issues is a collection of parse failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. token_mismatch at /a/0
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
