package jsonxx

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/jsonxx/jsonxx/internal/scan"
)

// Source abstracts over polymorphic character input. A Source is consumed by
// a single parse call; the parser owns the traversal and nothing else may
// read from the underlying stream while a parse is in progress.
type Source interface {
	scanner() *scan.Reader
}

type readerSource struct {
	s *scan.Reader
}

func (r readerSource) scanner() *scan.Reader { return r.s }

// Reader wraps an io.Reader as a Source.
func Reader(r io.Reader) Source { return readerSource{s: scan.New(r)} }

// Bytes wraps a byte slice as a Source.
func Bytes(b []byte) Source { return readerSource{s: scan.New(bytes.NewReader(b))} }

// String wraps a string as a Source.
func String(s string) Source { return readerSource{s: scan.New(strings.NewReader(s))} }

// File reads the named file and wraps its contents as a Source.
func File(path string) (Source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Bytes(b), nil
}
