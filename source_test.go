package jsonxx_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	jsonxx "github.com/jsonxx/jsonxx"
)

func TestSources_Agree(t *testing.T) {
	const doc = `{"a": [1, 2], "b": "text"}`

	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	fileSrc, err := jsonxx.File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}

	sources := map[string]jsonxx.Source{
		"bytes":  jsonxx.Bytes([]byte(doc)),
		"string": jsonxx.String(doc),
		"reader": jsonxx.Reader(strings.NewReader(doc)),
		"file":   fileSrc,
	}
	var want string
	for name, src := range sources {
		v, err := jsonxx.Parse(src)
		if err != nil {
			t.Fatalf("Parse from %s: %v", name, err)
		}
		if want == "" {
			want = v.JSON()
			continue
		}
		if got := v.JSON(); got != want {
			t.Fatalf("source %s disagrees: %q vs %q", name, got, want)
		}
	}
}

func TestFile_Missing(t *testing.T) {
	if _, err := jsonxx.File(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
