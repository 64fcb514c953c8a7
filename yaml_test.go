package jsonxx_test

import (
	"testing"

	jsonxx "github.com/jsonxx/jsonxx"
)

func TestFromYAML_Document(t *testing.T) {
	doc := []byte("a: 1\nb:\n  - x\n  - true\nc: null\n")
	v, err := jsonxx.FromYAML(doc)
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if got, want := v.JSON(), `{"a": 1, "b": ["x", true], "c": null}`; got != want {
		t.Fatalf("JSON = %q, want %q", got, want)
	}
}

func TestFromYAML_MatchesParsedJSON(t *testing.T) {
	fromYAML, err := jsonxx.FromYAML([]byte("name: demo\ncount: 2\n"))
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	fromJSON, err := jsonxx.Parse(jsonxx.String(`{"count": 2, "name": "demo"}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if fromYAML.JSON() != fromJSON.JSON() {
		t.Fatalf("trees differ: %q vs %q", fromYAML.JSON(), fromJSON.JSON())
	}
}

func TestFromYAML_Invalid(t *testing.T) {
	if _, err := jsonxx.FromYAML([]byte(":\n  - {")); err == nil {
		t.Fatalf("expected error for invalid yaml")
	}
	iss, ok := jsonxx.AsIssues(nilOr(jsonxx.FromYAML([]byte("a: [1,"))))
	if !ok || len(iss) == 0 || iss[0].Cause == nil {
		t.Fatalf("expected Issues carrying the yaml cause, got %v", iss)
	}
}

// nilOr discards the value and keeps the error for assertion helpers.
func nilOr(_ *jsonxx.Value, err error) error { return err }
