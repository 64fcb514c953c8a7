package jsonxx

// Package jsonxx parses JSON text into an in-memory value tree and renders
// that tree back to text.
//
// It provides:
//
// - A Value model (null, boolean, number, string, array, object) with
//   containers that preserve array order and iterate objects in key order
// - A recursive-descent parser over a backtracking character source, with a
//   relaxed default mode tolerant of informally written input and a strict
//   mode enforcing canonical JSON grammar only
// - Serializers for compact JSON and for two XML dialects: "jsonx" (verbose
//   IBM JSONx element names) and "jxml" (a single generic element name with a
//   type-and-name attribute)
//
// Design policy:
// - Keep only public APIs in the root package; put the character-stream
//   machinery under internal/.
// - Recoverable parse failure is a return value, never a panic.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := jsonxx.Parse(jsonxx.String(`{"a": 1}`))
//	o, err := jsonxx.ParseObject(jsonxx.Bytes(data), jsonxx.ParseOpt{Strict: true})
//
//	text := o.JSON()
//	xml := o.XML(jsonxx.JSONx)
