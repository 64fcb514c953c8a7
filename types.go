package jsonxx

// ParseOpt bundles parsing options.
type ParseOpt struct {
	// Strict disables every relaxed-input tolerance: single-quoted strings,
	// null inferred from an omitted value before a comma, and a missing key
	// inferred before a closing brace. Canonical JSON grammar only.
	Strict bool
}
