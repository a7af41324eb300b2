package docparse

// SourceDoc is a docstring found in source code, before parsing.
type SourceDoc struct {
	// Symbol is the qualified name of the documented object, e.g.
	// "MyClass.method". Empty Symbol with Kind "module" denotes a
	// module-level docstring.
	Symbol string `json:"symbol"`

	// Kind is one of "module", "class", or "function".
	Kind string `json:"kind"`

	// Line is the 1-based line number where the docstring opens.
	Line int `json:"line"`

	// Text is the raw docstring content without quotes, not yet
	// normalized.
	Text string `json:"text"`
}

// Extractor extracts docstrings from source code text.
type Extractor interface {
	Extract(src string) []SourceDoc
}
