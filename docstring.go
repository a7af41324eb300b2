package docparse

// DocString is the structured form of one parsed docstring. It is
// constructed once per parse and treated as immutable afterward;
// callers and caches may share a single instance freely.
type DocString struct {
	// Summary is the first paragraph of the docstring, before any
	// section header. Empty if the docstring starts with a header.
	Summary string `json:"summary"`

	// Description is the free text between the summary and the first
	// section header, with paragraphs separated by blank lines.
	Description string `json:"description,omitempty"`

	// Parameters holds entries from the Args/Arguments/Parameters
	// section, in order of appearance.
	Parameters []Field `json:"parameters,omitempty"`

	// KeywordArguments holds entries from the Keyword Arguments
	// section, in order of appearance.
	KeywordArguments []Field `json:"keywordArguments,omitempty"`

	// OtherParameters holds entries from the Other Parameters
	// section, in order of appearance.
	OtherParameters []Field `json:"otherParameters,omitempty"`

	// Methods holds entries from a Methods section, in order of
	// appearance.
	Methods []Field `json:"methods,omitempty"`

	// Warns holds entries from a Warns section, in order of
	// appearance.
	Warns []Field `json:"warns,omitempty"`

	// Returns documents the return value, if a Returns section was
	// present.
	Returns *TypeDoc `json:"returns,omitempty"`

	// Yields documents generated values, if a Yields section was
	// present.
	Yields *TypeDoc `json:"yields,omitempty"`

	// Raises maps exception type names to their descriptions. A
	// repeated exception name overwrites the earlier entry.
	Raises map[string]string `json:"raises,omitempty"`

	// Sections holds the remaining recognized prose sections (Notes,
	// Warning, ...) keyed by canonical header name, each as a list of
	// paragraphs. Examples is the exception: its value is the section's
	// dedented lines, verbatim, so code samples keep their formatting.
	Sections map[string][]string `json:"sections,omitempty"`

	// Directives holds reST directive blocks (".. name:" lines and
	// their indented bodies) keyed by directive name, each as a list
	// of paragraphs.
	Directives map[string][]string `json:"directives,omitempty"`
}

// Field documents a single named entry in a section body: a
// parameter, keyword argument, or similar.
type Field struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description"`
}

// TypeDoc documents a value that has an optional type but no name,
// such as a return value.
type TypeDoc struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"description"`
}

// Parameter returns the named parameter and whether it exists.
func (d *DocString) Parameter(name string) (Field, bool) {
	for _, f := range d.Parameters {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Raise returns the description for the named exception type and
// whether it exists.
func (d *DocString) Raise(name string) (string, bool) {
	desc, ok := d.Raises[name]
	return desc, ok
}

// Directive returns the paragraphs of the named directive and whether
// it exists.
func (d *DocString) Directive(name string) ([]string, bool) {
	paras, ok := d.Directives[name]
	return paras, ok
}

// Empty reports whether the docstring produced no content at all.
func (d *DocString) Empty() bool {
	return d.Summary == "" &&
		d.Description == "" &&
		len(d.Parameters) == 0 &&
		len(d.KeywordArguments) == 0 &&
		len(d.OtherParameters) == 0 &&
		len(d.Methods) == 0 &&
		len(d.Warns) == 0 &&
		d.Returns == nil &&
		d.Yields == nil &&
		len(d.Raises) == 0 &&
		len(d.Sections) == 0 &&
		len(d.Directives) == 0
}
