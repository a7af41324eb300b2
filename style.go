package docparse

import "sync"

// Style identifies a docstring convention.
type Style string

// Supported docstring styles. NumPy and Sphinx conventions are
// roadmap; only Google is implemented.
const (
	StyleGoogle Style = "google"
)

// Parser parses raw docstring text into a structured record. Parse is
// total: it never fails, and malformed input degrades to a partial
// record rather than an error. Implementations must be safe for
// concurrent use.
type Parser interface {
	Parse(text string) *DocString
}

// ParserRegistry maps docstring styles to their parsers. The zero
// value is not usable; use NewParserRegistry.
type ParserRegistry struct {
	mu      sync.RWMutex
	parsers map[Style]Parser
}

// NewParserRegistry creates an empty registry.
func NewParserRegistry() *ParserRegistry {
	return &ParserRegistry{parsers: make(map[Style]Parser)}
}

// Register associates a parser with a style, replacing any previous
// registration.
func (r *ParserRegistry) Register(style Style, p Parser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[style] = p
}

// Get returns the parser for a style, or nil if none is registered.
func (r *ParserRegistry) Get(style Style) Parser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.parsers[style]
}

// Parse parses text with the parser registered for the style.
// Returns EINVALID if the style has no registered parser.
func (r *ParserRegistry) Parse(text string, style Style) (*DocString, error) {
	p := r.Get(style)
	if p == nil {
		return nil, Errorf(EINVALID, "no parser registered for style %q", style)
	}
	return p.Parse(text), nil
}

// List returns the registered styles.
func (r *ParserRegistry) List() []Style {
	r.mu.RLock()
	defer r.mu.RUnlock()
	styles := make([]Style, 0, len(r.parsers))
	for style := range r.parsers {
		styles = append(styles, style)
	}
	return styles
}
