// Package cache provides a memoizing parser decorator. Parse results
// are pure functions of their input, so they are cached by content
// hash with get-or-compute semantics.
package cache

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/jdidion/docparse"
)

// Ensure Parser implements docparse.Parser.
var _ docparse.Parser = (*Parser)(nil)

// Parser wraps another parser and memoizes its results keyed by the
// xxHash of the raw text. Safe for concurrent use. Cached records are
// shared between callers, which is sound because records are
// immutable after construction.
type Parser struct {
	next docparse.Parser

	mu      sync.RWMutex
	records map[uint64]*docparse.DocString
}

// New creates a memoizing Parser around next.
func New(next docparse.Parser) *Parser {
	return &Parser{
		next:    next,
		records: make(map[uint64]*docparse.DocString),
	}
}

// Parse returns the cached record for text, computing and storing it
// on a miss. Two goroutines racing on the same miss may both compute;
// the results are identical, so either may win.
func (p *Parser) Parse(text string) *docparse.DocString {
	key := xxhash.Sum64String(text)

	p.mu.RLock()
	doc, ok := p.records[key]
	p.mu.RUnlock()
	if ok {
		return doc
	}

	doc = p.next.Parse(text)

	p.mu.Lock()
	p.records[key] = doc
	p.mu.Unlock()
	return doc
}

// Len returns the number of cached records.
func (p *Parser) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.records)
}
