// Package slog provides logging decorators for docparse services.
package slog

import (
	"log/slog"
	"time"

	"github.com/jdidion/docparse"
)

// Ensure LoggingParser implements docparse.Parser.
var _ docparse.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging of parse outcomes.
type LoggingParser struct {
	next   docparse.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next docparse.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs what was extracted.
func (p *LoggingParser) Parse(text string) *docparse.DocString {
	begin := time.Now()
	doc := p.next.Parse(text)
	p.logger.Debug("docstring parsed",
		"bytes", len(text),
		"parameters", len(doc.Parameters),
		"raises", len(doc.Raises),
		"returns", doc.Returns != nil,
		"empty", doc.Empty(),
		"duration", time.Since(begin),
	)
	return doc
}
