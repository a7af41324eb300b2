package mock

import "github.com/jdidion/docparse"

var _ docparse.Parser = (*Parser)(nil)

// Parser is a mock implementation of docparse.Parser.
type Parser struct {
	ParseFn func(text string) *docparse.DocString
}

func (p *Parser) Parse(text string) *docparse.DocString {
	return p.ParseFn(text)
}
