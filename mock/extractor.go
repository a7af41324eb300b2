package mock

import "github.com/jdidion/docparse"

var _ docparse.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docparse.Extractor.
type Extractor struct {
	ExtractFn func(src string) []docparse.SourceDoc
}

func (e *Extractor) Extract(src string) []docparse.SourceDoc {
	return e.ExtractFn(src)
}
