package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jdidion/docparse"
)

// parsedSource is the JSON shape for one extracted-and-parsed docstring.
type parsedSource struct {
	Symbol string              `json:"symbol,omitempty"`
	Kind   string              `json:"kind"`
	Line   int                 `json:"line"`
	Doc    *docparse.DocString `json:"doc"`
}

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	text, err := c.readInput(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	style := docparse.Style(c.Style)

	if c.Python || strings.HasSuffix(c.Path, ".py") {
		var out []parsedSource
		for _, src := range deps.Extractor.Extract(text) {
			doc, err := deps.Registry.Parse(src.Text, style)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", docparse.ErrorMessage(err))
				return err
			}
			out = append(out, parsedSource{
				Symbol: src.Symbol,
				Kind:   src.Kind,
				Line:   src.Line,
				Doc:    doc,
			})
		}
		return writeJSON(deps.Stdout, out)
	}

	doc, err := deps.Registry.Parse(text, style)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docparse.ErrorMessage(err))
		return err
	}
	return writeJSON(deps.Stdout, doc)
}

// readInput reads the docstring or source text to parse.
func (c *ParseCmd) readInput(stdin io.Reader) (string, error) {
	if c.Path == "" || c.Path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(c.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", c.Path, err)
	}
	return string(b), nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
