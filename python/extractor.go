// Package python extracts docstrings from Python source text. It
// performs a line-oriented lexical scan rather than a full parse:
// def/class nesting is tracked by indentation, and the string literal
// opening each body is captured as its docstring. This is the
// retrieval step that feeds raw docstring text to a parser.
package python

import (
	"regexp"
	"strings"

	"github.com/jdidion/docparse"
)

// Ensure Extractor implements docparse.Extractor.
var _ docparse.Extractor = (*Extractor)(nil)

// defRe matches a def/class statement and captures its indentation,
// keyword, and name.
var defRe = regexp.MustCompile(`^([ \t]*)(?:async[ \t]+)?(def|class)[ \t]+([A-Za-z_][A-Za-z0-9_]*)`)

// Extractor extracts docstrings from Python source text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// frame is one level of def/class nesting.
type frame struct {
	indent int
	name   string
}

// Extract returns the docstrings in src in source order: the module
// docstring first if present, then one entry per def/class whose body
// opens with a string literal. Symbols are dot-qualified by nesting.
func (e *Extractor) Extract(src string) []docparse.SourceDoc {
	lines := strings.Split(src, "\n")

	var docs []docparse.SourceDoc
	var stack []frame
	seenStatement := false

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		m := defRe.FindStringSubmatch(lines[i])
		if m == nil {
			// The first statement of the module may be its docstring.
			if !seenStatement {
				seenStatement = true
				if text, last, ok := captureString(lines, i); ok {
					docs = append(docs, docparse.SourceDoc{
						Kind: "module",
						Line: i + 1,
						Text: text,
					})
					i = last
				}
			}
			continue
		}
		seenStatement = true

		indent := len(m[1])
		kind := "function"
		if m[2] == "class" {
			kind = "class"
		}

		for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, frame{indent: indent, name: m[3]})

		end, ok := headerEnd(lines, i)
		if !ok {
			continue
		}
		i = end

		// The docstring, if any, is the first non-blank line of the body.
		j := i + 1
		for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
			j++
		}
		if j >= len(lines) || bodyIndent(lines[j]) <= indent {
			continue
		}
		text, last, ok := captureString(lines, j)
		if !ok {
			continue
		}
		docs = append(docs, docparse.SourceDoc{
			Symbol: qualname(stack),
			Kind:   kind,
			Line:   j + 1,
			Text:   text,
		})
		i = last
	}

	return docs
}

// headerEnd returns the index of the line that closes a def/class
// header starting at line i: the first line ending with a colon with
// all brackets balanced. Reports false for a header left open at
// end of input.
func headerEnd(lines []string, i int) (int, bool) {
	depth := 0
	for ; i < len(lines); i++ {
		for _, r := range lines[i] {
			switch r {
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				depth--
			}
		}
		if depth <= 0 && strings.HasSuffix(strings.TrimRight(lines[i], " \t"), ":") {
			return i, true
		}
	}
	return 0, false
}

// bodyIndent returns the leading whitespace width of a line.
func bodyIndent(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// qualname joins the nesting stack into a dotted symbol name.
func qualname(stack []frame) string {
	names := make([]string, len(stack))
	for i, f := range stack {
		names[i] = f.name
	}
	return strings.Join(names, ".")
}

// captureString reads a string literal starting at lines[i],
// returning its inner text, the index of its closing line, and
// whether a literal was found. Triple-quoted strings may span lines;
// string prefix letters (r, b, u, f) are accepted.
func captureString(lines []string, i int) (string, int, bool) {
	s := strings.TrimSpace(lines[i])

	// Strip up to two prefix letters before the quote.
	j := 0
	for j < len(s) && j < 2 && strings.ContainsRune("rRbBuUfF", rune(s[j])) {
		j++
	}
	s = s[j:]

	for _, delim := range []string{`"""`, "'''"} {
		if !strings.HasPrefix(s, delim) {
			continue
		}
		rest := s[len(delim):]
		if idx := strings.Index(rest, delim); idx >= 0 {
			return rest[:idx], i, true
		}
		// Multi-line literal: accumulate until the closing delimiter.
		parts := []string{rest}
		for k := i + 1; k < len(lines); k++ {
			if idx := strings.Index(lines[k], delim); idx >= 0 {
				parts = append(parts, lines[k][:idx])
				return strings.Join(parts, "\n"), k, true
			}
			parts = append(parts, lines[k])
		}
		return "", 0, false // unterminated
	}

	// One-line plain string.
	if len(s) > 1 && (s[0] == '"' || s[0] == '\'') {
		quote := s[0]
		for k := 1; k < len(s); k++ {
			if s[k] == '\\' {
				k++
				continue
			}
			if s[k] == quote {
				return s[1:k], i, true
			}
		}
	}

	return "", 0, false
}
