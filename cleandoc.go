package docparse

import "strings"

// Cleandoc normalizes raw docstring text for parsing. Docstring
// conventions allow the first line to start flush with the opening
// quote while subsequent lines carry the indentation of the enclosing
// block, so the first line is trimmed independently and the largest
// common leading whitespace of the remaining non-blank lines is
// removed. Leading and trailing blank lines are dropped.
//
// Cleandoc is idempotent: re-indenting a docstring uniformly produces
// the same normalized text.
func Cleandoc(text string) string {
	lines := strings.Split(text, "\n")

	margin := -1
	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(trimmed)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}

	out := make([]string, 0, len(lines))
	out = append(out, strings.TrimSpace(lines[0]))
	for _, line := range lines[1:] {
		out = append(out, strings.TrimRight(cutIndent(line, margin), " \t"))
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}

	return strings.Join(out, "\n")
}

// cutIndent removes up to margin bytes of leading whitespace. Blank
// lines may be shorter than the margin, so only whitespace is cut.
func cutIndent(line string, margin int) string {
	i := 0
	for i < len(line) && i < margin && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[i:]
}
