package google

import (
	"strings"

	"github.com/jdidion/docparse"
)

// fieldEntry accumulates one section entry before its description
// lines are joined.
type fieldEntry struct {
	name  string
	typ   string
	lines []string
}

// parseFields parses an Args-style section body into named fields.
// An entry starts at a line at the body's base indentation matching
// `name [(type)]: description`; deeper lines continue the current
// entry's description. A line at the base indentation that does not
// match the entry pattern is tolerated as continuation text rather
// than rejected. A repeated name overwrites the earlier entry while
// keeping its original position.
func parseFields(body []string) []docparse.Field {
	baseIndent := -1
	var entries []fieldEntry

	for _, line := range body {
		content := strings.TrimLeft(line, " \t")
		if content == "" {
			// Blank line: paragraph break within the current description.
			if n := len(entries); n > 0 {
				entries[n-1].lines = append(entries[n-1].lines, "")
			}
			continue
		}

		indent := len(line) - len(content)
		if baseIndent < 0 || indent <= baseIndent {
			if name, typ, desc, ok := splitEntry(content); ok {
				baseIndent = indent
				entries = append(entries, fieldEntry{name: name, typ: typ, lines: []string{desc}})
				continue
			}
		}

		// Continuation, or a malformed entry line degrading to one.
		// With no entry to attach to, the line has no home and is dropped.
		if n := len(entries); n > 0 {
			entries[n-1].lines = append(entries[n-1].lines, content)
		}
	}

	if len(entries) == 0 {
		return nil
	}

	fields := make([]docparse.Field, 0, len(entries))
	index := make(map[string]int, len(entries))
	for _, e := range entries {
		f := docparse.Field{Name: e.name, Type: e.typ, Description: joinLines(e.lines)}
		if i, ok := index[e.name]; ok {
			fields[i] = f
		} else {
			index[e.name] = len(fields)
			fields = append(fields, f)
		}
	}
	return fields
}

// mergeFields merges fields from a repeated section into an earlier
// occurrence: a name already present is overwritten in place, new
// names append in order.
func mergeFields(dst, src []docparse.Field) []docparse.Field {
	for _, f := range src {
		i := 0
		for ; i < len(dst); i++ {
			if dst[i].Name == f.Name {
				dst[i] = f
				break
			}
		}
		if i == len(dst) {
			dst = append(dst, f)
		}
	}
	return dst
}

// parseTyped parses a Returns/Yields section body. If the first line
// has the form `type: description`, the text before the colon is the
// type hint; otherwise the whole body is the description.
func parseTyped(body []string) *docparse.TypeDoc {
	for len(body) > 0 && strings.TrimSpace(body[0]) == "" {
		body = body[1:]
	}
	if len(body) == 0 {
		return &docparse.TypeDoc{}
	}

	first := strings.TrimSpace(body[0])
	before, after, ok := splitColon(first)
	if !ok {
		return &docparse.TypeDoc{Description: joinLines(body)}
	}

	desc := body[1:]
	if after = strings.TrimSpace(after); after != "" {
		desc = append([]string{after}, desc...)
	}
	return &docparse.TypeDoc{
		Type:        strings.TrimSpace(before),
		Description: joinLines(desc),
	}
}

// parseRaises parses a Raises section body. Entries share the Args
// grammar, but the name position holds an exception type and the
// result is keyed by it; a repeated exception name overwrites.
func parseRaises(body []string) map[string]string {
	fields := parseFields(body)
	if len(fields) == 0 {
		return nil
	}
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.Name] = f.Description
	}
	return m
}

// splitEntry splits an entry's first line into name, optional
// parenthesized type hint, and the start of the description. The
// name is the token before the first '(' or ':' and must contain no
// whitespace; anything else does not open an entry.
func splitEntry(content string) (name, typ, desc string, ok bool) {
	before, after, found := splitColon(content)
	if !found {
		return "", "", "", false
	}

	name = strings.TrimSpace(before)
	if open := strings.Index(name, "("); open >= 0 && strings.HasSuffix(name, ")") {
		typ = strings.TrimSpace(name[open+1 : len(name)-1])
		name = strings.TrimSpace(name[:open])
	}
	if name == "" || strings.ContainsAny(name, " \t") {
		return "", "", "", false
	}
	return name, typ, strings.TrimSpace(after), true
}

// splitColon splits a line on its first single colon. Double colons
// (reST literal markers) do not split.
func splitColon(s string) (before, after string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] != ':' {
			continue
		}
		if i+1 < len(s) && s[i+1] == ':' {
			i++ // skip the pair
			continue
		}
		if i > 0 && s[i-1] == ':' {
			continue
		}
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

// verbatim prepares an Examples body: blank edges are trimmed and the
// common indentation removed, but line structure is otherwise kept so
// code samples preserve their formatting.
func verbatim(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil
	}

	margin := -1
	for _, line := range lines {
		content := strings.TrimLeft(line, " \t")
		if content == "" {
			continue
		}
		if indent := len(line) - len(content); margin < 0 || indent < margin {
			margin = indent
		}
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out[i] = line[margin:]
	}
	return out
}

// paragraphs joins consecutive non-blank lines with single spaces;
// blank lines separate paragraphs.
func paragraphs(lines []string) []string {
	var paras []string
	var cur []string
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			if len(cur) > 0 {
				paras = append(paras, strings.Join(cur, " "))
				cur = nil
			}
			continue
		}
		cur = append(cur, t)
	}
	if len(cur) > 0 {
		paras = append(paras, strings.Join(cur, " "))
	}
	return paras
}

// joinLines renders description lines as a single string with blank
// lines preserved as paragraph breaks.
func joinLines(lines []string) string {
	return strings.Join(paragraphs(lines), "\n\n")
}
