// Package google parses Google-style docstrings into structured
// records. The grammar follows the Google Python style guide: a
// leading summary and description, then sections introduced by
// recognized headers such as "Args:" and "Returns:", each with an
// indented body of entries.
package google

import (
	"strings"
	"unicode"

	"github.com/jdidion/docparse"
)

// Ensure Parser implements docparse.Parser.
var _ docparse.Parser = (*Parser)(nil)

// Canonical section names. Headers resolve to these through the
// alias table before dispatch.
const (
	sectionParameters       = "Parameters"
	sectionKeywordArguments = "Keyword Arguments"
	sectionOtherParameters  = "Other Parameters"
	sectionMethods          = "Methods"
	sectionWarns            = "Warns"
	sectionReturns          = "Returns"
	sectionYields           = "Yields"
	sectionRaises           = "Raises"
	sectionExamples         = "Examples"
)

// aliases maps accepted header text, case-sensitively, to canonical
// section names. This map is the recognized header set: a line whose
// text is not a key here is never a section boundary. Prose sections
// map to themselves and parse as paragraph lists.
var aliases = map[string]string{
	"Args":              sectionParameters,
	"Arguments":         sectionParameters,
	"Parameters":        sectionParameters,
	"Keyword Args":      sectionKeywordArguments,
	"Keyword Arguments": sectionKeywordArguments,
	"Other Parameters":  sectionOtherParameters,
	"Methods":           sectionMethods,
	"Warns":             sectionWarns,
	"Return":            sectionReturns,
	"Returns":           sectionReturns,
	"Yield":             sectionYields,
	"Yields":            sectionYields,
	"Raises":            sectionRaises,

	"Attention":  "Attention",
	"Caution":    "Caution",
	"Danger":     "Danger",
	"Error":      "Error",
	"Example":    sectionExamples,
	"Examples":   sectionExamples,
	"Hint":       "Hint",
	"Important":  "Important",
	"Note":       "Notes",
	"Notes":      "Notes",
	"References": "References",
	"See also":   "See also",
	"Tip":        "Tip",
	"Todo":       "Todo",
	"Warning":    "Warning",
	"Warnings":   "Warning",
}

// SectionHeader reports whether a line starts a new section,
// returning the canonical section name. A header must sit at the
// base indentation (flush left once the docstring is normalized) and
// its text, minus the trailing colon, must be a recognized header.
// Indented colon-terminated lines inside prose or section bodies are
// body text, not boundaries.
func SectionHeader(line string) (string, bool) {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return "", false
	}
	trimmed := strings.TrimRight(line, " \t")
	if !strings.HasSuffix(trimmed, ":") {
		return "", false
	}
	name, ok := aliases[strings.TrimSuffix(trimmed, ":")]
	return name, ok
}

// DirectiveHeader reports whether a line opens a reST directive block
// such as ".. _PEP 484:", returning the directive name. The name may
// contain word characters and spaces, and the line must end with a
// single colon.
func DirectiveHeader(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, ".. ")
	if !ok {
		return "", false
	}
	name, ok := strings.CutSuffix(strings.TrimRight(rest, " \t"), ":")
	if !ok || name == "" {
		return "", false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != ' ' {
			return "", false
		}
	}
	return name, true
}

// Parser parses Google-style docstrings. The zero value is usable
// and safe for concurrent use; Parse holds no state between calls.
type Parser struct{}

// New creates a new Parser.
func New() *Parser {
	return &Parser{}
}

// Parse parses raw docstring text. It is total: malformed input
// degrades to a partial record and never produces an error. Empty or
// whitespace-only input yields an empty record.
func (p *Parser) Parse(text string) *docparse.DocString {
	doc := &docparse.DocString{}

	text = docparse.Cleandoc(text)
	if text == "" {
		return doc
	}

	section := "" // "" is the leading summary/description block
	directive := false
	var body []string

	flush := func() {
		dispatch(doc, section, directive, body)
		body = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if name, ok := SectionHeader(line); ok {
			flush()
			section, directive = name, false
			continue
		}
		if name, ok := DirectiveHeader(line); ok {
			flush()
			section, directive = name, true
			continue
		}
		body = append(body, line)
	}
	flush()

	return doc
}

// dispatch parses a completed section body into its slot on the
// record. A section that repeats merges with (fields, raises) or
// replaces (returns, yields, prose) the earlier occurrence.
func dispatch(doc *docparse.DocString, section string, directive bool, body []string) {
	if directive {
		paras := paragraphs(body)
		if len(paras) == 0 {
			return
		}
		if doc.Directives == nil {
			doc.Directives = make(map[string][]string)
		}
		doc.Directives[section] = paras
		return
	}

	switch section {
	case "":
		paras := paragraphs(body)
		if len(paras) == 0 {
			return
		}
		doc.Summary = paras[0]
		doc.Description = strings.Join(paras[1:], "\n\n")
	case sectionParameters:
		doc.Parameters = mergeFields(doc.Parameters, parseFields(body))
	case sectionKeywordArguments:
		doc.KeywordArguments = mergeFields(doc.KeywordArguments, parseFields(body))
	case sectionOtherParameters:
		doc.OtherParameters = mergeFields(doc.OtherParameters, parseFields(body))
	case sectionMethods:
		doc.Methods = mergeFields(doc.Methods, parseFields(body))
	case sectionWarns:
		doc.Warns = mergeFields(doc.Warns, parseFields(body))
	case sectionReturns:
		doc.Returns = parseTyped(body)
	case sectionYields:
		doc.Yields = parseTyped(body)
	case sectionRaises:
		for name, desc := range parseRaises(body) {
			if doc.Raises == nil {
				doc.Raises = make(map[string]string)
			}
			doc.Raises[name] = desc
		}
	case sectionExamples:
		lines := verbatim(body)
		if len(lines) == 0 {
			return
		}
		if doc.Sections == nil {
			doc.Sections = make(map[string][]string)
		}
		doc.Sections[section] = lines
	default:
		paras := paragraphs(body)
		if len(paras) == 0 {
			return
		}
		if doc.Sections == nil {
			doc.Sections = make(map[string][]string)
		}
		doc.Sections[section] = paras
	}
}
