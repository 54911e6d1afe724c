package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultIndent is the indent token used when none is configured
const DefaultIndent = "\t"

// CarryPolicy decides which level a continued line inherits
type CarryPolicy int

const (
	// CarryLevel repeats the level of the line that ended with the terminator
	CarryLevel CarryPolicy = iota
	// CarryZero forces the continued line to the top level
	CarryZero
)

// Convention describes one outline notation: which token marks a level,
// whether a separator must follow the marker run, and how continuations carry.
type Convention struct {
	Name          string
	Marker        string
	Separated     bool // Marker run must be followed by one whitespace character
	Carry         CarryPolicy
	TrackSections bool

	re *regexp.Regexp
}

// NewConvention builds a convention and compiles its line pattern
func NewConvention(name, marker string, separated bool, carry CarryPolicy, trackSections bool) Convention {
	// Pattern: [marker run, rest]; the separator is checked on rest
	// (?s) keeps the line terminator inside the rest group
	pattern := `(?s)^((?:` + regexp.QuoteMeta(marker) + `)+)(.*)$`

	return Convention{
		Name:          name,
		Marker:        marker,
		Separated:     separated,
		Carry:         carry,
		TrackSections: trackSections,
		re:            regexp.MustCompile(pattern),
	}
}

// Markdown returns the asterisk convention: "** text"
func Markdown() Convention {
	return NewConvention("markdown", "*", true, CarryZero, true)
}

// Indent returns the indent convention for the given token, "\t" if empty
func Indent(token string) Convention {
	if token == "" {
		token = DefaultIndent
	}
	return NewConvention("indent", token, false, CarryLevel, false)
}

// Recognize extracts the level marker at the start of line.
// Lines without a marker report ok=false, level 0 and the whole line as rest.
func (c Convention) Recognize(line string) (level int, rest string, ok bool) {
	m := c.re.FindStringSubmatch(line)
	if m == nil {
		return 0, line, false
	}

	rest = m[2]
	if c.Separated {
		r, size := utf8.DecodeRuneInString(rest)
		if !isSeparator(r, size) {
			return 0, line, false
		}
		rest = rest[size:]
	}

	return strings.Count(m[1], c.Marker), rest, true
}

// isSeparator accepts any Unicode space except line terminators,
// which must stay in the rest of the line
func isSeparator(r rune, size int) bool {
	if size == 0 || r == '\r' || r == '\n' {
		return false
	}
	return unicode.IsSpace(r)
}

// Carried returns the level the line after a continuation inherits
func (c Convention) Carried(level int) int {
	if c.Carry == CarryZero {
		return 0
	}
	return level
}
