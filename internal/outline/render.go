package outline

import (
	"strings"
	"unicode"
)

// Render formats a record in this convention
func (c Convention) Render(r Record) string {
	if !c.Separated {
		return strings.Repeat(c.Marker, r.Level) + r.Text
	}

	if r.Level == 0 {
		return r.Text
	}
	if strings.TrimRightFunc(r.Text, unicode.IsSpace) != "" {
		return strings.Repeat(c.Marker, r.Level) + " " + r.Text
	}
	// Marked but blank: nothing to emit
	return ""
}

// RenderAll renders every record in order and concatenates the result
func RenderAll(records []Record, c Convention) string {
	var out strings.Builder
	for _, r := range records {
		out.WriteString(c.Render(r))
	}
	return out.String()
}
