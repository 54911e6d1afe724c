package outline

import "strings"

// ContinuationTerminator at the end of a line makes the next line
// continue the same bullet instead of computing its own level
const ContinuationTerminator = "  \r\n"

// Parse turns raw lines into records using the given convention
func Parse(lines []string, c Convention) []Record {
	records := make([]Record, 0, len(lines))

	section := SectionNone
	pending := false
	nextLevel := 0

	for _, line := range lines {
		if c.TrackSections {
			section = NextSection(line, section)
		}

		level, text, _ := c.Recognize(line)

		if pending {
			level = nextLevel
			pending = false
		}

		if IsContinued(line) {
			nextLevel = c.Carried(level)
			pending = true
		}

		records = append(records, Record{Level: level, Text: text, Section: section})
	}

	return records
}

// IsContinued reports whether line ends with the continuation terminator
func IsContinued(line string) bool {
	return strings.HasSuffix(line, ContinuationTerminator)
}
