package outline

import "strings"

// NextSection returns the section a line belongs to given the previous one.
// Any line containing "<>" opens a pre section whatever the tag name.
func NextSection(line string, prev Section) Section {
	if strings.Contains(line, "<>") {
		return SectionPre
	}
	if prev == SectionNone {
		return SectionNone
	}
	if strings.Contains(line, "</"+string(prev)+">") {
		return SectionNone
	}
	return prev
}

// Sections computes the section of every line
func Sections(lines []string) []Section {
	sections := make([]Section, len(lines))
	current := SectionNone
	for i, line := range lines {
		current = NextSection(line, current)
		sections[i] = current
	}
	return sections
}
