package outline

import "fmt"

// Direction pairs the convention text is read in with the one it is written in
type Direction struct {
	Name    string
	Aliases []string
	From    Convention
	To      Convention
}

// IndentToMarkdown reads an indented outline and writes "*" bullets
func IndentToMarkdown(indent string) Direction {
	return Direction{
		Name:    "to-markdown",
		Aliases: []string{"md", "markdown"},
		From:    Indent(indent),
		To:      Markdown(),
	}
}

// MarkdownToIndent reads "*" bullets and writes an indented outline
func MarkdownToIndent(indent string) Direction {
	return Direction{
		Name:    "to-indent",
		Aliases: []string{"indent"},
		From:    Markdown(),
		To:      Indent(indent),
	}
}

// Directions lists every supported conversion
func Directions(indent string) []Direction {
	return []Direction{IndentToMarkdown(indent), MarkdownToIndent(indent)}
}

// Lookup finds a direction by name or alias
func Lookup(name, indent string) (Direction, error) {
	for _, d := range Directions(indent) {
		if d.Name == name {
			return d, nil
		}
		for _, alias := range d.Aliases {
			if alias == name {
				return d, nil
			}
		}
	}
	return Direction{}, fmt.Errorf("unknown direction %q", name)
}

// Parse splits text into lines and parses them in the source convention
func (d Direction) Parse(text string) []Record {
	return d.ParseLines(SplitLines(text))
}

// ParseLines parses already split lines in the source convention
func (d Direction) ParseLines(lines []string) []Record {
	return Parse(lines, d.From)
}

// Render writes records in the target convention
func (d Direction) Render(records []Record) string {
	return RenderAll(records, d.To)
}

// Convert runs the whole pipeline over text
func (d Direction) Convert(text string) string {
	return d.Render(d.Parse(text))
}

// String returns a human readable label, e.g. "indent → markdown"
func (d Direction) String() string {
	return d.From.Name + " → " + d.To.Name
}

// Stats summarizes a parsed outline
type Stats struct {
	Lines         int
	Marked        int // Lines with level > 0
	MaxLevel      int
	Continuations int
	Passthrough   int // Lines inside a pre section
}

// Summarize computes stats for records parsed from lines
func Summarize(lines []string, records []Record) Stats {
	s := Stats{Lines: len(records)}
	for _, r := range records {
		if r.Level > 0 {
			s.Marked++
		}
		if r.Level > s.MaxLevel {
			s.MaxLevel = r.Level
		}
		if r.Section != SectionNone {
			s.Passthrough++
		}
	}
	for _, line := range lines {
		if IsContinued(line) {
			s.Continuations++
		}
	}
	return s
}
