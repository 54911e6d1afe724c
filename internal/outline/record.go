package outline

// Section marks whether a line sits inside a raw passthrough region
type Section string

const (
	// SectionNone is the default, outside any passthrough region
	SectionNone Section = ""
	// SectionPre is opened by any line containing "<>"
	SectionPre Section = "pre"
)

// Record is one parsed outline line
type Record struct {
	Level   int     `yaml:"level"`
	Text    string  `yaml:"text"`              // Line content without its marker, terminator kept
	Section Section `yaml:"section,omitempty"` // Only tracked by conventions that ask for it
}
