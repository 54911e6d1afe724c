package outline

import (
	"os"
	"testing"
)

func TestIndentToMarkdownFixture(t *testing.T) {
	input, err := os.ReadFile("testdata/sample.txt")
	if err != nil {
		t.Fatalf("Failed to read indent fixture: %v", err)
	}
	expected, err := os.ReadFile("testdata/sample.md")
	if err != nil {
		t.Fatalf("Failed to read markdown fixture: %v", err)
	}

	actual := IndentToMarkdown(DefaultIndent).Convert(string(input))
	if actual != string(expected) {
		t.Errorf("Conversion mismatch.\n\nExpected:\n%q\n\nGot:\n%q", expected, actual)
	}
}

func TestMarkdownToIndentFixture(t *testing.T) {
	input, err := os.ReadFile("testdata/sample.md")
	if err != nil {
		t.Fatalf("Failed to read markdown fixture: %v", err)
	}
	expected, err := os.ReadFile("testdata/sample.txt")
	if err != nil {
		t.Fatalf("Failed to read indent fixture: %v", err)
	}

	actual := MarkdownToIndent(DefaultIndent).Convert(string(input))
	if actual != string(expected) {
		t.Errorf("Conversion mismatch.\n\nExpected:\n%q\n\nGot:\n%q", expected, actual)
	}
}

// TestRoundtripIndent tests that indent->markdown->indent preserves content
func TestRoundtripIndent(t *testing.T) {
	inputs := []string{
		"a\n\tb\n\t\tc\n\td\n",
		"root\r\n\tchild\r\n\t\tgrandchild\r\n",
		"one\n\ttwo\n\t\tthree\n\t\t\tfour\n\t\t\t\tfive",
		"",
	}

	toMarkdown := IndentToMarkdown(DefaultIndent)
	toIndent := MarkdownToIndent(DefaultIndent)

	for _, input := range inputs {
		md := toMarkdown.Convert(input)
		back := toIndent.Convert(md)
		if back != input {
			t.Errorf("Roundtrip failed.\n\nOriginal: %q\nMarkdown: %q\nBack:     %q", input, md, back)
		}
	}

	fixture, err := os.ReadFile("testdata/sample.txt")
	if err != nil {
		t.Fatalf("Failed to read indent fixture: %v", err)
	}
	if back := toIndent.Convert(toMarkdown.Convert(string(fixture))); back != string(fixture) {
		t.Errorf("Roundtrip of fixture failed.\n\nOriginal: %q\nBack:     %q", fixture, back)
	}
}

func TestRoundtripCustomIndent(t *testing.T) {
	input := "a\n    b\n        c\n"
	md := IndentToMarkdown("    ").Convert(input)
	if md != "a\n* b\n** c\n" {
		t.Fatalf("Unexpected markdown %q", md)
	}
	if back := MarkdownToIndent("    ").Convert(md); back != input {
		t.Errorf("Roundtrip = %q, want %q", back, input)
	}
}

func TestContinuationToMarkdown(t *testing.T) {
	input := "\t\tfoo  \r\nbar\r\n"
	expected := "** foo  \r\n** bar\r\n"

	if got := IndentToMarkdown(DefaultIndent).Convert(input); got != expected {
		t.Errorf("Convert(%q) = %q, want %q", input, got, expected)
	}
}

func TestContinuationToIndent(t *testing.T) {
	input := "** foo  \r\n** bar\r\n"
	expected := "\t\tfoo  \r\nbar\r\n"

	if got := MarkdownToIndent(DefaultIndent).Convert(input); got != expected {
		t.Errorf("Convert(%q) = %q, want %q", input, got, expected)
	}
}

// TestPlainTextUnchanged tests that marker-free text passes through both pipelines
func TestPlainTextUnchanged(t *testing.T) {
	input := "plain text\nsecond line\r\n\nno terminator"
	for _, d := range Directions(DefaultIndent) {
		if got := d.Convert(input); got != input {
			t.Errorf("%s: Convert(%q) = %q", d.Name, input, got)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		wantErr  bool
	}{
		{"to-markdown", "to-markdown", false},
		{"md", "to-markdown", false},
		{"markdown", "to-markdown", false},
		{"to-indent", "to-indent", false},
		{"indent", "to-indent", false},
		{"org", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Lookup(tt.name, DefaultIndent)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Lookup(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if d.Name != tt.expected {
				t.Errorf("Lookup(%q) = %q, want %q", tt.name, d.Name, tt.expected)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	if got := IndentToMarkdown("").String(); got != "indent → markdown" {
		t.Errorf("String() = %q", got)
	}
}

func TestSummarize(t *testing.T) {
	lines := SplitLines("title\n* a  \r\nmore\r\n<>\n** raw\n</pre>\n")
	records := Parse(lines, Markdown())
	stats := Summarize(lines, records)

	expected := Stats{Lines: 6, Marked: 2, MaxLevel: 2, Continuations: 1, Passthrough: 2}
	if stats != expected {
		t.Errorf("Summarize = %+v, want %+v", stats, expected)
	}
}

func TestDirectionStepsMatchConvert(t *testing.T) {
	input := "a\n\tb  \r\nc\r\n\t\td\n"
	for _, d := range Directions(DefaultIndent) {
		lines := SplitLines(input)
		if got := d.Render(d.ParseLines(lines)); got != d.Convert(input) {
			t.Errorf("%s: step-wise result %q differs from Convert %q", d.Name, got, d.Convert(input))
		}
	}
}
