package outline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseIndent(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []Record
	}{
		{
			name:  "levels from tabs",
			lines: []string{"a\n", "\tb\n", "\t\tc\n"},
			expected: []Record{
				{Level: 0, Text: "a\n"},
				{Level: 1, Text: "b\n"},
				{Level: 2, Text: "c\n"},
			},
		},
		{
			name:  "continuation carries level to unmarked line",
			lines: []string{"\t\tfoo  \r\n", "bar\r\n"},
			expected: []Record{
				{Level: 2, Text: "foo  \r\n"},
				{Level: 2, Text: "bar\r\n"},
			},
		},
		{
			name:  "continuation overrides marker count",
			lines: []string{"\tfoo  \r\n", "\t\t\tbar\r\n"},
			expected: []Record{
				{Level: 1, Text: "foo  \r\n"},
				{Level: 1, Text: "bar\r\n"},
			},
		},
		{
			name:  "carried level is consumed once",
			lines: []string{"\t\tfoo  \r\n", "bar\r\n", "baz\r\n"},
			expected: []Record{
				{Level: 2, Text: "foo  \r\n"},
				{Level: 2, Text: "bar\r\n"},
				{Level: 0, Text: "baz\r\n"},
			},
		},
		{
			name:  "chained continuations",
			lines: []string{"\tfoo  \r\n", "bar  \r\n", "baz\r\n"},
			expected: []Record{
				{Level: 1, Text: "foo  \r\n"},
				{Level: 1, Text: "bar  \r\n"},
				{Level: 1, Text: "baz\r\n"},
			},
		},
		{
			name:  "two spaces with lf only is not a continuation",
			lines: []string{"\tfoo  \n", "bar\n"},
			expected: []Record{
				{Level: 1, Text: "foo  \n"},
				{Level: 0, Text: "bar\n"},
			},
		},
		{
			name:  "sections not tracked",
			lines: []string{"<>\n", "\tx\n"},
			expected: []Record{
				{Level: 0, Text: "<>\n"},
				{Level: 1, Text: "x\n"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.lines, Indent(DefaultIndent))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []Record
	}{
		{
			name:  "levels from asterisks",
			lines: []string{"title\n", "* a\n", "** b\n"},
			expected: []Record{
				{Level: 0, Text: "title\n"},
				{Level: 1, Text: "a\n"},
				{Level: 2, Text: "b\n"},
			},
		},
		{
			name:  "continuation forces top level",
			lines: []string{"** foo  \r\n", "*** bar\r\n", "* baz\r\n"},
			expected: []Record{
				{Level: 2, Text: "foo  \r\n"},
				{Level: 0, Text: "bar\r\n"},
				{Level: 1, Text: "baz\r\n"},
			},
		},
		{
			name:  "continuation on unmarked line",
			lines: []string{"* foo  \r\n", "bar\r\n"},
			expected: []Record{
				{Level: 1, Text: "foo  \r\n"},
				{Level: 0, Text: "bar\r\n"},
			},
		},
		{
			name:  "pre section is tagged",
			lines: []string{"* a\n", "<>\n", "** code\n", "</pre>\n", "* b\n"},
			expected: []Record{
				{Level: 1, Text: "a\n"},
				{Level: 0, Text: "<>\n", Section: SectionPre},
				{Level: 2, Text: "code\n", Section: SectionPre},
				{Level: 0, Text: "</pre>\n"},
				{Level: 1, Text: "b\n"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.lines, Markdown())
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseKeepsEveryLine(t *testing.T) {
	lines := []string{"* a\n", "\n", "plain\n", "** \n", "last"}
	got := Parse(lines, Markdown())
	if len(got) != len(lines) {
		t.Fatalf("Expected %d records, got %d", len(lines), len(got))
	}
	if got[4].Text != "last" {
		t.Errorf("Expected last record text %q, got %q", "last", got[4].Text)
	}
}
