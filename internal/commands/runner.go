package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/gerunddev/outlineclip/internal/clipboard"
	"github.com/gerunddev/outlineclip/internal/logger"
	"github.com/gerunddev/outlineclip/internal/outline"
	"gopkg.in/yaml.v3"
)

// Options control a single conversion
type Options struct {
	DryRun bool // Compute the result but leave the clipboard untouched
}

// Result describes one conversion
type Result struct {
	Direction outline.Direction
	Stats     outline.Stats
	Input     string
	Output    string
	Written   bool
}

// Changed reports whether the conversion altered the text
func (r *Result) Changed() bool {
	return r.Input != r.Output
}

// Runner converts clipboard contents in place
type Runner struct {
	Clipboard clipboard.Port
	Indent    string
	Log       *logger.Logger
	Out       io.Writer
}

// Convert reads the clipboard once, converts it in the named direction and,
// unless this is a dry run, writes the result back once
func (r *Runner) Convert(name string, opts Options) (*Result, error) {
	d, err := outline.Lookup(name, r.Indent)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	input, err := r.Clipboard.ReadText()
	if err != nil {
		r.Log.ClipboardError("read", err)
		return nil, err
	}

	lines := outline.SplitLines(input)
	r.Log.ClipboardRead(len(input), len(lines))

	// Same pipeline as Direction.Convert, split so the raw lines can be summarized
	records := d.ParseLines(lines)
	output := d.Render(records)
	stats := outline.Summarize(lines, records)

	r.Log.ConversionCompleted(d.Name, stats.Lines, stats.Marked, stats.Continuations, time.Since(start))

	result := &Result{
		Direction: d,
		Stats:     stats,
		Input:     input,
		Output:    output,
	}

	if opts.DryRun {
		r.Log.DryRun(d.Name, result.Changed())
		return result, nil
	}

	if err := r.Clipboard.WriteText(output); err != nil {
		r.Log.ClipboardError("write", err)
		return nil, err
	}
	r.Log.ClipboardWritten(len(output))
	result.Written = true

	return result, nil
}

// inspection is the YAML document written by Inspect
type inspection struct {
	Direction string           `yaml:"direction"`
	From      string           `yaml:"from"`
	Records   []outline.Record `yaml:"records"`
}

// Inspect parses the clipboard in the named direction and writes the
// records as YAML. The clipboard is never written.
func (r *Runner) Inspect(name string) error {
	d, err := outline.Lookup(name, r.Indent)
	if err != nil {
		return err
	}

	input, err := r.Clipboard.ReadText()
	if err != nil {
		r.Log.ClipboardError("read", err)
		return err
	}

	doc := inspection{
		Direction: d.Name,
		From:      d.From.Name,
		Records:   d.Parse(input),
	}

	enc := yaml.NewEncoder(r.Out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	return enc.Close()
}
