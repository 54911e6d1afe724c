package diff

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified returns a unified diff between two clipboard snapshots.
// Identical inputs produce an empty string.
func Unified(before, after, fromName, toName string) string {
	if before == after {
		return ""
	}
	edits := myers.ComputeEdits(span.URIFromPath(fromName), before, after)
	return fmt.Sprint(gotextdiff.ToUnified(fromName, toName, before, edits))
}

// Render wraps a unified diff in a diff code fence and renders it for the terminal
func Render(unified string) string {
	// Wrap in diff code fence for syntax highlighting (+ in green, - in red)
	fenced := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		// Fallback to plain diff if glamour fails
		return fenced
	}

	rendered, err := renderer.Render(fenced)
	if err != nil {
		// Fallback to plain diff if rendering fails
		return fenced
	}

	return rendered
}
