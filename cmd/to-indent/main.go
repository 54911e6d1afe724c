// Command to-indent rewrites the "*" bullet outline on the clipboard as a
// tab-indented outline. It takes no arguments.
package main

import "github.com/gerunddev/outlineclip/internal/commands"

func main() {
	commands.ToIndent(nil)
}
