// Command to-markdown rewrites the tab-indented outline on the clipboard as
// "*" bullets. It takes no arguments.
package main

import "github.com/gerunddev/outlineclip/internal/commands"

func main() {
	commands.ToMarkdown(nil)
}
