package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/outlineclip/internal/commands"
	"github.com/gerunddev/outlineclip/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "to-markdown", "md":
		commands.ToMarkdown(os.Args[2:])
	case "to-indent", "indent":
		commands.ToIndent(os.Args[2:])
	case "inspect":
		commands.Inspect(os.Args[2:])
	case "version", "--version":
		fmt.Printf("outlineclip v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`outlineclip - Convert the outline on the clipboard between "*" bullets and indentation

Usage:
  outlineclip <command> [options]

Commands:
  to-markdown, md      Tab-indented outline → "*" bullets
  to-indent, indent    "*" bullets → tab-indented outline
  inspect <direction>  Print the parsed lines as YAML, clipboard untouched
  version              Show version information
  help                 Show this help message

Options:
  -n, --dry-run        Show a diff instead of writing the clipboard
  -q, --quiet          Only show errors
  -v, --verbose        Log every step to stderr
      --spaces N       Indent with N spaces instead of the configured token

A line ending in two spaces and CRLF continues the same bullet on the next line.

Examples:
  outlineclip to-markdown
  outlineclip to-indent --spaces 4
  outlineclip md --dry-run
  outlineclip inspect to-indent

Configuration:
  Config file: %s
`, config.ConfigPath())
	fmt.Print(usage)
}
