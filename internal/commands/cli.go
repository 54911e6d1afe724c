package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gerunddev/outlineclip/internal/clipboard"
	"github.com/gerunddev/outlineclip/internal/config"
	"github.com/gerunddev/outlineclip/internal/diff"
	"github.com/gerunddev/outlineclip/internal/logger"
	"github.com/gerunddev/outlineclip/internal/styles"
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands
type commonFlags struct {
	dryRun  bool
	quiet   bool
	verbose bool
	spaces  int
}

// addCommonFlags adds common flags to a FlagSet
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every step to stderr")
	fs.IntVar(&f.spaces, "spaces", 0, "indent with this many spaces instead of the configured token")
}

// parseFlags parses args for the named command
func parseFlags(name string, args []string, withDryRun bool) (*commonFlags, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f := &commonFlags{}

	addCommonFlags(fs, f)
	if withDryRun {
		fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "show the diff without touching the clipboard")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	if f.spaces < 0 {
		return nil, fmt.Errorf("--spaces must not be negative")
	}
	return f, nil
}

// setup loads configuration and builds a runner on the system clipboard
func setup(f *commonFlags) (*Runner, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}

	if f.spaces > 0 {
		cfg.Indent = strings.Repeat(" ", f.spaces)
	}

	level := cfg.Level()
	if f.verbose {
		level = log.DebugLevel
	}

	// Set up structured logging
	var l *logger.Logger
	cleanup := func() {}
	if cfg.LogFile != "" {
		fl, closeFn, err := logger.NewFileLogger(cfg.LogFile, level)
		if err == nil {
			l, cleanup = fl, closeFn
		} else {
			l = logger.NewWithLevel(os.Stderr, level)
			l.Warn("cannot open log file, logging to stderr", "log_file", cfg.LogFile, "error", err)
		}
	} else {
		l = logger.NewWithLevel(os.Stderr, level)
	}
	l = l.WithRun()
	l.ConfigLoaded(config.ConfigPath(), cfg.Indent)

	var port clipboard.Port = clipboard.NewSystem()
	if cfg.OSC52 {
		port = clipboard.WithOSC52(port)
	}

	return &Runner{
		Clipboard: port,
		Indent:    cfg.Indent,
		Log:       l,
		Out:       os.Stdout,
	}, cleanup, nil
}

// ToMarkdown converts an indented outline on the clipboard to "*" bullets
func ToMarkdown(args []string) {
	os.Exit(runConvert("to-markdown", args))
}

// ToIndent converts "*" bullets on the clipboard to an indented outline
func ToIndent(args []string) {
	os.Exit(runConvert("to-indent", args))
}

// Inspect prints the parsed records of the clipboard as YAML
func Inspect(args []string) {
	os.Exit(runInspect(args))
}

func runConvert(name string, args []string) int {
	f, err := parseFlags(name, args, true)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		printError(err)
		return 2
	}

	runner, cleanup, err := setup(f)
	if err != nil {
		printError(err)
		return 1
	}
	defer cleanup()

	result, err := runner.Convert(name, Options{DryRun: f.dryRun})
	if err != nil {
		printError(err)
		return 1
	}

	if f.dryRun {
		printDryRun(os.Stdout, result)
		return 0
	}

	if !f.quiet {
		printSummary(os.Stdout, result)
	}
	return 0
}

// splitInspectArgs separates the direction from the remaining flags.
// A leading -h/--help returns flag.ErrHelp.
func splitInspectArgs(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, errors.New("inspect needs a direction: to-markdown or to-indent")
	}
	switch first := args[0]; {
	case first == "-h" || first == "--help":
		return "", nil, flag.ErrHelp
	case strings.HasPrefix(first, "-"):
		return "", nil, fmt.Errorf("inspect needs a direction before flags, got %s", first)
	}
	return args[0], args[1:], nil
}

func runInspect(args []string) int {
	direction, rest, err := splitInspectArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Println("Usage: outlineclip inspect <to-markdown|to-indent> [--spaces N] [-q] [-v]")
			return 0
		}
		printError(err)
		return 2
	}

	f, err := parseFlags("inspect", rest, false)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		printError(err)
		return 2
	}

	runner, cleanup, err := setup(f)
	if err != nil {
		printError(err)
		return 1
	}
	defer cleanup()

	if err := runner.Inspect(direction); err != nil {
		printError(err)
		return 1
	}
	return 0
}

// printSummary reports a completed conversion
func printSummary(w io.Writer, r *Result) {
	msg := fmt.Sprintf("✓ Converted %d lines,", r.Stats.Lines)
	fmt.Fprintln(w, styles.SuccessStyle.Render(msg)+" "+styles.HighlightStyle.Render(r.Direction.String()))

	details := fmt.Sprintf("  %d marked, max level %d", r.Stats.Marked, r.Stats.MaxLevel)
	if r.Stats.Continuations > 0 {
		details += fmt.Sprintf(", %d continued", r.Stats.Continuations)
	}
	if r.Stats.Passthrough > 0 {
		details += fmt.Sprintf(", %d in <> sections", r.Stats.Passthrough)
	}
	fmt.Fprintln(w, styles.DimStyle.Render(details))
}

// printDryRun shows what a conversion would write
func printDryRun(w io.Writer, r *Result) {
	if !r.Changed() {
		fmt.Fprintln(w, styles.DimStyle.Render("No changes"))
		return
	}

	fmt.Fprintln(w, styles.TitleStyle.Render("Dry run: "+r.Direction.String()))
	fmt.Fprint(w, diff.Render(diff.Unified(r.Input, r.Output, "clipboard", r.Direction.Name)))
	fmt.Fprintln(w, styles.WarningStyle.Render("Dry run: clipboard not modified"))
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
}
