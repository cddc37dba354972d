// Package main is a small driver for the textcore editing engine: it
// loads a file, wraps it, optionally overlays diagnostics, and prints
// the result. Useful for inspecting wrap and marker behavior without a
// renderer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/textcore/config"
	"github.com/dshills/textcore/editor"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath string
	diagPath   string
	wrapWidth  int
	file       string
}

func run() int {
	opts, ok := parseFlags()
	if !ok {
		return 2
	}

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	if opts.wrapWidth > 0 {
		cfg.WrapWidth = opts.wrapWidth
	}

	text, err := os.ReadFile(opts.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read file: %v\n", err)
		return 1
	}

	e := editor.New(
		editor.WithText(string(text)),
		editor.WithOptions(cfg),
		editor.WithURI("file://"+opts.file),
	)

	if opts.diagPath != "" {
		payload, err := os.ReadFile(opts.diagPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read diagnostics: %v\n", err)
			return 1
		}
		if err := e.PublishDiagnostics(payload); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to parse diagnostics: %v\n", err)
			return 1
		}
	}

	printView(e)
	printMarkers(e)
	return 0
}

func printView(e *editor.Editor) {
	fmt.Printf("%d lines, %d soft lines, longest row %d (%d bytes)\n\n",
		e.LineCount(), e.SoftLineCount(), e.LongestRow().Row, e.LongestRow().Len)

	for row := 0; row < e.LineCount(); row++ {
		layout, ok := e.Layout(row)
		if !ok {
			continue
		}
		item := layout.Item()
		for n := 0; n < item.SegmentCount(); n++ {
			if n == 0 {
				fmt.Printf("%4d | %s\n", row+1, item.Segment(n))
			} else {
				fmt.Printf("     | %s\n", item.Segment(n))
			}
		}
	}
}

func printMarkers(e *editor.Editor) {
	markers := e.Markers()
	if len(markers) == 0 {
		return
	}

	snap := e.Buffer().Snapshot()
	fmt.Printf("\n%d markers:\n", len(markers))
	for _, m := range markers {
		rng := m.Resolve(snap)
		fmt.Printf("  %s %d:%d [%d..%d) %s\n",
			m.Severity, m.Start.Line, m.Start.Column, rng.Start, rng.End, m.Message)
		if m.Source != "" {
			fmt.Printf("    source: %s\n", m.Source)
		}
	}

	fmt.Printf("  worst: %s\n", e.MaxSeverity())
}

func parseFlags() (options, bool) {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (TOML or YAML)")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.diagPath, "diagnostics", "", "Path to a publishDiagnostics JSON payload")
	flag.StringVar(&opts.diagPath, "d", "", "Path to a publishDiagnostics JSON payload (shorthand)")
	flag.IntVar(&opts.wrapWidth, "width", 0, "Wrap width in cells (0 disables wrapping)")
	flag.IntVar(&opts.wrapWidth, "w", 0, "Wrap width in cells (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Printf("textcore %s (%s)\n", version, commit)
		return opts, false
	}
	if flag.NArg() != 1 {
		usage()
		return opts, false
	}
	opts.file = flag.Arg(0)
	return opts, true
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: textcore [options] <file>\n\nOptions:\n")
	flag.PrintDefaults()
}
