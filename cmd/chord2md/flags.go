package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-chord2md/internal/config"
)

// commonFlags are shared by every subcommand that loads configuration.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags control where converted charts land.
type outputFlags struct {
	output    string
	format    string
	overwrite bool
	stdout    bool
}

// renderFlags tune the HTML preview and PDF page.
type renderFlags struct {
	css    string
	margin float64
}

// convertFlags collects everything the convert command accepts.
type convertFlags struct {
	common  commonFlags
	output  outputFlags
	render  renderFlags
	workers int
	timeout string
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only print errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print timing and pool details")
}

func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVar(&f.format, "format", "", "output format: md, html, or pdf")
	fs.BoolVar(&f.overwrite, "overwrite", false, "replace existing output files")
	fs.BoolVar(&f.stdout, "stdout", false, "write converted output to stdout")
}

func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.css, "css", "", "stylesheet file for html and pdf output")
	fs.Float64Var(&f.margin, "margin", 0, "PDF page margin in inches")
}

// buildConvertFlagSet wires every convert flag into a fresh FlagSet.
// Shared with completion generation so scripts never drift from the
// flags the command actually parses.
func buildConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	addRenderFlags(fs, &f.render)
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel conversions, 0 selects automatically")
	fs.StringVar(&f.timeout, "timeout", "", "per conversion timeout, e.g. 30s or 2m")
	return fs
}

// parseConvertFlags parses args for the convert command and returns the
// remaining positional arguments, the chart files and directories.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := buildConvertFlagSet(f)
	fs.Usage = func() { printConvertUsage(os.Stderr) }
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// validateWorkers bounds the worker flag before the pool is sized.
func validateWorkers(n int) error {
	if n < 0 || n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (want 0 for auto, or 1..%d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
