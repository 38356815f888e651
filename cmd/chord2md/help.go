package main

import (
	"fmt"
	"io"
)

// printUsage writes the top-level command summary.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `chord2md converts plain-text chord charts to Markdown, HTML, or PDF.

Usage:
  chord2md [convert] [flags] [files or directories...]
  chord2md version
  chord2md completion <bash|zsh|fish|powershell>
  chord2md doctor [--json]
  chord2md help [command]

With no arguments, chord2md reads a chart from stdin: piped input
converts straight to stdout, and a terminal session prompts for a
chart to paste.

Run 'chord2md help convert' for the conversion flags.
`)
}

// printConvertUsage writes the convert command's flag reference.
func printConvertUsage(w io.Writer) {
	fmt.Fprint(w, `Convert chord charts to Markdown, HTML, or PDF.

Usage:
  chord2md convert [flags] [files or directories...]

Directories are scanned recursively for .txt and .crd charts. Each
chart converts to <name>_converted.<ext>; existing files are kept by
suffixing a timestamp unless --overwrite is set.

Output:
  -o, --output string   output file or directory
      --format string   output format: md, html, or pdf (default md)
      --overwrite       replace existing output files
      --stdout          write converted output to stdout

Rendering:
      --css string      stylesheet file for html and pdf output
      --margin float    PDF page margin in inches (default 0.6)
      --timeout string  per conversion timeout, e.g. 30s or 2m

General:
  -c, --config string   config file name or path
  -w, --workers int     parallel conversions, 0 selects automatically
  -q, --quiet           only print errors
  -v, --verbose         print timing and pool details

Settings load from .chord2md.yaml in the working directory or from
~/.config/chord2md/config.yaml, then CHORD2MD_* environment variables
override the file, then flags override everything.
`)
}

// runHelp prints usage for the named command, or the summary.
func runHelp(args []string, w io.Writer) {
	if len(args) > 0 && args[0] == "convert" {
		printConvertUsage(w)
		return
	}
	printUsage(w)
}
