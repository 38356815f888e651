package main

import (
	"errors"
	"os"

	chord2md "github.com/alnah/go-chord2md"
	"github.com/alnah/go-chord2md/internal/chordpatterns"
	"github.com/alnah/go-chord2md/internal/config"
)

// Exit codes distinguish failure classes so scripts can branch on them.
const (
	ExitSuccess = 0 // conversion completed
	ExitGeneral = 1 // unexpected failure
	ExitUsage   = 2 // bad flags, bad config, bad input values
	ExitIO      = 3 // charts unreadable or output unwritable
	ExitBrowser = 4 // Chromium missing or PDF rendering failed
)

// CLI-level sentinel errors. Library errors carry their own sentinels;
// these cover failures that only the command layer can detect.
var (
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
	ErrUnsupportedShell   = errors.New("unsupported shell")
	ErrOutputConflict     = errors.New("output conflict")
	ErrReadChart          = errors.New("reading chart")
	ErrWriteOutput        = errors.New("writing output")
	ErrNoCharts           = errors.New("no chart files found")
)

// exitCodeFor maps an error to a process exit code by inspecting the
// wrapped sentinel chain.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, chord2md.ErrBrowserConnect) ||
		errors.Is(err, chord2md.ErrPageCreate) ||
		errors.Is(err, chord2md.ErrPageLoad) ||
		errors.Is(err, chord2md.ErrPDFGeneration) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadChart) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoCharts) {
		return ExitIO
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, chordpatterns.ErrBadQuality) ||
		errors.Is(err, chord2md.ErrInvalidMargin) ||
		errors.Is(err, chord2md.ErrInputTooLarge) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, ErrOutputConflict) {
		return ExitUsage
	}

	return ExitGeneral
}
