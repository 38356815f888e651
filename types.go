package chord2md

import (
	"fmt"
	"time"
)

// MaxInputSize caps chart content at 1 MiB. Chord charts are small text
// files; anything larger is almost certainly not a chart.
const MaxInputSize = 1 << 20

// Margin bounds in inches for PDF rendering.
const (
	MinMargin     = 0.0
	MaxMargin     = 3.0
	DefaultMargin = 0.6
)

// Classification tags one source line of a chord chart.
type Classification int

const (
	// Blank is an empty or whitespace-only line.
	Blank Classification = iota
	// StructuralLabel is a bracketed section marker like [Verse 1].
	StructuralLabel
	// ChordOnly is a line of chords, bar separators, parenthetical
	// annotations, and repeat markers, holding at least one chord.
	ChordOnly
	// Lyric is every other non-blank line.
	Lyric
)

// String returns the classification name for logs and test output.
func (c Classification) String() string {
	switch c {
	case Blank:
		return "blank"
	case StructuralLabel:
		return "structural-label"
	case ChordOnly:
		return "chord-only"
	case Lyric:
		return "lyric"
	default:
		return fmt.Sprintf("classification(%d)", int(c))
	}
}

// Note is a soft diagnostic produced during conversion. Notes never fail
// a conversion; they flag spots worth a manual look, like a chord whose
// column lies beyond the end of its lyric line.
type Note struct {
	Line    int // 1-based line number in the source chart
	Message string
}

// Input contains conversion parameters.
type Input struct {
	Text  string // chart content (required)
	Title string // document title for HTML and PDF output (optional)
}

// Validate checks that the input fits the size cap. Empty text is
// valid: conversion is total and an empty chart converts to an empty
// document.
func (in Input) Validate() error {
	if len(in.Text) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(in.Text), MaxInputSize)
	}
	return nil
}

// Result contains conversion output.
type Result struct {
	Markdown string // converted chart, lines joined with \n, no trailing newline
	Notes    []Note // soft diagnostics, nil when the chart converted cleanly
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout    time.Duration
	qualities  []string
	stylesheet string
	margin     float64
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 2 * time.Minute

// WithTimeout sets the rendering timeout for HTML and PDF output.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("chord2md: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithChordQualities extends the chord grammar with extra quality
// tokens, e.g. "7" to accept G7 or "7sus4" to accept A7sus4. Invalid
// tokens surface as an error from New.
func WithChordQualities(qualities ...string) Option {
	return func(s *Service) {
		s.cfg.qualities = append(s.cfg.qualities, qualities...)
	}
}

// WithStylesheet replaces the embedded chord sheet CSS used by Preview
// and RenderPDF.
func WithStylesheet(css string) Option {
	return func(s *Service) {
		s.cfg.stylesheet = css
	}
}

// WithMargin sets the PDF page margin in inches, applied to all sides.
// Out-of-range values surface as an error from New.
func WithMargin(inches float64) Option {
	return func(s *Service) {
		s.cfg.margin = inches
	}
}
