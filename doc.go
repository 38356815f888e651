// Package chord2md converts plain-text chord charts to Markdown with
// inline bracketed chords.
//
// # Quick Start
//
// Create a service, convert a chart, and close when done:
//
//	svc, err := chord2md.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	result, err := svc.Convert(ctx, chord2md.Input{
//	    Text: "Am        C\nHello darkness my old friend",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Markdown) // [Am]Hello dark[C]ness my old friend
//
// The result carries the converted Markdown and any soft diagnostics
// collected along the way (result.Notes). Conversion never fails on
// chart content: lines the converter does not recognize pass through
// unchanged.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Front matter split (a leading YAML block passes through untouched)
//  2. Line classification (blank, section label, chord line, lyric)
//  3. Pairing (each chord line with the lyric line directly under it)
//  4. Splicing (bracketed chords inserted at their character columns)
//
// Chord lines with no lyric underneath keep their spacing and get each
// chord bracketed in place, so grids like "| Am | G | F |" survive.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc, err := chord2md.New(
//	    chord2md.WithTimeout(2 * time.Minute),
//	    chord2md.WithChordQualities("7", "9", "7sus4"),
//	    chord2md.WithMargin(0.75),
//	)
//
// WithChordQualities extends the chord grammar, so charts using
// shorthand like G7 or Cadd9maj7 classify correctly.
//
// # HTML and PDF Output
//
// Preview renders the converted Markdown as a standalone HTML page with
// the chord stylesheet inlined. RenderPDF prints that page to PDF:
//
//	page, err := svc.Preview(ctx, input)
//	pdf, err := svc.RenderPDF(ctx, input)
//
// # Parallel Processing
//
// For batch conversion, use ServicePool to share services across
// workers:
//
//	pool := chord2md.NewServicePool(4)
//	defer pool.Close()
//
//	svc, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(svc)
//	result, err := svc.Convert(ctx, input)
//
// # Browser Requirements
//
// PDF rendering requires Chrome/Chromium. The go-rod library
// automatically downloads a managed Chromium instance on first run
// (~/.cache/rod/browser/). Markdown and HTML output need no browser.
//
// For containers and CI environments the browser launches with the
// sandbox disabled automatically. Use ROD_BROWSER_BIN to point at a
// pre-installed Chrome binary.
package chord2md
