package chord2md

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-chord2md/internal/assets"
	"github.com/alnah/go-chord2md/internal/chordpatterns"
	"github.com/alnah/go-chord2md/internal/fileutil"
)

// Service converts chord charts to Markdown, HTML, and PDF. Create one
// with New, reuse it across conversions, and Close it to release the
// browser if PDF rendering launched one. A Service is not safe for
// concurrent use; use ServicePool to run conversions in parallel.
type Service struct {
	cfg      serviceConfig
	patterns *chordpatterns.Set
	html     htmlRenderer
	pdf      pdfRenderer
}

// New creates a Service with the given options.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg: serviceConfig{
			timeout: defaultTimeout,
			margin:  DefaultMargin,
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.cfg.margin < MinMargin || s.cfg.margin > MaxMargin {
		return nil, fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)",
			ErrInvalidMargin, s.cfg.margin, MinMargin, MaxMargin)
	}

	if len(s.cfg.qualities) > 0 {
		set, err := chordpatterns.Compile(s.cfg.qualities)
		if err != nil {
			return nil, fmt.Errorf("compiling chord grammar: %w", err)
		}
		s.patterns = set
	} else {
		s.patterns = chordpatterns.Default()
	}

	if s.cfg.stylesheet == "" {
		css, err := assets.EmbeddedLoader{}.Load(assets.StyleChordSheet)
		if err != nil {
			return nil, fmt.Errorf("loading chord stylesheet: %w", err)
		}
		s.cfg.stylesheet = string(css)
	}

	if s.html == nil {
		r, err := newGoldmarkRenderer(s.patterns)
		if err != nil {
			return nil, err
		}
		s.html = r
	}
	if s.pdf == nil {
		s.pdf = newRodRenderer(s.cfg.timeout, s.cfg.margin)
	}
	return s, nil
}

// Convert turns a plain-text chord chart into Markdown with inline
// bracketed chords. Conversion is total: any text within the size cap
// yields a valid document, and alignment problems surface as soft
// Notes in the result rather than errors.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	markdown, notes := convertChart(input.Text, s.patterns)
	return &Result{Markdown: markdown, Notes: notes}, nil
}

// Preview converts a chart and renders the result as a standalone HTML
// page with the chord stylesheet inlined. Front matter feeds the page
// title and is dropped from the rendered body.
func (s *Service) Preview(ctx context.Context, input Input) (string, error) {
	res, err := s.Convert(ctx, input)
	if err != nil {
		return "", err
	}

	_, body := splitFrontMatter(res.Markdown)

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()
	return s.html.Render(ctx, body, documentTitle(input), s.cfg.stylesheet)
}

// RenderPDF converts a chart and prints the HTML preview to PDF with
// headless Chrome. The first call launches the browser; Close releases
// it.
func (s *Service) RenderPDF(ctx context.Context, input Input) ([]byte, error) {
	page, err := s.Preview(ctx, input)
	if err != nil {
		return nil, err
	}

	tmp, err := fileutil.WriteTempFile("chord2md-*.html", []byte(page))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	defer func() { _ = os.Remove(tmp) }()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()
	return s.pdf.RenderFromFile(ctx, tmp)
}

// Close releases resources held by the Service, including the browser
// when one was launched. Safe to call more than once.
func (s *Service) Close() error {
	if s.pdf == nil {
		return nil
	}
	return s.pdf.Close()
}
