package chord2md

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/alnah/go-chord2md/internal/assets"
	"github.com/alnah/go-chord2md/internal/chordmark"
	"github.com/alnah/go-chord2md/internal/chordpatterns"
)

// htmlRenderer abstracts Markdown to HTML page rendering.
type htmlRenderer interface {
	Render(ctx context.Context, markdown, title, css string) (string, error)
}

// goldmarkRenderer renders Markdown to a standalone HTML page using
// goldmark (pure Go) and the embedded page template.
type goldmarkRenderer struct {
	md  goldmark.Markdown
	tpl *template.Template
}

// previewData fills the embedded page template. Body and CSS are
// typed so html/template inlines them without escaping; the title is
// escaped as usual.
type previewData struct {
	Title string
	CSS   template.CSS
	Body  template.HTML
}

// newGoldmarkRenderer creates a goldmarkRenderer wired with GFM, syntax
// highlighting, and inline [Chord] spans recognized by the given
// grammar.
func newGoldmarkRenderer(patterns *chordpatterns.Set) (*goldmarkRenderer, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // Classes over inline styles so the stylesheet can theme code
				),
			),
			chordmark.New(chordmark.WithMatcher(patterns.IsChord)),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Chart lines are newline-separated, each must render as its own line
			html.WithXHTML(),     // Self-closing tags
		),
	)

	raw, err := assets.EmbeddedLoader{}.Load(assets.TemplatePreview)
	if err != nil {
		return nil, fmt.Errorf("loading page template: %w", err)
	}
	tpl, err := template.New("preview").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	return &goldmarkRenderer{md: md, tpl: tpl}, nil
}

// Render converts Markdown into a complete HTML5 page. Supports context
// cancellation via goroutine + select since goldmark doesn't natively
// take a context.
func (r *goldmarkRenderer) Render(ctx context.Context, markdown, title, css string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		page string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var body bytes.Buffer
		if err := r.md.Convert([]byte(markdown), &body); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}

		var page bytes.Buffer
		data := previewData{
			Title: title,
			CSS:   template.CSS(css),
			Body:  template.HTML(body.String()), // #nosec G203 -- body is goldmark output, not raw user HTML
		}
		if err := r.tpl.Execute(&page, data); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{page: page.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.page, res.err
	}
}
