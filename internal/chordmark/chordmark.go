// Package chordmark extends goldmark with inline chord notation. A
// bracketed token whose content matches the chord grammar, such as
// [Am] or [F#m/C#], renders as a span instead of a link opener; all
// other bracketed text is left to the standard parsers, so links and
// section labels like [Chorus] are unaffected.
package chordmark

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-chord2md/internal/chordpatterns"
)

// DefaultClass is the CSS class applied to rendered chord spans.
const DefaultClass = "chord"

// KindChord identifies chord nodes in the document tree.
var KindChord = ast.NewNodeKind("Chord")

// Chord is an inline node holding one chord symbol.
type Chord struct {
	ast.BaseInline
	Value []byte
}

// Kind implements ast.Node.
func (n *Chord) Kind() ast.NodeKind { return KindChord }

// Dump implements ast.Node.
func (n *Chord) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Value": string(n.Value)}, nil)
}

// Extension wires the chord parser and renderer into a Markdown instance.
type Extension struct {
	matcher func(string) bool
	class   string
}

// Option configures the extension.
type Option func(*Extension)

// WithMatcher replaces the default chord grammar with a custom predicate.
func WithMatcher(m func(string) bool) Option {
	return func(e *Extension) {
		if m != nil {
			e.matcher = m
		}
	}
}

// WithClass sets the CSS class on rendered chord spans.
func WithClass(class string) Option {
	return func(e *Extension) {
		if class != "" {
			e.class = class
		}
	}
}

// New builds the extension. Without options it recognizes the default
// chord grammar and emits spans with the "chord" class.
func New(opts ...Option) *Extension {
	e := &Extension{
		matcher: chordpatterns.Default().IsChord,
		class:   DefaultClass,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ goldmark.Extender = (*Extension)(nil)

// Extend implements goldmark.Extender. The chord parser is registered
// ahead of the link parser (priority 200) so chord brackets never reach
// it; everything the matcher rejects falls through untouched.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&chordParser{matcher: e.matcher}, 150),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&chordRenderer{class: e.class}, 500),
	))
}

type chordParser struct {
	matcher func(string) bool
}

var _ parser.InlineParser = (*chordParser)(nil)

func (p *chordParser) Trigger() []byte {
	return []byte{'['}
}

func (p *chordParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, seg := block.PeekLine()
	end := bytes.IndexByte(line, ']')
	if end <= 1 {
		return nil
	}
	inner := line[1:end]
	if !p.matcher(string(inner)) {
		return nil
	}
	chordSeg := text.NewSegment(seg.Start+1, seg.Start+end)
	block.Advance(end + 1)
	return &Chord{Value: block.Value(chordSeg)}
}

type chordRenderer struct {
	class string
}

var _ renderer.NodeRenderer = (*chordRenderer)(nil)

// RegisterFuncs implements renderer.NodeRenderer.
func (r *chordRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindChord, r.renderChord)
}

func (r *chordRenderer) renderChord(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*Chord)
	_, _ = w.WriteString(`<span class="`)
	_, _ = w.Write(util.EscapeHTML([]byte(r.class)))
	_, _ = w.WriteString(`">`)
	_, _ = w.Write(util.EscapeHTML(n.Value))
	_, _ = w.WriteString(`</span>`)
	return ast.WalkContinue, nil
}
