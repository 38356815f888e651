package chord2md

import (
	"fmt"
	"strings"

	"github.com/alnah/go-chord2md/internal/chordpatterns"
)

// convertChart runs the core pipeline over a chart: split off front
// matter, classify, pair, splice, reassemble. The front matter block,
// when present, passes through untouched ahead of the converted body.
func convertChart(text string, patterns *chordpatterns.Set) (string, []Note) {
	block, body := splitFrontMatter(text)

	lines := splitLines(body)
	c := &classifier{patterns: patterns}
	tags := c.classifyAll(lines)

	out := make([]string, 0, len(lines))
	var notes []Note
	for _, it := range pairLines(lines, tags) {
		switch it.kind {
		case itemPair:
			merged, overflow := spliceMerge(it.chord, it.lyric, patterns)
			out = append(out, merged)
			for _, tok := range overflow {
				notes = append(notes, Note{
					Line:    it.line,
					Message: fmt.Sprintf("chord %s at column %d reaches past the lyric below; appended at end", tok.Text, tok.Col),
				})
			}
		case itemStandalone:
			out = append(out, spliceStandalone(it.chord, patterns))
		default:
			out = append(out, it.lyric)
		}
	}

	markdown := strings.Join(out, "\n")
	if block == "" {
		return markdown, notes
	}
	if markdown == "" {
		return block, notes
	}
	return block + "\n" + markdown, notes
}

// splitLines splits chart text into lines without a phantom trailing
// empty line when the text ends in a newline. CRLF and bare CR endings
// are normalized first so charts saved on any platform convert the
// same way.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
