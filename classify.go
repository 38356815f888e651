package chord2md

import (
	"strings"

	"github.com/alnah/go-chord2md/internal/chordpatterns"
)

// classifier tags source lines using a compiled chord grammar.
type classifier struct {
	patterns *chordpatterns.Set
}

// classify tags a single line. Order matters: blank wins over
// everything, a bracketed section label wins over token scanning. A
// line is chord-only when every whitespace-separated token is a chord,
// a bar separator, a parenthetical annotation, or a repeat marker, and
// at least one token is a chord. Any other token makes the line a
// lyric, so "Amazing grace" never reads as a chord line even though Am
// alone would.
func (c *classifier) classify(line string) Classification {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Blank
	}
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		return StructuralLabel
	}

	chords := 0
	for _, token := range strings.Fields(line) {
		switch {
		case c.patterns.IsChord(token):
			chords++
		case c.patterns.IsBar(token), c.patterns.IsAnnotation(token), c.patterns.IsRepeat(token):
			// allowed on a chord line, never counts as a chord
		default:
			return Lyric
		}
	}
	if chords == 0 {
		return Lyric
	}
	return ChordOnly
}

// classifyAll tags every line of a chart in order.
func (c *classifier) classifyAll(lines []string) []Classification {
	tags := make([]Classification, len(lines))
	for i, line := range lines {
		tags[i] = c.classify(line)
	}
	return tags
}
