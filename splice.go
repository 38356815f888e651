package chord2md

import (
	"regexp"
	"slices"
	"strings"

	"github.com/alnah/go-chord2md/internal/chordpatterns"
)

// segmentPattern splits a line into alternating runs of non-space and
// space characters, so rebuilding the line preserves spacing exactly.
var segmentPattern = regexp.MustCompile(`\S+|\s+`)

// spliceMerge inserts each chord of chordLine into lyricLine as a
// bracketed token at the chord's character column. Chords apply in
// ascending column order with an offset tracking the growth from
// earlier insertions, so every chord lands where it visually sits in
// the source. A chord whose column lies beyond the lyric's end is
// appended at the end and returned in overflow so the caller can
// report it. Columns and offsets count runes, not bytes, keeping
// accented lyrics aligned.
func spliceMerge(chordLine, lyricLine string, patterns *chordpatterns.Set) (merged string, overflow []chordpatterns.Token) {
	tokens := patterns.FindChords(chordLine)
	if len(tokens) == 0 {
		return lyricLine, nil
	}

	lyric := []rune(lyricLine)
	offset := 0
	for _, tok := range tokens {
		at := tok.Col + offset
		if at > len(lyric) {
			at = len(lyric)
			overflow = append(overflow, tok)
		}
		bracketed := []rune("[" + tok.Text + "]")
		lyric = slices.Insert(lyric, at, bracketed...)
		offset += len(bracketed)
	}
	return string(lyric), overflow
}

// spliceStandalone brackets each chord of a standalone chord line in
// place. Whitespace runs and non-chord tokens (bars, annotations,
// repeat markers) pass through verbatim, so grids keep their shape.
func spliceStandalone(line string, patterns *chordpatterns.Set) string {
	var b strings.Builder
	for _, segment := range segmentPattern.FindAllString(line, -1) {
		if strings.TrimSpace(segment) != "" && patterns.IsChord(segment) {
			b.WriteString("[")
			b.WriteString(segment)
			b.WriteString("]")
			continue
		}
		b.WriteString(segment)
	}
	return b.String()
}
