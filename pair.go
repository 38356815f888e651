package chord2md

// itemKind tags one unit of pairing output.
type itemKind int

const (
	// itemPassthrough carries a line unchanged: blanks, section labels,
	// and lyric lines with no chord line above them.
	itemPassthrough itemKind = iota
	// itemPair couples a chord line with the lyric line directly under it.
	itemPair
	// itemStandalone is a chord line with no lyric line under it.
	itemStandalone
)

// item is one unit of work for the splicer.
type item struct {
	kind  itemKind
	chord string // chord line text (pair, standalone)
	lyric string // lyric line text (pair) or the raw line (passthrough)
	line  int    // 1-based source line number of the item's first line
}

// pairLines walks the classified lines once, left to right, greedily
// coupling each chord-only line with an immediately following lyric
// line. A chord line followed by anything else (another chord line, a
// blank, a label, end of input) stays standalone. Each line joins at
// most one pair, so two stacked chord lines never merge into each
// other.
func pairLines(lines []string, tags []Classification) []item {
	items := make([]item, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		if tags[i] != ChordOnly {
			items = append(items, item{kind: itemPassthrough, lyric: lines[i], line: i + 1})
			continue
		}
		if i+1 < len(lines) && tags[i+1] == Lyric {
			items = append(items, item{kind: itemPair, chord: lines[i], lyric: lines[i+1], line: i + 1})
			i++
			continue
		}
		items = append(items, item{kind: itemStandalone, chord: lines[i], line: i + 1})
	}
	return items
}
