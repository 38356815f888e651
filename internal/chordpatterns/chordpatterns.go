// Package chordpatterns holds the compiled token grammar for chord chart
// recognition: chord tokens, bar separators, parenthetical annotations,
// and bare repeat markers. The chord grammar is data-driven; the
// quality/extension vocabulary is a plain list compiled into a single
// pattern so new tokens can be added without touching the matching code.
package chordpatterns

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for grammar compilation.
var (
	ErrBadQuality = errors.New("chordpatterns: invalid quality token")
)

// MaxQualityLength caps user-supplied quality tokens.
const MaxQualityLength = 10

// defaultQualities is the closed set of quality/extension keywords the
// grammar recognizes out of the box. Each may be followed by digits
// (7, 9, 11, 13) in the compiled pattern.
var defaultQualities = []string{"maj", "min", "m", "dim", "aug", "sus", "add"}

// qualityTokenPattern restricts extra qualities to letters and digits so
// user input cannot corrupt the compiled expression.
var qualityTokenPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// barPattern matches bar separator tokens like "|" or "||".
var barPattern = regexp.MustCompile(`^\|+$`)

// annotationPattern matches parenthetical annotations like "(x2)".
var annotationPattern = regexp.MustCompile(`^\(.*\)$`)

// repeatPattern matches bare repeat markers like "x2" or "X3". Charts
// write these after instrumental bars without parentheses.
var repeatPattern = regexp.MustCompile(`^[xX]\d+$`)

// tokenPattern splits a line into non-space runs.
var tokenPattern = regexp.MustCompile(`\S+`)

// Set holds the compiled patterns for one grammar configuration.
// The zero value is not usable; obtain a Set from Default or Compile.
type Set struct {
	chord      *regexp.Regexp
	bar        *regexp.Regexp
	annotation *regexp.Regexp
}

// defaultSet is compiled once at init from the built-in qualities.
var defaultSet = mustCompile(nil)

// DefaultQualities returns a copy of the built-in quality vocabulary.
func DefaultQualities() []string {
	out := make([]string, len(defaultQualities))
	copy(out, defaultQualities)
	return out
}

// Default returns the grammar compiled from the built-in qualities.
// The returned Set is shared and safe for concurrent use.
func Default() *Set {
	return defaultSet
}

// Compile builds a grammar Set from the built-in qualities plus extras.
// Extra tokens must be letters and digits only; duplicates are ignored.
// Returns ErrBadQuality for tokens that would corrupt the pattern.
func Compile(extraQualities []string) (*Set, error) {
	qualities := make([]string, 0, len(defaultQualities)+len(extraQualities))
	qualities = append(qualities, defaultQualities...)

	seen := make(map[string]bool, len(qualities))
	for _, q := range qualities {
		seen[q] = true
	}

	for _, q := range extraQualities {
		q = strings.TrimSpace(q)
		if q == "" {
			return nil, fmt.Errorf("%w: empty token", ErrBadQuality)
		}
		if len(q) > MaxQualityLength {
			return nil, fmt.Errorf("%w: %q exceeds %d characters", ErrBadQuality, q, MaxQualityLength)
		}
		if !qualityTokenPattern.MatchString(q) {
			return nil, fmt.Errorf("%w: %q (letters and digits only)", ErrBadQuality, q)
		}
		lower := strings.ToLower(q)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		qualities = append(qualities, lower)
	}

	chord, err := regexp.Compile(chordPattern(qualities))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadQuality, err)
	}

	return &Set{chord: chord, bar: barPattern, annotation: annotationPattern}, nil
}

// mustCompile is Compile for init-time use; panics on error.
func mustCompile(extraQualities []string) *Set {
	s, err := Compile(extraQualities)
	if err != nil {
		panic("chordpatterns: " + err.Error())
	}
	return s
}

// chordPattern builds the anchored chord-token expression:
// root A-G, optional accidental, optional quality with trailing digits,
// optional slash bass. Case-insensitive to accept sloppily typed charts.
func chordPattern(qualities []string) string {
	return `(?i)^[A-G](?:#|b)?(?:(?:` + strings.Join(qualities, "|") + `)\d*)?(?:/[A-G](?:#|b)?)?$`
}

// IsChord reports whether the whitespace-trimmed token parses as a chord.
func (s *Set) IsChord(token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}
	return s.chord.MatchString(token)
}

// IsBar reports whether the token is a bar separator run such as "|" or "||".
func (s *Set) IsBar(token string) bool {
	return s.bar.MatchString(strings.TrimSpace(token))
}

// IsAnnotation reports whether the token is a parenthetical annotation
// such as "(x2)" or "(repeat)".
func (s *Set) IsAnnotation(token string) bool {
	return s.annotation.MatchString(strings.TrimSpace(token))
}

// IsRepeat reports whether the token is a bare repeat marker such as "x2".
func (s *Set) IsRepeat(token string) bool {
	return repeatPattern.MatchString(strings.TrimSpace(token))
}

// Token is one chord occurrence in a line. Col is the zero-based column
// of its first character, counted in characters rather than bytes since
// monospaced charts align by glyph.
type Token struct {
	Text string
	Col  int
}

// FindChords extracts the chord tokens in line with their start columns.
// Non-chord tokens (bars, annotations, stray words) are skipped.
func (s *Set) FindChords(line string) []Token {
	var out []Token
	for _, m := range tokenPattern.FindAllStringIndex(line, -1) {
		tok := line[m[0]:m[1]]
		if !s.IsChord(tok) {
			continue
		}
		out = append(out, Token{Text: tok, Col: utf8.RuneCountInString(line[:m[0]])})
	}
	return out
}
