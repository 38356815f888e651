package chordpatterns

import (
	"errors"
	"testing"
)

func TestIsChord(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "plain root", token: "C", want: true},
		{name: "minor", token: "Am", want: true},
		{name: "sharp minor seventh", token: "F#m7", want: true},
		{name: "flat major seventh", token: "Bbmaj7", want: true},
		{name: "bare digit extension", token: "G7", want: false},
		{name: "slash bass", token: "C/E", want: true},
		{name: "sharp slash flat", token: "G#/Bb", want: true},
		{name: "suspended", token: "Asus4", want: true},
		{name: "added ninth", token: "Dadd9", want: true},
		{name: "diminished", token: "Edim", want: true},
		{name: "augmented", token: "Caug", want: true},
		{name: "lowercase accepted", token: "am", want: true},
		{name: "lowercase root", token: "e", want: true},
		{name: "surrounding space trimmed", token: "  Am  ", want: true},
		{name: "lyric word", token: "She", want: false},
		{name: "short lyric word", token: "the", want: false},
		{name: "almost chord word", token: "Dad", want: false},
		{name: "root plus stray letter", token: "Be", want: false},
		{name: "out of range root", token: "H", want: false},
		{name: "double accidental", token: "A##", want: false},
		{name: "double slash", token: "C//E", want: false},
		{name: "two slashes", token: "A/B/C", want: false},
		{name: "annotation", token: "(x2)", want: false},
		{name: "bar separator", token: "|", want: false},
		{name: "empty", token: "", want: false},
		{name: "trailing garbage", token: "Am7!", want: false},
		{name: "quality without root", token: "maj7", want: false},
	}

	set := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := set.IsChord(tt.token); got != tt.want {
				t.Errorf("IsChord(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestIsChordNumericExtension(t *testing.T) {
	// Bare digits need a quality keyword in front: G7 is not in the default
	// grammar but Gm7, Gsus4 and Gadd11 are.
	set := Default()
	tests := []struct {
		token string
		want  bool
	}{
		{"G7", false},
		{"Gm7", true},
		{"Gsus4", true},
		{"Gadd11", true},
		{"Gmaj13", true},
	}
	for _, tt := range tests {
		if got := set.IsChord(tt.token); got != tt.want {
			t.Errorf("IsChord(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestIsBar(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"|", true},
		{"||", true},
		{"|||", true},
		{" | ", true},
		{"", false},
		{"|B", false},
		{"x|", false},
	}

	set := Default()
	for _, tt := range tests {
		if got := set.IsBar(tt.token); got != tt.want {
			t.Errorf("IsBar(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestIsAnnotation(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"(x2)", true},
		{"(repeat)", true},
		{"()", true},
		{"(x2", false},
		{"x2)", false},
		{"x2", false},
		{"", false},
	}

	set := Default()
	for _, tt := range tests {
		if got := set.IsAnnotation(tt.token); got != tt.want {
			t.Errorf("IsAnnotation(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestIsRepeat(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"x2", true},
		{"X3", true},
		{"x12", true},
		{" x2 ", true},
		{"x", false},
		{"2x", false},
		{"(x2)", false},
		{"", false},
	}

	set := Default()
	for _, tt := range tests {
		if got := set.IsRepeat(tt.token); got != tt.want {
			t.Errorf("IsRepeat(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestFindChords(t *testing.T) {
	set := Default()

	tests := []struct {
		name string
		line string
		want []Token
	}{
		{
			name: "spread chords",
			line: "Am      G",
			want: []Token{{Text: "Am", Col: 0}, {Text: "G", Col: 8}},
		},
		{
			name: "chords between bars",
			line: "| B | A | E |",
			want: []Token{{Text: "B", Col: 2}, {Text: "A", Col: 6}, {Text: "E", Col: 10}},
		},
		{
			name: "annotation skipped",
			line: "A  E  (x2)",
			want: []Token{{Text: "A", Col: 0}, {Text: "E", Col: 3}},
		},
		{
			name: "leading spaces",
			line: "   Em",
			want: []Token{{Text: "Em", Col: 3}},
		},
		{
			name: "no chords",
			line: "the rain falls down",
			want: nil,
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := set.FindChords(tt.line)
			if len(got) != len(tt.want) {
				t.Fatalf("FindChords(%q) = %v, want %v", tt.line, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("FindChords(%q)[%d] = %v, want %v", tt.line, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCompileExtraQualities(t *testing.T) {
	set, err := Compile([]string{"6", "69", "7sus4"})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	tests := []struct {
		token string
		want  bool
	}{
		{"C6", true},
		{"A69", true},
		{"E7sus4", true},
		{"Am", true}, // built-ins still present
		{"C8", false},
	}
	for _, tt := range tests {
		if got := set.IsChord(tt.token); got != tt.want {
			t.Errorf("IsChord(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}

	// Default grammar is unaffected by extended compiles.
	if Default().IsChord("C6") {
		t.Error("Default().IsChord(\"C6\") = true, want false")
	}
}

func TestCompileDeduplicates(t *testing.T) {
	set, err := Compile([]string{"maj", "Maj", "6", "6"})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if !set.IsChord("Cmaj7") {
		t.Error("IsChord(\"Cmaj7\") = false, want true")
	}
	if !set.IsChord("C6") {
		t.Error("IsChord(\"C6\") = false, want true")
	}
}

func TestCompileRejectsBadQualities(t *testing.T) {
	tests := []struct {
		name    string
		quality string
	}{
		{name: "empty", quality: ""},
		{name: "whitespace only", quality: "   "},
		{name: "pipe", quality: "a|b"},
		{name: "dot", quality: "a.b"},
		{name: "open paren", quality: "("},
		{name: "inner space", quality: "no good"},
		{name: "too long", quality: "abcdefghijk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compile([]string{tt.quality}); !errors.Is(err, ErrBadQuality) {
				t.Errorf("Compile(%q) error = %v, want ErrBadQuality", tt.quality, err)
			}
		})
	}
}

func TestDefaultQualitiesIsCopy(t *testing.T) {
	qs := DefaultQualities()
	if len(qs) == 0 {
		t.Fatal("DefaultQualities() returned empty slice")
	}
	qs[0] = "mangled"
	if got := DefaultQualities()[0]; got == "mangled" {
		t.Error("DefaultQualities() shares backing storage with callers")
	}
}
