package chord2md

import (
	"testing"
)

func TestSplitFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		wantBlock string
		wantBody  string
	}{
		{
			name:      "no front matter",
			text:      "Am\nthe rain falls down",
			wantBlock: "",
			wantBody:  "Am\nthe rain falls down",
		},
		{
			name:      "front matter before chart",
			text:      "---\ntitle: Hurt\n---\nAm\nthe rain falls down",
			wantBlock: "---\ntitle: Hurt\n---",
			wantBody:  "Am\nthe rain falls down",
		},
		{
			name:      "document end marker closes the block",
			text:      "---\ntitle: Hurt\n...\nAm",
			wantBlock: "---\ntitle: Hurt\n...",
			wantBody:  "Am",
		},
		{
			name:      "unclosed block is all body",
			text:      "---\ntitle: Hurt\nAm",
			wantBlock: "",
			wantBody:  "---\ntitle: Hurt\nAm",
		},
		{
			name:      "delimiter later than first line does not count",
			text:      "intro\n---\ntitle: Hurt\n---",
			wantBlock: "",
			wantBody:  "intro\n---\ntitle: Hurt\n---",
		},
		{
			name:      "empty block",
			text:      "---\n---\nbody",
			wantBlock: "---\n---",
			wantBody:  "body",
		},
		{
			name:      "block with no body",
			text:      "---\ntitle: Hurt\n---",
			wantBlock: "---\ntitle: Hurt\n---",
			wantBody:  "",
		},
		{
			name:      "lone delimiter line is body",
			text:      "---",
			wantBlock: "",
			wantBody:  "---",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			block, body := splitFrontMatter(tt.text)
			if block != tt.wantBlock {
				t.Errorf("block = %q, want %q", block, tt.wantBlock)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParseMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		block      string
		wantTitle  string
		wantArtist string
	}{
		{
			name:       "title and artist",
			block:      "---\ntitle: Hurt\nartist: Johnny Cash\n---",
			wantTitle:  "Hurt",
			wantArtist: "Johnny Cash",
		},
		{
			name:      "unknown keys ignored",
			block:     "---\ntitle: Hurt\nkey: Am\ncapo: 3\n---",
			wantTitle: "Hurt",
		},
		{
			name:       "document end marker closer",
			block:      "---\ntitle: Hurt\nartist: Johnny Cash\n...",
			wantTitle:  "Hurt",
			wantArtist: "Johnny Cash",
		},
		{
			name:  "malformed block yields empty metadata",
			block: "---\n{{not yaml\n---",
		},
		{
			name:  "empty block",
			block: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta := parseMetadata(tt.block)
			if meta.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", meta.Title, tt.wantTitle)
			}
			if meta.Artist != tt.wantArtist {
				t.Errorf("Artist = %q, want %q", meta.Artist, tt.wantArtist)
			}
		})
	}
}

func TestDocumentTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input Input
		want  string
	}{
		{
			name:  "explicit title wins",
			input: Input{Title: "My Set", Text: "---\ntitle: Hurt\n---\nAm"},
			want:  "My Set",
		},
		{
			name:  "front matter title and artist",
			input: Input{Text: "---\ntitle: Hurt\nartist: Johnny Cash\n---\nAm"},
			want:  "Hurt - Johnny Cash",
		},
		{
			name:  "front matter title only",
			input: Input{Text: "---\ntitle: Hurt\n---\nAm"},
			want:  "Hurt",
		},
		{
			name:  "fallback without metadata",
			input: Input{Text: "Am\nthe rain falls down"},
			want:  "Chord Sheet",
		},
		{
			name:  "whitespace explicit title falls through",
			input: Input{Title: "   ", Text: "Am"},
			want:  "Chord Sheet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := documentTitle(tt.input); got != tt.want {
				t.Errorf("documentTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
