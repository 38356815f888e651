package chord2md

import (
	"strings"

	"github.com/alnah/go-chord2md/internal/yamlutil"
)

// frontMatterDelim opens and closes a YAML front matter block.
// frontMatterEnd is the YAML document-end marker, also accepted as a
// closing line.
const (
	frontMatterDelim = "---"
	frontMatterEnd   = "..."
)

// defaultTitle is the page title when neither the input nor the front
// matter names one.
const defaultTitle = "Chord Sheet"

// metadata holds the fields read from a chart's front matter.
type metadata struct {
	Title  string `yaml:"title"`
	Artist string `yaml:"artist"`
}

// splitFrontMatter separates a leading YAML front matter block from the
// chart body. The opening delimiter must be the very first line; the
// block runs to the next "---" or "..." line. Without a closing line
// the whole text is body. The returned block keeps both delimiter
// lines and carries no trailing newline, so it can pass through
// conversion byte for byte. Keys like "key: Am" inside the block never
// reach the chord pipeline.
func splitFrontMatter(text string) (block, body string) {
	if !strings.HasPrefix(text, frontMatterDelim+"\n") {
		return "", text
	}

	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i] == frontMatterDelim || lines[i] == frontMatterEnd {
			return strings.Join(lines[:i+1], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	return "", text
}

// parseMetadata reads title and artist from a front matter block. The
// parse is lenient: unknown keys are ignored and a malformed block
// yields empty metadata, never an error.
func parseMetadata(block string) metadata {
	lines := strings.Split(block, "\n")
	if len(lines) < 2 {
		return metadata{}
	}
	inner := strings.Join(lines[1:len(lines)-1], "\n")

	var meta metadata
	if err := yamlutil.Unmarshal([]byte(inner), &meta); err != nil {
		return metadata{}
	}
	return meta
}

// documentTitle picks the page title for HTML and PDF output. An
// explicit Input.Title wins, then the front matter title (joined with
// the artist when both are present), then a generic fallback.
func documentTitle(in Input) string {
	if strings.TrimSpace(in.Title) != "" {
		return in.Title
	}

	if block, _ := splitFrontMatter(in.Text); block != "" {
		meta := parseMetadata(block)
		switch {
		case meta.Title != "" && meta.Artist != "":
			return meta.Title + " - " + meta.Artist
		case meta.Title != "":
			return meta.Title
		}
	}
	return defaultTitle
}
