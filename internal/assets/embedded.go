// Package assets bundles the stylesheets and HTML templates used when
// rendering converted charts to HTML and PDF.
package assets

import (
	"embed"
	"fmt"
)

// Names of the assets shipped with the binary.
const (
	StyleChordSheet = "styles/chordsheet.css"
	TemplatePreview = "templates/preview.html"
)

//go:embed styles/* templates/*
var embeddedFS embed.FS

// EmbeddedLoader serves assets compiled into the binary.
type EmbeddedLoader struct{}

var _ Loader = EmbeddedLoader{}

func (EmbeddedLoader) Load(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	data, err := embeddedFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	return data, nil
}
