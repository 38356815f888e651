package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoaderStylesheet(t *testing.T) {
	data, err := EmbeddedLoader{}.Load(StyleChordSheet)
	if err != nil {
		t.Fatalf("Load(%q) error = %v", StyleChordSheet, err)
	}
	if len(data) == 0 {
		t.Fatal("stylesheet is empty")
	}
	if !strings.Contains(string(data), ".chord") {
		t.Error("stylesheet does not style .chord spans")
	}
}

func TestEmbeddedLoaderTemplate(t *testing.T) {
	data, err := EmbeddedLoader{}.Load(TemplatePreview)
	if err != nil {
		t.Fatalf("Load(%q) error = %v", TemplatePreview, err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "{{.Title}}", "{{.CSS}}", "{{.Body}}"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("template missing %q", want)
		}
	}
}

func TestEmbeddedLoaderNotFound(t *testing.T) {
	_, err := EmbeddedLoader{}.Load("styles/missing.css")
	if !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("Load(missing) error = %v, want ErrAssetNotFound", err)
	}
}

func TestValidateAssetName(t *testing.T) {
	tests := []struct {
		name    string
		asset   string
		wantErr bool
	}{
		{name: "valid stylesheet", asset: "styles/chordsheet.css", wantErr: false},
		{name: "valid template", asset: "templates/preview.html", wantErr: false},
		{name: "empty", asset: "", wantErr: true},
		{name: "traversal", asset: "../secrets.txt", wantErr: true},
		{name: "nested traversal", asset: "styles/../../etc/passwd", wantErr: true},
		{name: "absolute", asset: "/etc/passwd", wantErr: true},
		{name: "backslash", asset: "styles\\chordsheet.css", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssetName(tt.asset)
			if tt.wantErr && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", tt.asset, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateAssetName(%q) error = %v, want nil", tt.asset, err)
			}
		})
	}
}
