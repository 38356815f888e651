package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	tests := []struct {
		shell string
		marks []string
	}{
		{
			shell: "bash",
			marks: []string{"complete -F _chord2md chord2md", "--format", "md html pdf", "doctor"},
		},
		{
			shell: "zsh",
			marks: []string{"#compdef chord2md", "--format", "(md html pdf)", "convert:convert chord charts"},
		},
		{
			shell: "fish",
			marks: []string{"__fish_use_subcommand", "-l format", "-xa 'md html pdf'", "-l overwrite"},
		},
		{
			shell: "powershell",
			marks: []string{"Register-ArgumentCompleter", "'--format'", "'doctor'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) error = %v", tt.shell, err)
			}
			out := buf.String()
			for _, mark := range tt.marks {
				if !strings.Contains(out, mark) {
					t.Errorf("GenerateCompletion(%q) output missing %q", tt.shell, mark)
				}
			}
		})
	}
}

func TestGenerateCompletionUnsupportedShell(t *testing.T) {
	var buf bytes.Buffer
	err := GenerateCompletion(&buf, "tcsh")
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("GenerateCompletion(tcsh) error = %v, want ErrUnsupportedShell", err)
	}
}

func TestRunCompletionArgCount(t *testing.T) {
	var buf bytes.Buffer
	if err := runCompletion(nil, &buf); !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("runCompletion(no args) error = %v, want ErrUnsupportedShell", err)
	}
	if err := runCompletion([]string{"bash", "zsh"}, &buf); !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("runCompletion(two args) error = %v, want ErrUnsupportedShell", err)
	}
}

// Every flag the parser accepts must appear in every generated script.
func TestCompletionCoversAllFlags(t *testing.T) {
	defs := convertFlagDefs()
	if len(defs) == 0 {
		t.Fatal("convertFlagDefs() returned no flags")
	}

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		var buf bytes.Buffer
		if err := GenerateCompletion(&buf, shell); err != nil {
			t.Fatalf("GenerateCompletion(%q) error = %v", shell, err)
		}
		out := buf.String()
		for _, d := range defs {
			needle := "--" + d.name
			if shell == "fish" {
				needle = "-l " + d.name
			}
			if !strings.Contains(out, needle) {
				t.Errorf("%s completion missing flag %s", shell, d.name)
			}
		}
	}
}

func TestConvertFlagDefsMetadata(t *testing.T) {
	defs := convertFlagDefs()
	byName := make(map[string]flagDef, len(defs))
	for _, d := range defs {
		byName[d.name] = d
	}

	if d := byName["format"]; d.comp != completeFormat {
		t.Errorf("format completion = %v, want completeFormat", d.comp)
	}
	if d := byName["output"]; d.shorthand != "o" || d.comp != completeDir {
		t.Errorf("output def = %+v, want shorthand o and completeDir", d)
	}
	if d := byName["quiet"]; !d.isBool {
		t.Error("quiet should be boolean")
	}
	if d := byName["workers"]; d.isBool || d.shorthand != "w" {
		t.Errorf("workers def = %+v, want non-bool with shorthand w", d)
	}
}
