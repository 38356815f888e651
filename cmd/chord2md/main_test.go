package main

import (
	"context"
	"fmt"
	"strings"
	"testing"

	chord2md "github.com/alnah/go-chord2md"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCmd  string
		wantRest []string
	}{
		{name: "empty", args: nil, wantCmd: "convert", wantRest: nil},
		{name: "version", args: []string{"version"}, wantCmd: "version", wantRest: []string{}},
		{name: "help", args: []string{"help", "convert"}, wantCmd: "help", wantRest: []string{"convert"}},
		{name: "completion", args: []string{"completion", "bash"}, wantCmd: "completion", wantRest: []string{"bash"}},
		{name: "doctor", args: []string{"doctor", "--json"}, wantCmd: "doctor", wantRest: []string{"--json"}},
		{name: "explicit convert", args: []string{"convert", "song.txt"}, wantCmd: "convert", wantRest: []string{"song.txt"}},
		{name: "bare file defaults to convert", args: []string{"song.txt"}, wantCmd: "convert", wantRest: []string{"song.txt"}},
		{name: "bare flag defaults to convert", args: []string{"--format", "pdf"}, wantCmd: "convert", wantRest: []string{"--format", "pdf"}},
		{name: "help flag", args: []string{"--help"}, wantCmd: "help", wantRest: nil},
		{name: "version flag", args: []string{"--version"}, wantCmd: "version", wantRest: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, rest := splitCommand(tt.args)
			if cmd != tt.wantCmd {
				t.Errorf("splitCommand(%v) cmd = %q, want %q", tt.args, cmd, tt.wantCmd)
			}
			if len(rest) != len(tt.wantRest) {
				t.Fatalf("splitCommand(%v) rest = %v, want %v", tt.args, rest, tt.wantRest)
			}
			for i := range rest {
				if rest[i] != tt.wantRest[i] {
					t.Errorf("rest[%d] = %q, want %q", i, rest[i], tt.wantRest[i])
				}
			}
		})
	}
}

func TestRunVersion(t *testing.T) {
	convertTestSetup(t)
	env, stdout, _ := testEnv("", true)

	if code := run([]string{"version"}, env); code != ExitSuccess {
		t.Fatalf("run(version) = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "chord2md "+Version) {
		t.Errorf("stdout = %q, want version line", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	convertTestSetup(t)
	env, stdout, _ := testEnv("", true)

	if code := run([]string{"help"}, env); code != ExitSuccess {
		t.Fatalf("run(help) = %d, want %d", code, ExitSuccess)
	}
	out := stdout.String()
	for _, mark := range []string{"chord2md", "convert", "completion", "doctor"} {
		if !strings.Contains(out, mark) {
			t.Errorf("help output missing %q", mark)
		}
	}
}

func TestRunHelpConvert(t *testing.T) {
	convertTestSetup(t)
	env, stdout, _ := testEnv("", true)

	if code := run([]string{"help", "convert"}, env); code != ExitSuccess {
		t.Fatalf("run(help convert) = %d, want %d", code, ExitSuccess)
	}
	for _, mark := range []string{"--format", "--overwrite", "--margin", "CHORD2MD_"} {
		if !strings.Contains(stdout.String(), mark) {
			t.Errorf("convert help missing %q", mark)
		}
	}
}

func TestRunCompletionSubcommand(t *testing.T) {
	convertTestSetup(t)
	env, stdout, _ := testEnv("", true)

	if code := run([]string{"completion", "bash"}, env); code != ExitSuccess {
		t.Fatalf("run(completion bash) = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "_chord2md") {
		t.Errorf("stdout = %q, want bash completion body", stdout.String())
	}
}

func TestRunCompletionBadShell(t *testing.T) {
	convertTestSetup(t)
	env, _, stderr := testEnv("", true)

	if code := run([]string{"completion", "tcsh"}, env); code != ExitUsage {
		t.Fatalf("run(completion tcsh) = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "unsupported shell") {
		t.Errorf("stderr = %q, want unsupported shell error", stderr.String())
	}
}

func TestRunPipedConversion(t *testing.T) {
	convertTestSetup(t)
	env, stdout, _ := testEnv("| B | A | E | E |  x2\n", false)

	if code := run(nil, env); code != ExitSuccess {
		t.Fatalf("run() = %d, want %d", code, ExitSuccess)
	}
	if got := stdout.String(); got != "| [B] | [A] | [E] | [E] |  x2\n" {
		t.Errorf("stdout = %q, want bracketed grid", got)
	}
}

func TestRunUnknownFlag(t *testing.T) {
	convertTestSetup(t)
	env, _, _ := testEnv("", true)

	if code := run([]string{"--transpose", "2"}, env); code != ExitUsage {
		t.Errorf("run(--transpose) = %d, want %d", code, ExitUsage)
	}
}

func TestRunMissingChart(t *testing.T) {
	convertTestSetup(t)
	env, _, stderr := testEnv("", true)

	if code := run([]string{"absent.txt"}, env); code != ExitIO {
		t.Fatalf("run(absent.txt) = %d, want %d", code, ExitIO)
	}
	if !strings.Contains(stderr.String(), "hint:") {
		t.Errorf("stderr = %q, want a remediation hint", stderr.String())
	}
}

func TestHintFor(t *testing.T) {
	if hint := hintFor(fmt.Errorf("render: %w", chord2md.ErrBrowserConnect)); !strings.Contains(hint, "ROD_BROWSER_BIN") {
		t.Errorf("hintFor(browser) = %q, want browser hint", hint)
	}
	if hint := hintFor(context.DeadlineExceeded); !strings.Contains(hint, "--timeout") {
		t.Errorf("hintFor(deadline) = %q, want timeout hint", hint)
	}
	if hint := hintFor(fmt.Errorf("boring")); hint != "" {
		t.Errorf("hintFor(generic) = %q, want empty", hint)
	}
}
