package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/launcher"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-chord2md/internal/config"
	"github.com/alnah/go-chord2md/internal/dateutil"
)

// chromeVersionTimeout bounds the --version probe so a wedged binary
// cannot hang the diagnosis.
const chromeVersionTimeout = 5 * time.Second

// ciEnvVars are the signals checked for CI detection.
var ciEnvVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI", "TRAVIS"}

// doctorReport aggregates the environment checks behind PDF rendering.
type doctorReport struct {
	Status      string       `json:"status"`
	GeneratedAt string       `json:"generated_at,omitempty"`
	Browser     browserCheck `json:"browser"`
	Runtime     runtimeCheck `json:"runtime"`
	Config      configCheck  `json:"config"`
	TempDir     tempDirCheck `json:"temp_dir"`
	Warnings    []string     `json:"warnings,omitempty"`
	Errors      []string     `json:"errors,omitempty"`
}

type browserCheck struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Source  string `json:"source,omitempty"`
}

type runtimeCheck struct {
	Container bool     `json:"container"`
	CI        bool     `json:"ci"`
	CIVars    []string `json:"ci_vars,omitempty"`
	NoSandbox bool     `json:"no_sandbox"`
}

type configCheck struct {
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

type tempDirCheck struct {
	Path     string `json:"path"`
	Writable bool   `json:"writable"`
}

// runDoctor implements the doctor subcommand.
func runDoctor(args []string, env *Environment) int {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	jsonOut := fs.Bool("json", false, "emit the report as JSON")
	fs.SetOutput(env.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return ExitUsage
	}

	report := buildDoctorReport()

	if *jsonOut {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(env.Stderr, "Error: %v\n", err)
			return ExitGeneral
		}
	} else {
		printDoctorReport(env.Stdout, report)
	}

	if len(report.Errors) > 0 {
		return ExitGeneral
	}
	return ExitSuccess
}

// buildDoctorReport runs every check and classifies the findings.
func buildDoctorReport() doctorReport {
	var r doctorReport
	r.GeneratedAt = dateutil.HumanDate(time.Now())

	r.Browser = checkBrowser()
	if !r.Browser.Found {
		r.Warnings = append(r.Warnings,
			"no Chromium or Chrome found; the first PDF conversion will download a browser")
	}

	r.Runtime = checkRuntime()
	if r.Runtime.Container && !r.Runtime.NoSandbox {
		r.Warnings = append(r.Warnings,
			"container detected; if PDF rendering fails, set CI=true to start the browser without a sandbox")
	}

	r.Config = checkConfig()

	r.TempDir = checkTempDir()
	if !r.TempDir.Writable {
		r.Errors = append(r.Errors,
			fmt.Sprintf("temp directory %s is not writable; PDF rendering stages pages there", r.TempDir.Path))
	}

	switch {
	case len(r.Errors) > 0:
		r.Status = "errors"
	case len(r.Warnings) > 0:
		r.Status = "warnings"
	default:
		r.Status = "ok"
	}
	return r
}

// checkBrowser locates a Chromium or Chrome binary the way the PDF
// renderer would: ROD_BROWSER_BIN first, then the launcher's search
// over well-known install locations.
func checkBrowser() browserCheck {
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		if _, err := os.Stat(bin); err == nil {
			return browserCheck{Found: true, Path: bin, Version: chromeVersion(bin), Source: "ROD_BROWSER_BIN"}
		}
		return browserCheck{Source: "ROD_BROWSER_BIN"}
	}
	if path, ok := launcher.LookPath(); ok {
		return browserCheck{Found: true, Path: path, Version: chromeVersion(path), Source: "lookup"}
	}
	return browserCheck{}
}

// chromeVersion asks the binary for its version string; failures leave
// it empty rather than failing the check.
func chromeVersion(bin string) string {
	ctx, cancel := context.WithTimeout(context.Background(), chromeVersionTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, bin, "--version").Output() // #nosec G204 -- bin comes from browser discovery
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// checkRuntime detects containers and CI, the environments where
// Chromium's sandbox usually cannot start.
func checkRuntime() runtimeCheck {
	var r runtimeCheck
	r.Container = isContainer()
	for _, name := range ciEnvVars {
		if os.Getenv(name) != "" {
			r.CI = true
			r.CIVars = append(r.CIVars, name)
		}
	}
	// Mirrors the renderer's launch condition exactly: only CI=true or an
	// explicit browser binary turn the sandbox off.
	r.NoSandbox = os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != ""
	return r
}

// isContainer combines the common container signals. CHORD2MD_CONTAINER=1
// forces the answer for images the heuristics miss.
func isContainer() bool {
	if os.Getenv("CHORD2MD_CONTAINER") == "1" {
		return true
	}
	for _, marker := range []string{"/.dockerenv", "/run/.containerenv"} {
		if _, err := os.Stat(marker); err == nil {
			return true
		}
	}
	return os.Getenv("KUBERNETES_SERVICE_HOST") != ""
}

// checkConfig reports which config file discovery would load.
func checkConfig() configCheck {
	path, err := config.DiscoverConfigPath()
	if err != nil {
		return configCheck{}
	}
	return configCheck{Found: true, Path: path}
}

// checkTempDir verifies the staging area for PDF rendering is writable.
func checkTempDir() tempDirCheck {
	dir := os.TempDir()
	f, err := os.CreateTemp(dir, "chord2md-doctor-*")
	if err != nil {
		return tempDirCheck{Path: dir}
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return tempDirCheck{Path: dir, Writable: true}
}

// printDoctorReport renders the human-readable report.
func printDoctorReport(w io.Writer, r doctorReport) {
	if r.GeneratedAt != "" {
		fmt.Fprintf(w, "chord2md environment check (%s)\n\n", r.GeneratedAt)
	} else {
		fmt.Fprintf(w, "chord2md environment check\n\n")
	}

	if r.Browser.Found {
		line := r.Browser.Path
		if r.Browser.Version != "" {
			line += " (" + r.Browser.Version + ")"
		}
		if r.Browser.Source == "ROD_BROWSER_BIN" {
			line += " [from ROD_BROWSER_BIN]"
		}
		fmt.Fprintf(w, "[OK]    browser: %s\n", line)
	} else if r.Browser.Source == "ROD_BROWSER_BIN" {
		fmt.Fprintf(w, "[WARN]  browser: ROD_BROWSER_BIN is set but the binary does not exist\n")
	} else {
		fmt.Fprintf(w, "[WARN]  browser: not found, will be downloaded on first PDF conversion\n")
	}

	if r.Runtime.Container {
		fmt.Fprintf(w, "[WARN]  runtime: container detected\n")
	} else {
		fmt.Fprintf(w, "[OK]    runtime: not a container\n")
	}
	if r.Runtime.CI {
		fmt.Fprintf(w, "[OK]    ci: %s\n", strings.Join(r.Runtime.CIVars, ", "))
	}
	if r.Runtime.NoSandbox {
		fmt.Fprintf(w, "[OK]    sandbox: disabled for browser launch\n")
	}

	if r.Config.Found {
		fmt.Fprintf(w, "[OK]    config: %s\n", r.Config.Path)
	} else {
		fmt.Fprintf(w, "[OK]    config: none found, using defaults\n")
	}

	if r.TempDir.Writable {
		fmt.Fprintf(w, "[OK]    temp dir: %s\n", r.TempDir.Path)
	} else {
		fmt.Fprintf(w, "[ERROR] temp dir: %s is not writable\n", r.TempDir.Path)
	}

	fmt.Fprintf(w, "\nstatus: %s\n", r.Status)
}
