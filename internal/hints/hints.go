// Package hints maps common failures to short remediation lines printed
// under the error message.
package hints

import (
	"fmt"
	"strings"
)

func hint(lines ...string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString("\n  hint: ")
		b.WriteString(l)
	}
	return b.String()
}

// ForInputNotFound suggests fixes when a chart file cannot be read.
func ForInputNotFound(path string) string {
	return hint(
		fmt.Sprintf("check that %q exists and is readable", path),
		"or run without arguments and paste the chart on stdin",
	)
}

// ForNoCharts explains an empty batch discovery.
func ForNoCharts(dir string) string {
	return hint(
		fmt.Sprintf("no .txt or .crd files found under %q", dir),
		"pass chart files explicitly to convert other extensions",
	)
}

// ForBrowserLaunch suggests fixes when Chromium cannot start for PDF
// rendering.
func ForBrowserLaunch() string {
	return hint(
		"install Chromium or Google Chrome",
		"or set ROD_BROWSER_BIN to an existing browser binary",
		"run 'chord2md doctor' to inspect the environment",
	)
}

// ForTimeout suggests fixes when a conversion exceeds its deadline.
func ForTimeout() string {
	return hint(
		"raise the limit with --timeout or convert.timeout_seconds in the config file",
	)
}

// ForConfigParse suggests fixes when the config file cannot be parsed.
func ForConfigParse() string {
	return hint(
		"check the YAML syntax; unknown keys are rejected",
		"see 'chord2md help' for the list of settings",
	)
}
