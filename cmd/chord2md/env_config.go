package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-chord2md/internal/config"
)

// envConfig carries settings read from CHORD2MD_* environment variables,
// the tier between config files and flags. CI pipelines set these instead
// of shipping a YAML file.
type envConfig struct {
	ConfigPath string        // CHORD2MD_CONFIG
	OutputDir  string        // CHORD2MD_OUTPUT_DIR
	Format     string        // CHORD2MD_FORMAT
	CSS        string        // CHORD2MD_CSS
	Timeout    time.Duration // CHORD2MD_TIMEOUT
	Workers    int           // CHORD2MD_WORKERS
	Overwrite  bool          // CHORD2MD_OVERWRITE

	// hasOverwrite distinguishes an explicit false from unset.
	hasOverwrite bool
}

// knownEnvVars lists every CHORD2MD_* variable the tool reads, so typos
// like CHORD2MD_FROMAT produce a warning instead of silent defaults.
var knownEnvVars = map[string]bool{
	"CHORD2MD_CONFIG":     true,
	"CHORD2MD_OUTPUT_DIR": true,
	"CHORD2MD_FORMAT":     true,
	"CHORD2MD_CSS":        true,
	"CHORD2MD_TIMEOUT":    true,
	"CHORD2MD_WORKERS":    true,
	"CHORD2MD_OVERWRITE":  true,
	"CHORD2MD_CONTAINER":  true,
}

// loadEnvConfig reads the CHORD2MD_* tier. Unparseable numeric values are
// ignored rather than fatal; the variable simply does not apply.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("CHORD2MD_CONFIG"),
		OutputDir:  os.Getenv("CHORD2MD_OUTPUT_DIR"),
		Format:     os.Getenv("CHORD2MD_FORMAT"),
		CSS:        os.Getenv("CHORD2MD_CSS"),
	}
	if v := os.Getenv("CHORD2MD_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("CHORD2MD_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}
	if v := os.Getenv("CHORD2MD_OVERWRITE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Overwrite = b
			cfg.hasOverwrite = true
		}
	}
	return cfg
}

// applyEnvConfig overlays the environment tier onto the loaded config.
// Flags are merged afterwards, preserving the precedence
// flags > environment > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Format != "" {
		cfg.Convert.Format = env.Format
	}
	if env.CSS != "" {
		cfg.Preview.Stylesheet = env.CSS
	}
	if env.Timeout > 0 {
		cfg.Convert.TimeoutSeconds = durationToSeconds(env.Timeout)
	}
	if env.Workers > 0 {
		cfg.Convert.Workers = env.Workers
	}
	if env.hasOverwrite {
		cfg.Output.Overwrite = env.Overwrite
	}
}

// durationToSeconds converts a duration to whole seconds, rounding up so
// sub-second values do not collapse below the validation floor.
func durationToSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < config.MinTimeoutSeconds {
		secs = config.MinTimeoutSeconds
	}
	return secs
}

// warnUnknownEnvVars flags CHORD2MD_* variables the tool does not read.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, kv := range os.Environ() {
		name, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, "CHORD2MD_") {
			continue
		}
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}
