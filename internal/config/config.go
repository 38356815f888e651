// Package config loads tool settings from YAML files. Discovery probes
// the working directory first, then the user config directory; when no
// file exists anywhere the defaults apply.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-chord2md/internal/fileutil"
	"github.com/alnah/go-chord2md/internal/yamlutil"
)

// Validation limits.
const (
	MaxWorkers        = 32
	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 600
	MaxQualities      = 64
	MaxMarginInches   = 3.0
)

var (
	ErrConfigNotFound = errors.New("config: file not found")
	ErrInvalidConfig  = errors.New("config: invalid value")
)

// Config holds all tool settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Convert ConvertConfig `yaml:"convert"`
	Chords  ChordsConfig  `yaml:"chords"`
	Preview PreviewConfig `yaml:"preview"`
	PDF     PDFConfig     `yaml:"pdf"`
}

// OutputConfig controls where converted files land.
type OutputConfig struct {
	// Dir receives converted files; empty means the current directory.
	Dir string `yaml:"dir"`
	// Overwrite replaces existing output instead of picking a unique name.
	Overwrite bool `yaml:"overwrite"`
}

// ConvertConfig controls the conversion pipeline.
type ConvertConfig struct {
	// Format is the output format: md, html, or pdf.
	Format string `yaml:"format"`
	// Workers bounds batch parallelism; 0 selects an automatic size.
	Workers int `yaml:"workers"`
	// TimeoutSeconds bounds a single conversion.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// ChordsConfig extends the chord grammar.
type ChordsConfig struct {
	// Qualities lists extra chord quality suffixes, such as "7" or "7sus4".
	Qualities []string `yaml:"qualities"`
}

// PreviewConfig controls HTML rendering.
type PreviewConfig struct {
	// Stylesheet is a path to a CSS file replacing the built-in one.
	Stylesheet string `yaml:"stylesheet"`
	// Title overrides the document title.
	Title string `yaml:"title"`
}

// PDFConfig controls PDF page geometry.
type PDFConfig struct {
	MarginInches float64 `yaml:"margin_inches"`
}

// DefaultConfig returns the settings used when no file overrides them.
func DefaultConfig() *Config {
	return &Config{
		Convert: ConvertConfig{
			Format:         "md",
			TimeoutSeconds: 120,
		},
		PDF: PDFConfig{
			MarginInches: 0.6,
		},
	}
}

var configFileNames = []string{".chord2md.yaml", ".chord2md.yml"}

// DiscoverConfigPath probes the working directory for .chord2md.yaml or
// .chord2md.yml, then ~/.config/chord2md/config.yaml or config.yml.
func DiscoverConfigPath() (string, error) {
	for _, name := range configFileNames {
		if fileutil.FileExists(name) {
			return name, nil
		}
	}
	home, err := os.UserHomeDir()
	if err == nil {
		for _, name := range []string{"config.yaml", "config.yml"} {
			p := filepath.Join(home, ".config", "chord2md", name)
			if fileutil.FileExists(p) {
				return p, nil
			}
		}
	}
	return "", ErrConfigNotFound
}

// LoadConfig reads settings from path. An empty path triggers discovery,
// and when discovery finds nothing the defaults are returned. An explicit
// path that does not exist is an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		found, err := DiscoverConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = found
	}
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field against its limits.
func (c *Config) Validate() error {
	switch c.Convert.Format {
	case "md", "html", "pdf":
	default:
		return fmt.Errorf("%w: convert.format %q (want md, html, or pdf)", ErrInvalidConfig, c.Convert.Format)
	}
	if c.Convert.Workers < 0 || c.Convert.Workers > MaxWorkers {
		return fmt.Errorf("%w: convert.workers %d (want 0 for auto, or 1..%d)",
			ErrInvalidConfig, c.Convert.Workers, MaxWorkers)
	}
	if c.Convert.TimeoutSeconds < MinTimeoutSeconds || c.Convert.TimeoutSeconds > MaxTimeoutSeconds {
		return fmt.Errorf("%w: convert.timeout_seconds %d (want %d..%d)",
			ErrInvalidConfig, c.Convert.TimeoutSeconds, MinTimeoutSeconds, MaxTimeoutSeconds)
	}
	if len(c.Chords.Qualities) > MaxQualities {
		return fmt.Errorf("%w: chords.qualities has %d entries (max %d)",
			ErrInvalidConfig, len(c.Chords.Qualities), MaxQualities)
	}
	if c.PDF.MarginInches < 0 || c.PDF.MarginInches > MaxMarginInches {
		return fmt.Errorf("%w: pdf.margin_inches %.2f (want 0..%.0f)",
			ErrInvalidConfig, c.PDF.MarginInches, MaxMarginInches)
	}
	return nil
}

// Timeout returns the per-conversion timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Convert.TimeoutSeconds) * time.Second
}
