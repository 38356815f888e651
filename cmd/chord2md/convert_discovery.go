package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-chord2md/internal/fileutil"
	"github.com/alnah/go-chord2md/internal/hints"
)

// chartExtensions lists the file types collected when scanning a
// directory. Files named explicitly on the command line bypass this
// filter.
var chartExtensions = map[string]bool{
	".txt": true,
	".crd": true,
}

// stdinStem names the output file when the chart arrives on stdin
// instead of from a file.
const stdinStem = "converted_chords"

// FileToConvert pairs a chart with its resolved output path.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverCharts expands the positional arguments into a flat list of
// chart files. Directories are walked recursively for .txt and .crd
// charts; a directory that yields nothing is an error.
func discoverCharts(inputs []string) ([]string, error) {
	var charts []string
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("%w: %v%s", ErrReadChart, err, hints.ForInputNotFound(input))
		}
		if !info.IsDir() {
			charts = append(charts, input)
			continue
		}
		found, err := collectCharts(input)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("%w under %s%s", ErrNoCharts, input, hints.ForNoCharts(input))
		}
		charts = append(charts, found...)
	}
	return charts, nil
}

// collectCharts walks dir and returns every file with a chart extension,
// in lexical order.
func collectCharts(dir string) ([]string, error) {
	var charts []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if chartExtensions[strings.ToLower(filepath.Ext(path))] {
			charts = append(charts, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: scanning %s: %v", ErrReadChart, dir, err)
	}
	return charts, nil
}

// planOutputs resolves an output path for every chart: the input stem
// plus "_converted" and the format's extension, placed in outDir. Unless
// overwrite is set, paths are kept unique both against existing files
// and within the batch itself, so two charts sharing a stem never race
// for one output.
func planOutputs(charts []string, outDir, format string, overwrite bool, now func() time.Time) []FileToConvert {
	taken := make(map[string]bool, len(charts))
	files := make([]FileToConvert, 0, len(charts))
	for _, chart := range charts {
		stem := strings.TrimSuffix(filepath.Base(chart), filepath.Ext(chart))
		candidate := filepath.Join(outDir, stem+"_converted."+format)
		if !overwrite {
			candidate = fileutil.UniqueOutputPath(candidate, now)
			if taken[candidate] {
				candidate = bumpTaken(candidate, taken)
			}
		}
		taken[candidate] = true
		files = append(files, FileToConvert{InputPath: chart, OutputPath: candidate})
	}
	return files
}

// bumpTaken appends an increasing counter until the candidate collides
// with neither the batch nor the filesystem.
func bumpTaken(path string, taken map[string]bool) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", base, n, ext)
		if !taken[candidate] && !fileutil.FileExists(candidate) {
			return candidate
		}
	}
}
