// Package fileutil provides filesystem helpers for locating chord charts
// and writing converted output.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-chord2md/internal/dateutil"
)

const (
	dirPermissions  = 0o750
	filePermissions = 0o644
)

// FileExists reports whether path exists, regardless of type.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteTempFile writes data to a fresh temporary file matching pattern
// and returns its path. The caller is responsible for removal.
func WriteTempFile(pattern string, data []byte) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	return f.Name(), nil
}

// UniqueOutputPath returns path unchanged when nothing exists there.
// Otherwise it suffixes the base name with a timestamp, then with an
// increasing counter, until the candidate is free. Existing files are
// never overwritten.
func UniqueOutputPath(path string, now func() time.Time) string {
	if !FileExists(path) {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	stamp := dateutil.Stamp(now())
	candidate := fmt.Sprintf("%s_%s%s", base, stamp, ext)
	for n := 1; FileExists(candidate); n++ {
		candidate = fmt.Sprintf("%s_%s_%d%s", base, stamp, n, ext)
	}
	return candidate
}
