// Package dateutil provides timestamp formatting shared by output naming
// and diagnostics.
package dateutil

import "time"

// Stamp formats t as a compact sortable timestamp (YYYYMMDDHHMMSS),
// used to derive unique output filenames.
func Stamp(t time.Time) string {
	return t.Format("20060102150405")
}

// HumanDate formats t for display in diagnostics output.
func HumanDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
