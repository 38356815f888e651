package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fixedNow pins output timestamps for deterministic names.
func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

// writeChart drops a small chart file under dir and returns its path.
func writeChart(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("Am\nhello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDiscoverCharts(t *testing.T) {
	dir := t.TempDir()
	song := writeChart(t, dir, "song.txt")
	crd := writeChart(t, dir, "riff.crd")
	nested := writeChart(t, dir, filepath.Join("sub", "deep.txt"))
	upper := writeChart(t, dir, "LOUD.TXT")
	writeChart(t, dir, "notes.pdf")

	charts, err := discoverCharts([]string{dir})
	if err != nil {
		t.Fatalf("discoverCharts() error = %v", err)
	}

	want := map[string]bool{song: true, crd: true, nested: true, upper: true}
	if len(charts) != len(want) {
		t.Fatalf("discoverCharts() = %v, want %d charts", charts, len(want))
	}
	for _, c := range charts {
		if !want[c] {
			t.Errorf("discoverCharts() unexpected chart %q", c)
		}
	}
}

func TestDiscoverChartsExplicitFileAnyExtension(t *testing.T) {
	dir := t.TempDir()
	chart := writeChart(t, dir, "chart.chords")

	charts, err := discoverCharts([]string{chart})
	if err != nil {
		t.Fatalf("discoverCharts() error = %v", err)
	}
	if len(charts) != 1 || charts[0] != chart {
		t.Errorf("discoverCharts() = %v, want [%s]", charts, chart)
	}
}

func TestDiscoverChartsMissingInput(t *testing.T) {
	_, err := discoverCharts([]string{filepath.Join(t.TempDir(), "absent.txt")})
	if !errors.Is(err, ErrReadChart) {
		t.Errorf("discoverCharts(missing) error = %v, want ErrReadChart", err)
	}
}

func TestDiscoverChartsEmptyDir(t *testing.T) {
	_, err := discoverCharts([]string{t.TempDir()})
	if !errors.Is(err, ErrNoCharts) {
		t.Errorf("discoverCharts(empty dir) error = %v, want ErrNoCharts", err)
	}
}

func TestPlanOutputs(t *testing.T) {
	out := t.TempDir()

	files := planOutputs([]string{"charts/song.txt", "charts/other.crd"}, out, "md", false, fixedNow)

	if len(files) != 2 {
		t.Fatalf("planOutputs() = %d files, want 2", len(files))
	}
	if want := filepath.Join(out, "song_converted.md"); files[0].OutputPath != want {
		t.Errorf("OutputPath[0] = %q, want %q", files[0].OutputPath, want)
	}
	if want := filepath.Join(out, "other_converted.md"); files[1].OutputPath != want {
		t.Errorf("OutputPath[1] = %q, want %q", files[1].OutputPath, want)
	}
}

func TestPlanOutputsFormatExtension(t *testing.T) {
	out := t.TempDir()

	files := planOutputs([]string{"song.txt"}, out, "pdf", false, fixedNow)

	if want := filepath.Join(out, "song_converted.pdf"); files[0].OutputPath != want {
		t.Errorf("OutputPath = %q, want %q", files[0].OutputPath, want)
	}
}

func TestPlanOutputsSameStemInBatch(t *testing.T) {
	out := t.TempDir()

	files := planOutputs([]string{"a/song.txt", "b/song.txt"}, out, "md", false, fixedNow)

	if files[0].OutputPath == files[1].OutputPath {
		t.Fatalf("batch outputs collide: %q", files[0].OutputPath)
	}
	if want := filepath.Join(out, "song_converted_1.md"); files[1].OutputPath != want {
		t.Errorf("OutputPath[1] = %q, want %q", files[1].OutputPath, want)
	}
}

func TestPlanOutputsExistingFile(t *testing.T) {
	out := t.TempDir()
	existing := filepath.Join(out, "song_converted.md")
	if err := os.WriteFile(existing, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	files := planOutputs([]string{"song.txt"}, out, "md", false, fixedNow)

	want := filepath.Join(out, "song_converted_20240601120000.md")
	if files[0].OutputPath != want {
		t.Errorf("OutputPath = %q, want %q", files[0].OutputPath, want)
	}
}

func TestPlanOutputsOverwrite(t *testing.T) {
	out := t.TempDir()
	existing := filepath.Join(out, "song_converted.md")
	if err := os.WriteFile(existing, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	files := planOutputs([]string{"song.txt"}, out, "md", true, fixedNow)

	if files[0].OutputPath != existing {
		t.Errorf("OutputPath = %q, want %q despite existing file", files[0].OutputPath, existing)
	}
}
