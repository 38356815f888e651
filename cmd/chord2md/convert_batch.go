package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	chord2md "github.com/alnah/go-chord2md"
	"github.com/alnah/go-chord2md/internal/fileutil"
)

// Converter is the slice of the service API the conversion paths use,
// split out so tests can fake conversions without launching browsers.
type Converter interface {
	Convert(ctx context.Context, input chord2md.Input) (*chord2md.Result, error)
	Preview(ctx context.Context, input chord2md.Input) (string, error)
	RenderPDF(ctx context.Context, input chord2md.Input) ([]byte, error)
}

var _ Converter = (*chord2md.Service)(nil)

// Pool hands out Converters to batch workers.
type Pool interface {
	Acquire() (Converter, error)
	Release(Converter)
	Size() int
}

// servicePool adapts chord2md.ServicePool to the Pool interface.
type servicePool struct {
	inner *chord2md.ServicePool
}

func (p servicePool) Acquire() (Converter, error) {
	svc, err := p.inner.Acquire()
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func (p servicePool) Release(c Converter) {
	if svc, ok := c.(*chord2md.Service); ok {
		p.inner.Release(svc)
	}
}

func (p servicePool) Size() int { return p.inner.Size() }

// conversionParams carries per-batch settings into the workers.
type conversionParams struct {
	format string
	title  string
	now    func() time.Time
}

// ConversionResult records the outcome of one chart conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Notes      []chord2md.Note
	Duration   time.Duration
	Err        error
}

// convertBatch fans the files out over the pool's workers. Results come
// back indexed by input order regardless of completion order.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params conversionParams) []ConversionResult {
	results := make([]ConversionResult, len(files))
	jobs := make(chan int)

	workers := pool.Size()
	if workers > len(files) {
		workers = len(files)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc, err := pool.Acquire()
			if err != nil {
				for idx := range jobs {
					results[idx] = ConversionResult{InputPath: files[idx].InputPath, Err: err}
				}
				return
			}
			defer pool.Release(svc)
			for idx := range jobs {
				results[idx] = convertFile(ctx, svc, files[idx], params)
			}
		}()
	}

	for idx := range files {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return results
}

// convertFile reads one chart, converts it to the requested format, and
// writes the result.
func convertFile(ctx context.Context, svc Converter, file FileToConvert, params conversionParams) ConversionResult {
	start := params.now()
	res := ConversionResult{InputPath: file.InputPath, OutputPath: file.OutputPath}

	data, err := os.ReadFile(file.InputPath) // #nosec G304 -- chart paths come from the command line
	if err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrReadChart, err)
		return res
	}

	out, notes, err := renderChart(ctx, svc, string(data), params.title, params.format)
	res.Notes = notes
	if err != nil {
		res.Err = err
		return res
	}

	if err := fileutil.WriteFile(file.OutputPath, out); err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return res
	}
	res.Duration = params.now().Sub(start)
	return res
}

// renderChart converts chart text into the requested format's bytes.
// Markdown output gains the trailing newline files end with; html and
// pdf pass through the rendering layers unchanged.
func renderChart(ctx context.Context, svc Converter, text, title, format string) ([]byte, []chord2md.Note, error) {
	input := chord2md.Input{Text: text, Title: title}
	res, err := svc.Convert(ctx, input)
	if err != nil {
		return nil, nil, err
	}
	switch format {
	case "html":
		page, err := svc.Preview(ctx, input)
		if err != nil {
			return nil, res.Notes, err
		}
		return []byte(page), res.Notes, nil
	case "pdf":
		pdf, err := svc.RenderPDF(ctx, input)
		if err != nil {
			return nil, res.Notes, err
		}
		return pdf, res.Notes, nil
	default:
		return []byte(res.Markdown + "\n"), res.Notes, nil
	}
}

// printResults reports each conversion and returns the failure count.
// Failures and notes go to stderr; created paths go to stdout.
func printResults(results []ConversionResult, env *Environment, quiet, verbose bool) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if quiet {
			continue
		}
		printNotes(env.Stderr, r.InputPath, r.Notes)
		if verbose {
			fmt.Fprintf(env.Stdout, "Created %s (%s)\n", absPath(r.OutputPath), r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", absPath(r.OutputPath))
		}
	}
	if len(results) > 1 && !quiet {
		fmt.Fprintf(env.Stdout, "%d succeeded, %d failed\n", len(results)-failed, failed)
	}
	return failed
}

// printNotes writes soft conversion notes, one line each. An empty path
// means the chart came from stdin.
func printNotes(w io.Writer, path string, notes []chord2md.Note) {
	for _, n := range notes {
		if path != "" {
			fmt.Fprintf(w, "note: %s:%d: %s\n", path, n.Line, n.Message)
		} else {
			fmt.Fprintf(w, "note: line %d: %s\n", n.Line, n.Message)
		}
	}
}

// absPath resolves path for display, falling back to the original when
// the working directory is gone.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// batchError reports how many conversions failed. Per-file details were
// already printed; the wrapped first failure classifies the exit code.
type batchError struct {
	failed int
	total  int
	first  error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d of %d conversions failed", e.failed, e.total)
}

func (e *batchError) Unwrap() error { return e.first }

// newBatchError builds a batchError from results, or nil when all
// conversions succeeded.
func newBatchError(results []ConversionResult) error {
	failed := 0
	var first error
	for _, r := range results {
		if r.Err != nil {
			failed++
			if first == nil {
				first = r.Err
			}
		}
	}
	if failed == 0 {
		return nil
	}
	return &batchError{failed: failed, total: len(results), first: first}
}
