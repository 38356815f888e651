package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	chord2md "github.com/alnah/go-chord2md"
	"github.com/alnah/go-chord2md/internal/config"
	"github.com/alnah/go-chord2md/internal/fileutil"
	"github.com/alnah/go-chord2md/internal/hints"
)

// runConvert drives the convert command. The mode follows the input:
// positional arguments select file mode, a stdin pipe selects piped
// mode, and an interactive terminal prompts for a chart to paste.
func runConvert(ctx context.Context, inputs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	if len(inputs) > 0 {
		return runFileMode(ctx, inputs, flags, cfg, env)
	}
	if env.StdinIsTerminal() {
		return runInteractiveMode(ctx, flags, cfg, env)
	}
	return runPipedMode(ctx, flags, cfg, env)
}

// resolveConfig loads the config file and overlays the environment and
// flag tiers, then re-validates the merged result.
func resolveConfig(flags *convertFlags) (*config.Config, error) {
	envCfg := loadEnvConfig()

	path := flags.common.config
	if path == "" {
		path = envCfg.ConfigPath
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		if errors.Is(err, config.ErrInvalidConfig) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigParse())
		}
		return nil, err
	}

	applyEnvConfig(envCfg, cfg)
	if err := mergeFlags(flags, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags overlays explicit flags onto cfg, the highest tier.
func mergeFlags(flags *convertFlags, cfg *config.Config) error {
	if flags.output.format != "" {
		cfg.Convert.Format = flags.output.format
	}
	if flags.workers > 0 {
		cfg.Convert.Workers = flags.workers
	}
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q (want a positive duration such as 30s)", ErrInvalidTimeout, flags.timeout)
		}
		cfg.Convert.TimeoutSeconds = durationToSeconds(d)
	}
	if flags.output.overwrite {
		cfg.Output.Overwrite = true
	}
	if flags.render.css != "" {
		cfg.Preview.Stylesheet = flags.render.css
	}
	if flags.render.margin > 0 {
		cfg.PDF.MarginInches = flags.render.margin
	}
	return nil
}

// serviceOptions translates resolved settings into library options.
func serviceOptions(cfg *config.Config) ([]chord2md.Option, error) {
	opts := []chord2md.Option{
		chord2md.WithTimeout(cfg.Timeout()),
		chord2md.WithMargin(cfg.PDF.MarginInches),
	}
	if len(cfg.Chords.Qualities) > 0 {
		opts = append(opts, chord2md.WithChordQualities(cfg.Chords.Qualities...))
	}
	if cfg.Preview.Stylesheet != "" {
		css, err := os.ReadFile(cfg.Preview.Stylesheet) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("reading stylesheet: %w", err)
		}
		opts = append(opts, chord2md.WithStylesheet(string(css)))
	}
	return opts, nil
}

// runFileMode converts the named charts and directories on a worker
// pool, writing one output file per chart.
func runFileMode(ctx context.Context, inputs []string, flags *convertFlags, cfg *config.Config, env *Environment) error {
	charts, err := discoverCharts(inputs)
	if err != nil {
		return err
	}

	files, err := planBatch(charts, flags, cfg, env.Now)
	if err != nil {
		return err
	}

	opts, err := serviceOptions(cfg)
	if err != nil {
		return err
	}

	if flags.output.stdout {
		return convertToStdout(ctx, files, flags, cfg, opts, env)
	}

	size := chord2md.ResolvePoolSize(cfg.Convert.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", size)
	}
	pool := chord2md.NewServicePool(size, opts...)
	defer func() { _ = pool.Close() }()

	params := conversionParams{format: cfg.Convert.Format, title: cfg.Preview.Title, now: env.Now}
	results := convertBatch(ctx, servicePool{inner: pool}, files, params)
	printResults(results, env, flags.common.quiet, flags.common.verbose)
	return newBatchError(results)
}

// planBatch resolves the output path for every discovered chart. An
// --output that ends with the format's extension names a single output
// file and is only valid for a single chart.
func planBatch(charts []string, flags *convertFlags, cfg *config.Config, now func() time.Time) ([]FileToConvert, error) {
	format := cfg.Convert.Format
	if out := flags.output.output; namesOutputFile(out, format) {
		if len(charts) > 1 {
			return nil, fmt.Errorf("%w: --output %s names a file but %d charts were given",
				ErrOutputConflict, out, len(charts))
		}
		return []FileToConvert{{InputPath: charts[0], OutputPath: out}}, nil
	}
	return planOutputs(charts, outputDir(flags, cfg), format, cfg.Output.Overwrite, now), nil
}

// namesOutputFile reports whether the --output value is a file for the
// given format rather than a directory.
func namesOutputFile(output, format string) bool {
	return output != "" && strings.EqualFold(filepath.Ext(output), "."+format)
}

// outputDir picks the destination directory: the --output flag, then the
// configured dir, then the current directory.
func outputDir(flags *convertFlags, cfg *config.Config) string {
	if flags.output.output != "" {
		return flags.output.output
	}
	if cfg.Output.Dir != "" {
		return cfg.Output.Dir
	}
	return "."
}

// convertToStdout converts the batch sequentially and streams every
// result to stdout instead of files.
func convertToStdout(ctx context.Context, files []FileToConvert, flags *convertFlags, cfg *config.Config, opts []chord2md.Option, env *Environment) error {
	svc, err := chord2md.New(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	for _, file := range files {
		data, err := os.ReadFile(file.InputPath) // #nosec G304 -- chart paths come from the command line
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadChart, err)
		}
		out, notes, err := renderChart(ctx, svc, string(data), cfg.Preview.Title, cfg.Convert.Format)
		if err != nil {
			return fmt.Errorf("converting %s: %w", file.InputPath, err)
		}
		if !flags.common.quiet {
			printNotes(env.Stderr, file.InputPath, notes)
		}
		if _, err := env.Stdout.Write(out); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	return nil
}

// runPipedMode reads a chart from redirected stdin and writes the
// conversion to stdout, or to a file when --output asks for one.
func runPipedMode(ctx context.Context, flags *convertFlags, cfg *config.Config, env *Environment) error {
	text, err := readAllInput(env.Stdin)
	if err != nil {
		return err
	}

	out, notes, err := convertStdin(ctx, cfg, text)
	if err != nil {
		return err
	}
	if !flags.common.quiet {
		printNotes(env.Stderr, "", notes)
	}

	if flags.output.output == "" || flags.output.stdout {
		if _, err := env.Stdout.Write(out); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	path := stdinOutputPath(flags, cfg, env.Now)
	if err := fileutil.WriteFile(path, out); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", absPath(path))
	}
	return nil
}

// runInteractiveMode prompts for a chart on the terminal, reads until
// EOF, and saves the conversion under a default name.
func runInteractiveMode(ctx context.Context, flags *convertFlags, cfg *config.Config, env *Environment) error {
	printPasteInstructions(env.Stdout)

	text, err := readAllInput(env.Stdin)
	if err != nil {
		return err
	}

	out, notes, err := convertStdin(ctx, cfg, text)
	if err != nil {
		return err
	}
	if !flags.common.quiet {
		printNotes(env.Stderr, "", notes)
	}

	if flags.output.stdout {
		if _, err := env.Stdout.Write(out); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	path := stdinOutputPath(flags, cfg, env.Now)
	if err := fileutil.WriteFile(path, out); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	fmt.Fprintf(env.Stdout, "\nConversion complete. Output saved to:\n%s\n", absPath(path))
	return nil
}

// convertStdin runs one conversion for text that arrived on stdin.
func convertStdin(ctx context.Context, cfg *config.Config, text string) ([]byte, []chord2md.Note, error) {
	opts, err := serviceOptions(cfg)
	if err != nil {
		return nil, nil, err
	}
	svc, err := chord2md.New(opts...)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = svc.Close() }()
	return renderChart(ctx, svc, text, cfg.Preview.Title, cfg.Convert.Format)
}

// readAllInput drains stdin up to one byte past the library's input cap,
// leaving oversize detection to Input validation.
func readAllInput(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, chord2md.MaxInputSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadChart, err)
	}
	return string(data), nil
}

// stdinOutputPath names the output for a stdin-origin conversion:
// --output when it names a file, otherwise converted_chords.<ext> in
// the destination directory with the usual collision avoidance.
func stdinOutputPath(flags *convertFlags, cfg *config.Config, now func() time.Time) string {
	format := cfg.Convert.Format
	if out := flags.output.output; namesOutputFile(out, format) {
		return out
	}
	candidate := filepath.Join(outputDir(flags, cfg), stdinStem+"."+format)
	if cfg.Output.Overwrite {
		return candidate
	}
	return fileutil.UniqueOutputPath(candidate, now)
}

// printPasteInstructions explains how to terminate interactive input.
func printPasteInstructions(w io.Writer) {
	fmt.Fprint(w, `Paste your plain-text chord chart below. When you are finished, signal EOF:
  - On Unix or macOS: press Ctrl-D on a new line
  - On Windows (cmd.exe): press Ctrl-Z then Enter on a new line

Paste now and then send EOF.
`)
}
