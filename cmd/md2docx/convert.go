package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoCommand          = errors.New("no command specified")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrBadFlags           = errors.New("invalid flags")
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteDOCX          = errors.New("failed to write DOCX file")
	ErrWriteHTML          = errors.New("failed to write HTML preview")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// MaxWorkers bounds the --workers flag.
const MaxWorkers = 64

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input md2docx.Input) (*md2docx.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ Converter = (*md2docx.Converter)(nil)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	// Load configuration; the --config flag wins over MD2DOCX_CONFIG
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	cfg := config.DefaultConfig()
	var err error
	if configName != "" {
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge environment then CLI flags into config (CLI wins)
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if flags.workers == 0 && envCfg.Workers > 0 {
		flags.workers = envCfg.Workers
		if err := validateWorkers(flags.workers); err != nil {
			return err
		}
	}

	// Resolve input path
	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	// Resolve output directory
	outputDir := resolveOutputDir(flags.output, cfg)

	// "-" reads markdown from stdin and converts a single document
	if inputPath == "-" {
		conv, err := buildConverter(cfg)
		if err != nil {
			return err
		}
		return convertStdin(ctx, conv, outputDir, cfg.Preview.Enabled, flags.common.quiet, env)
	}

	// Discover files to convert
	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	// Build the converter shared by all workers
	conv, err := buildConverter(cfg)
	if err != nil {
		return err
	}

	// Convert files
	workers := resolveWorkers(flags.workers)
	results := convertBatch(ctx, conv, workers, files, cfg.Preview.Enabled)

	// Print results
	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.timeout != "" {
		cfg.Timeout = flags.timeout
	}
	if flags.outputMode.preview {
		cfg.Preview.Enabled = true
	}
}

// buildConverter creates the conversion service from merged config.
func buildConverter(cfg *config.Config) (Converter, error) {
	var opts []md2docx.Option

	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, cfg.Timeout)
		}
		opts = append(opts, md2docx.WithTimeout(d))
	}
	if cfg.Document.Title != "" {
		opts = append(opts, md2docx.WithTitle(cfg.Document.Title))
	}

	return md2docx.NewConverter(opts...), nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// discoverFiles finds all markdown files to convert.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.IsMarkdown(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !fileutil.IsMarkdown(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the DOCX output path for a markdown file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	base := filepath.Base(fileutil.ReplaceExtension(inputPath, ".docx"))

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if strings.HasSuffix(outputDir, ".docx") {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base)
		}
	}

	return filepath.Join(outputDir, base)
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}

// resolveWorkers maps 0 (auto) to the number of CPUs.
func resolveWorkers(n int) int {
	if n == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// convertBatch processes files concurrently. The Converter is stateless
// and shared by all workers.
func convertBatch(ctx context.Context, conv Converter, workers int, files []FileToConvert, preview bool) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	if workers > len(files) {
		workers = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], preview)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv Converter, f FileToConvert, preview bool) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	res, err := conv.Convert(ctx, md2docx.Input{
		Markdown:    string(content),
		HTMLPreview: preview,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- generated documents are meant to be readable
	if err := os.WriteFile(f.OutputPath, res.DOCX, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteDOCX, err)
		result.Duration = time.Since(start)
		return result
	}

	if len(res.HTML) > 0 {
		previewPath := fileutil.ReplaceExtension(f.OutputPath, ".html")
		// #nosec G306 -- generated documents are meant to be readable
		if err := os.WriteFile(previewPath, res.HTML, filePermissions); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteHTML, err)
			result.Duration = time.Since(start)
			return result
		}
	}

	result.Duration = time.Since(start)
	return result
}

// convertStdin reads markdown from stdin and writes a single document.
func convertStdin(ctx context.Context, conv Converter, outputDir string, preview, quiet bool, env *Environment) error {
	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	outputPath := stdinOutputPath(outputDir)
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	res, err := conv.Convert(ctx, md2docx.Input{
		Markdown:    string(content),
		HTMLPreview: preview,
	})
	if err != nil {
		return err
	}

	// #nosec G306 -- generated documents are meant to be readable
	if err := os.WriteFile(outputPath, res.DOCX, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDOCX, err)
	}
	if len(res.HTML) > 0 {
		previewPath := fileutil.ReplaceExtension(outputPath, ".html")
		// #nosec G306 -- generated documents are meant to be readable
		if err := os.WriteFile(previewPath, res.HTML, filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteHTML, err)
		}
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	}
	return nil
}

// stdinOutputPath picks the output file for stdin input: an explicit
// .docx path is used as-is, a directory gets out.docx inside it, and
// no output at all means out.docx in the working directory.
func stdinOutputPath(outputDir string) string {
	switch {
	case outputDir == "":
		return "out.docx"
	case strings.HasSuffix(outputDir, ".docx"):
		return outputDir
	default:
		return filepath.Join(outputDir, "out.docx")
	}
}

// printResultsWithWriter outputs conversion results using the provided writers.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
