package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	deckgen "github.com/alnah/go-deckgen"
	"github.com/alnah/go-deckgen/internal/assets"
	"github.com/alnah/go-deckgen/internal/config"
	"github.com/alnah/go-deckgen/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrInvalidExtension = errors.New("file must have .yml or .yaml extension")
	ErrWriteArtifact    = errors.New("failed to write output file")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Generator is the interface for the generation service.
type Generator interface {
	Generate(ctx context.Context, topic *deckgen.Topic) (*deckgen.Artifacts, error)
}

// Compile-time interface implementation check.
var _ Generator = (*deckgen.Service)(nil)

// Compiler abstracts PDF compilation for testability.
type Compiler interface {
	Compile(ctx context.Context, texPath, pdfDir string) (string, error)
}

// Compile-time interface implementation check.
var _ Compiler = (*deckgen.Engine)(nil)

// TopicFile is a single discovered topic and its output mapping.
type TopicFile struct {
	InputPath string
	RelDir    string // directory relative to the input root, "." for flat
}

// GenerationResult holds the outcome for one topic file.
type GenerationResult struct {
	InputPath string
	Outputs   []string
	Err       error
	Duration  time.Duration
}

// runGenerate orchestrates topic discovery, rendering, and PDF compilation.
func runGenerate(ctx context.Context, positionalArgs []string, flags *generateFlags, env *Environment) error {
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	mergeFlags(flags, cfg)

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	files, err := discoverTopics(inputPath)
	if err != nil {
		return fmt.Errorf("discovering topics: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no topic files found in %s", inputPath)
	}

	svc, err := buildService(cfg, env)
	if err != nil {
		return err
	}

	// Engine is optional: a missing binary degrades to source-only output.
	var compiler Compiler
	if cfg.WantsFormat(config.FormatTex) && cfg.Engine.Compile {
		engine := deckgen.NewEngine(cfg.Engine.Binary)
		if err := engine.Available(); err != nil {
			env.Logger.Warn("LaTeX engine not found, skipping PDF compilation", "binary", cfg.Engine.Binary)
		} else {
			compiler = engine
		}
	}

	results := generateBatch(ctx, svc, compiler, files, cfg)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d topic(s) failed", failed)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if len(flags.formats) > 0 {
		cfg.Formats = flags.formats
	}
	if flags.template != "" {
		cfg.Template = flags.template
	}
	if flags.output.deckDir != "" {
		cfg.Output.DeckDir = flags.output.deckDir
	}
	if flags.output.texDir != "" {
		cfg.Output.TexDir = flags.output.texDir
	}
	if flags.output.pdfDir != "" {
		cfg.Output.PDFDir = flags.output.pdfDir
	}
	if flags.output.base != "" {
		if flags.output.deckDir == "" {
			cfg.Output.DeckDir = filepath.Join(flags.output.base, cfg.Output.DeckDir)
		}
		if flags.output.texDir == "" {
			cfg.Output.TexDir = filepath.Join(flags.output.base, cfg.Output.TexDir)
		}
		if flags.output.pdfDir == "" {
			cfg.Output.PDFDir = filepath.Join(flags.output.base, cfg.Output.PDFDir)
		}
	}
	if flags.engine.binary != "" {
		cfg.Engine.Binary = flags.engine.binary
	}
	if flags.engine.noCompile {
		cfg.Engine.Compile = false
	}
}

// buildService assembles the generation service from config. A template path
// with separators loads from disk; a bare name loads via the environment.
func buildService(cfg *config.Config, env *Environment) (*deckgen.Service, error) {
	opts := []deckgen.Option{
		deckgen.WithFormats(cfg.Formats...),
		deckgen.WithAssetLoader(env.Templates),
	}
	if cfg.Template != "" {
		if fileutil.IsFilePath(cfg.Template) {
			dir := filepath.Dir(cfg.Template)
			name := strings.TrimSuffix(filepath.Base(cfg.Template), ".tex.tmpl")
			opts = append(opts,
				deckgen.WithAssetLoader(assets.NewDirLoader(dir)),
				deckgen.WithTemplate(name))
		} else {
			opts = append(opts, deckgen.WithTemplate(cfg.Template))
		}
	}
	return deckgen.New(opts...)
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

// discoverTopics finds the topic files to generate. A file input must have a
// YAML extension; a directory is walked recursively; a pattern with glob
// metacharacters is expanded and matching topic files are taken flat.
func discoverTopics(inputPath string) ([]TopicFile, error) {
	if strings.ContainsAny(inputPath, "*?[") {
		return expandGlob(inputPath)
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.IsTopicFile(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		return []TopicFile{{InputPath: inputPath, RelDir: "."}}, nil
	}

	var files []TopicFile
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !fileutil.IsTopicFile(path) {
			return nil
		}
		rel, err := filepath.Rel(inputPath, path)
		if err != nil {
			return err
		}
		files = append(files, TopicFile{InputPath: path, RelDir: filepath.Dir(rel)})
		return nil
	})
	return files, err
}

// expandGlob resolves a glob pattern to topic files. Matches that are
// directories or lack a YAML extension are skipped.
func expandGlob(pattern string) ([]TopicFile, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	var files []TopicFile
	for _, m := range matches {
		if !fileutil.IsTopicFile(m) {
			continue
		}
		if info, err := os.Stat(m); err != nil || info.IsDir() {
			continue
		}
		files = append(files, TopicFile{InputPath: m, RelDir: "."})
	}
	return files, nil
}

// generateBatch processes topics one at a time in discovery order. A failed
// topic is recorded and the batch continues.
func generateBatch(ctx context.Context, svc Generator, compiler Compiler, files []TopicFile, cfg *config.Config) []GenerationResult {
	results := make([]GenerationResult, len(files))
	for i, f := range files {
		if ctx.Err() != nil {
			results[i] = GenerationResult{InputPath: f.InputPath, Err: ctx.Err()}
			continue
		}
		results[i] = generateTopic(ctx, svc, compiler, f, cfg)
	}
	return results
}

// generateTopic renders one topic and writes every enabled artifact.
func generateTopic(ctx context.Context, svc Generator, compiler Compiler, f TopicFile, cfg *config.Config) GenerationResult {
	start := time.Now()
	result := GenerationResult{InputPath: f.InputPath}
	fail := func(err error) GenerationResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	topic, err := deckgen.LoadTopic(f.InputPath)
	if err != nil {
		return fail(err)
	}

	artifacts, err := svc.Generate(ctx, topic)
	if err != nil {
		return fail(err)
	}

	stem := strings.TrimSuffix(filepath.Base(f.InputPath), filepath.Ext(f.InputPath))

	if artifacts.Deck != nil {
		deckPath := filepath.Join(cfg.Output.DeckDir, f.RelDir, stem+".pptx")
		if err := writeArtifact(deckPath, artifacts.Deck); err != nil {
			return fail(err)
		}
		result.Outputs = append(result.Outputs, deckPath)
	}

	if artifacts.TexSource != nil {
		texPath := filepath.Join(cfg.Output.TexDir, f.RelDir, stem+".tex")
		if err := writeArtifact(texPath, artifacts.TexSource); err != nil {
			return fail(err)
		}
		for rel, data := range artifacts.TexAssets {
			if err := writeArtifact(filepath.Join(filepath.Dir(texPath), rel), data); err != nil {
				return fail(err)
			}
		}
		result.Outputs = append(result.Outputs, texPath)

		if compiler != nil {
			pdfDir := filepath.Join(cfg.Output.PDFDir, f.RelDir)
			pdfPath, err := compiler.Compile(ctx, texPath, pdfDir)
			if err != nil {
				return fail(err)
			}
			result.Outputs = append(result.Outputs, pdfPath)
		}
	}

	result.Duration = time.Since(start)
	return result
}

// writeArtifact writes data to path, creating parent directories.
func writeArtifact(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteArtifact, err)
	}
	// #nosec G306 -- generated artifacts are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteArtifact, err)
	}
	return nil
}

// printResults outputs generation results and returns the failure count.
func printResults(results []GenerationResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "%s %s: %v\n", errorMark(), r.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		for _, out := range r.Outputs {
			if verbose {
				fmt.Fprintf(env.Stdout, "%s %s %s\n", successMark(), out,
					styleDim.Render(fmt.Sprintf("(%v)", r.Duration.Round(time.Millisecond))))
			} else {
				fmt.Fprintf(env.Stdout, "%s %s\n", successMark(), out)
			}
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%s succeeded, %s failed\n",
			styleNumber.Render(fmt.Sprintf("%d", succeeded)),
			styleNumber.Render(fmt.Sprintf("%d", failed)))
	}

	return failed
}
