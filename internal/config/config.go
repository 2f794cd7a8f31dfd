// Package config loads the deckgen CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-deckgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidFormat   = errors.New("invalid output format")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits. Paths get a generous bound; names stay short.
const (
	MaxPathLength     = 1024
	MaxTemplateLength = 256
	MaxBinaryLength   = 256
)

// Output format names accepted in config and on the command line.
const (
	FormatDeck = "pptx"
	FormatTex  = "latex"
)

// Config holds all configuration for artifact generation.
type Config struct {
	Input    InputConfig  `yaml:"input"`
	Output   OutputConfig `yaml:"output"`
	Formats  []string     `yaml:"formats"`  // "pptx", "latex"; empty = both
	Engine   EngineConfig `yaml:"engine"`   // pdflatex invocation
	Template string       `yaml:"template"` // template name or .tex.tmpl path
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default topic directory (empty = must specify)
}

// OutputConfig defines where each artifact family is written. Relative
// directory structure under the input dir is mirrored beneath each.
type OutputConfig struct {
	DeckDir string `yaml:"deckDir"` // .pptx files (default "decks")
	TexDir  string `yaml:"texDir"`  // .tex files + chart assets (default "slides")
	PDFDir  string `yaml:"pdfDir"`  // compiled PDFs (default "pdfs")
}

// EngineConfig defines the external typesetting engine invocation.
type EngineConfig struct {
	Binary  string `yaml:"binary"`  // default "pdflatex"
	Compile bool   `yaml:"compile"` // compile .tex output to PDF
}

// DefaultConfig returns the configuration used when no file is given:
// both formats, standard output directories, compilation enabled.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			DeckDir: "decks",
			TexDir:  "slides",
			PDFDir:  "pdfs",
		},
		Engine: EngineConfig{
			Binary:  "pdflatex",
			Compile: true,
		},
	}
}

// Validate checks formats and field lengths.
func (c *Config) Validate() error {
	for _, f := range c.Formats {
		switch strings.ToLower(f) {
		case FormatDeck, FormatTex:
		default:
			return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidFormat, f, FormatDeck, FormatTex)
		}
	}
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.deckDir", c.Output.DeckDir, MaxPathLength},
		{"output.texDir", c.Output.TexDir, MaxPathLength},
		{"output.pdfDir", c.Output.PDFDir, MaxPathLength},
		{"template", c.Template, MaxTemplateLength},
		{"engine.binary", c.Engine.Binary, MaxBinaryLength},
	}
	for _, f := range fields {
		if len(f.value) > f.max {
			return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, f.name, len(f.value), f.max)
		}
	}
	return nil
}

// WantsFormat reports whether the named format is enabled. An empty formats
// list enables everything.
func (c *Config) WantsFormat(format string) bool {
	if len(c.Formats) == 0 {
		return true
	}
	for _, f := range c.Formats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-deckgen/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-deckgen", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
