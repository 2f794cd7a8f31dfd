package deckgen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/alnah/go-deckgen/internal/fileutil"
)

// CommandRunner abstracts external process execution so tests can compile
// without a TeX installation.
type CommandRunner interface {
	// Run executes name with args in dir and returns combined output.
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
	// LookPath reports whether name resolves to an executable.
	LookPath(name string) (string, error)
}

// execRunner runs real processes via os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- binary comes from config
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

func (execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Engine compiles .tex sources to PDF with an external LaTeX binary.
type Engine struct {
	runner CommandRunner
	binary string
}

// NewEngine creates an engine that shells out to the named binary,
// typically "pdflatex".
func NewEngine(binary string) *Engine {
	return NewEngineWithRunner(binary, execRunner{})
}

// NewEngineWithRunner creates an engine with a custom process runner.
func NewEngineWithRunner(binary string, runner CommandRunner) *Engine {
	return &Engine{runner: runner, binary: binary}
}

// Binary returns the configured engine binary name.
func (e *Engine) Binary() string { return e.binary }

// Available reports whether the engine binary is on PATH. Returns
// ErrEngineNotFound when it is not; callers degrade to source-only output.
func (e *Engine) Available() error {
	if _, err := e.runner.LookPath(e.binary); err != nil {
		return fmt.Errorf("%w: %s", ErrEngineNotFound, e.binary)
	}
	return nil
}

// auxExtensions are the byproduct files removed after a successful compile.
var auxExtensions = []string{".aux", ".log", ".out", ".nav", ".snm", ".toc"}

// Compile runs the engine twice over texPath (cross-references settle on the
// second pass), verifies the PDF, and copies it into pdfDir. Returns the
// final PDF path.
func (e *Engine) Compile(ctx context.Context, texPath, pdfDir string) (string, error) {
	dir := filepath.Dir(texPath)
	base := filepath.Base(texPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	for pass := 1; pass <= 2; pass++ {
		out, err := e.runner.Run(ctx, dir, e.binary, "-interaction=nonstopmode", "-halt-on-error", base)
		if err != nil {
			if errors.Is(err, exec.ErrNotFound) {
				return "", fmt.Errorf("%w: %s", ErrEngineNotFound, e.binary)
			}
			return "", fmt.Errorf("%w: pass %d: %v: %s", ErrEngineFailed, pass, err, outputTail(out))
		}
	}

	builtPDF := filepath.Join(dir, stem+".pdf")
	if !fileutil.FileExists(builtPDF) {
		return "", fmt.Errorf("%w: no PDF produced at %s", ErrEngineFailed, builtPDF)
	}

	finalPDF := filepath.Join(pdfDir, stem+".pdf")
	if err := fileutil.CopyFile(builtPDF, finalPDF, 0o644); err != nil {
		return "", fmt.Errorf("copying PDF: %w", err)
	}
	if finalPDF != builtPDF {
		_ = os.Remove(builtPDF)
	}

	// Byproducts are noise next to the .tex source; removal is best-effort.
	for _, ext := range auxExtensions {
		_ = os.Remove(filepath.Join(dir, stem+ext))
	}

	return finalPDF, nil
}

// outputTail trims engine output to its last lines for error messages; a full
// LaTeX log can run thousands of lines.
func outputTail(out []byte) string {
	const maxTail = 2000
	s := strings.TrimSpace(string(out))
	if len(s) > maxTail {
		s = "..." + s[len(s)-maxTail:]
	}
	return s
}
