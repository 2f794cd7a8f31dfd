package main

import (
	"errors"
	"os"

	deckgen "github.com/alnah/go-deckgen"
	"github.com/alnah/go-deckgen/internal/assets"
	"github.com/alnah/go-deckgen/internal/config"
)

// Exit codes for the deckgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // all topics generated
	ExitGeneral = 1 // general/unexpected error
	ExitUsage   = 2 // invalid flags, config, or topic validation
	ExitIO      = 3 // file not found, permission denied
	ExitEngine  = 4 // LaTeX engine errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Engine errors (exit 4)
	if errors.Is(err, deckgen.ErrEngineNotFound) ||
		errors.Is(err, deckgen.ErrEngineFailed) {
		return ExitEngine
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, deckgen.ErrTopicNotFound) ||
		errors.Is(err, ErrWriteArtifact) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidFormat) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, deckgen.ErrTopicParse) ||
		errors.Is(err, deckgen.ErrMissingTitle) ||
		errors.Is(err, deckgen.ErrMissingSlideTitle) ||
		errors.Is(err, deckgen.ErrMissingText) ||
		errors.Is(err, deckgen.ErrUnknownKind) ||
		errors.Is(err, deckgen.ErrEmptyTableHeaders) ||
		errors.Is(err, deckgen.ErrTableColumnMismatch) ||
		errors.Is(err, deckgen.ErrEmptyChartSeries) ||
		errors.Is(err, deckgen.ErrChartSeriesMismatch) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, ErrInvalidExtension) {
		return ExitUsage
	}

	return ExitGeneral
}
