package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	deckgen "github.com/alnah/go-deckgen"
	"github.com/alnah/go-deckgen/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"engine not found", deckgen.ErrEngineNotFound, ExitEngine},
		{"engine failed", deckgen.ErrEngineFailed, ExitEngine},
		{"topic not found", deckgen.ErrTopicNotFound, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"write failure", ErrWriteArtifact, ExitIO},
		{"os not exist", os.ErrNotExist, ExitIO},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"topic parse", deckgen.ErrTopicParse, ExitUsage},
		{"missing title", deckgen.ErrMissingTitle, ExitUsage},
		{"unknown kind", deckgen.ErrUnknownKind, ExitUsage},
		{"table mismatch", deckgen.ErrTableColumnMismatch, ExitUsage},
		{"chart mismatch", deckgen.ErrChartSeriesMismatch, ExitUsage},
		{"bad extension", ErrInvalidExtension, ExitUsage},
		{"generic", errors.New("anything else"), ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFor_WrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("loading config: %w", config.ErrConfigNotFound)
	if got := exitCodeFor(wrapped); got != ExitUsage {
		t.Errorf("exitCodeFor(wrapped) = %d, want %d", got, ExitUsage)
	}

	deep := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", deckgen.ErrEngineFailed))
	if got := exitCodeFor(deep); got != ExitEngine {
		t.Errorf("exitCodeFor(deeply wrapped) = %d, want %d", got, ExitEngine)
	}
}
