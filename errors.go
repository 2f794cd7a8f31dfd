package deckgen

import "errors"

// Sentinel errors for library operations.
var (
	// Topic loading and validation errors.
	ErrTopicNotFound     = errors.New("topic file not found")
	ErrTopicParse        = errors.New("failed to parse topic")
	ErrMissingTitle      = errors.New("topic title is required")
	ErrMissingSlideTitle = errors.New("slide title is required")
	ErrMissingText       = errors.New("content item text is required")
	ErrUnknownKind       = errors.New("unknown content kind")

	// Table validation errors.
	ErrEmptyTableHeaders   = errors.New("table headers cannot be empty")
	ErrTableColumnMismatch = errors.New("table row column count does not match headers")

	// Chart validation errors.
	ErrEmptyChartSeries    = errors.New("chart series cannot be empty")
	ErrChartSeriesMismatch = errors.New("chart series lengths do not match")

	// Rendering errors.
	ErrDeckRender     = errors.New("deck rendering failed")
	ErrTemplateRender = errors.New("LaTeX template rendering failed")

	// Engine errors.
	ErrEngineNotFound = errors.New("typesetting engine not found")
	ErrEngineFailed   = errors.New("typesetting engine failed")
)
