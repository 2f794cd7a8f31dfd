package deckgen

import (
	"fmt"

	"github.com/alnah/go-deckgen/internal/yamlutil"
)

// Content kinds. A plain YAML string is a bullet and carries no kind.
const (
	KindBullet       = "" // plain text bullet
	KindNote         = "note"
	KindExample      = "example"
	KindProblem      = "problem"
	KindFormula      = "formula"
	KindComputation  = "computation"
	KindComponents   = "components"
	KindSolution     = "solution"
	KindTable        = "table"
	KindBarChart     = "bar_chart"
	KindLineChart    = "line_chart"
	KindPieChart     = "pie_chart"
	KindScatterChart = "scatter_chart"
)

// Topic is one subject's full slide deck definition, loaded from a single
// YAML file. Topics are read once, rendered, and discarded.
type Topic struct {
	Title    string  `yaml:"title"`
	Subtitle string  `yaml:"subtitle"`
	Slides   []Slide `yaml:"slides"`
}

// Slide is a titled, ordered sequence of content items. An empty content
// list renders a title-only slide.
type Slide struct {
	Title   string        `yaml:"title"`
	Content []ContentItem `yaml:"content"`
}

// ContentItem is a tagged content block. The Kind discriminator selects the
// template used by both renderers; only the fields for that kind are read.
// A YAML scalar decodes into a bullet (empty Kind, Text set).
type ContentItem struct {
	Kind string `yaml:"kind"`
	Text string `yaml:"text"`

	// components / solution
	Items []string `yaml:"items"`
	Steps []string `yaml:"steps"`

	// table
	Headers []string   `yaml:"headers"`
	Rows    [][]string `yaml:"rows"`

	// charts
	Categories []string  `yaml:"categories"`
	Labels     []string  `yaml:"labels"`
	Values     []float64 `yaml:"values"`
	X          []float64 `yaml:"x"`
	Y          []float64 `yaml:"y"`
	Series     string    `yaml:"series"`
	XLabel     string    `yaml:"xlabel"`
	YLabel     string    `yaml:"ylabel"`
}

// UnmarshalYAML accepts either a plain scalar (bullet) or a mapping with a
// kind discriminator.
func (c *ContentItem) UnmarshalYAML(data []byte) error {
	var text string
	if err := yamlutil.Unmarshal(data, &text); err == nil {
		*c = ContentItem{Text: text}
		return nil
	}

	type plain ContentItem // drops the method set to avoid recursion
	var p plain
	if err := yamlutil.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = ContentItem(p)
	return nil
}

// IsChart reports whether the item is one of the four chart kinds.
func (c *ContentItem) IsChart() bool {
	switch c.Kind {
	case KindBarChart, KindLineChart, KindPieChart, KindScatterChart:
		return true
	}
	return false
}

// IsGraphic reports whether the item renders as a standalone graphic shape
// (table or chart) rather than a text paragraph.
func (c *ContentItem) IsGraphic() bool {
	return c.Kind == KindTable || c.IsChart()
}

// Validate checks the structural invariants of the topic: required titles,
// known content kinds, table shapes, and chart series lengths. Errors name
// the offending slide and item.
func (t *Topic) Validate() error {
	if t.Title == "" {
		return ErrMissingTitle
	}
	for i, slide := range t.Slides {
		if slide.Title == "" {
			return fmt.Errorf("%w: slide %d", ErrMissingSlideTitle, i+1)
		}
		for j, item := range slide.Content {
			if err := item.validate(); err != nil {
				return fmt.Errorf("slide %q item %d: %w", slide.Title, j+1, err)
			}
		}
	}
	return nil
}

// validate checks a single content item against the rules for its kind.
func (c *ContentItem) validate() error {
	switch c.Kind {
	case KindBullet, KindNote, KindExample, KindProblem, KindFormula, KindComputation:
		if c.Text == "" {
			return fmt.Errorf("%w (kind %q)", ErrMissingText, c.Kind)
		}
		return nil

	case KindComponents:
		if len(c.Items) == 0 {
			return fmt.Errorf("%w: components need at least one item", ErrMissingText)
		}
		return nil

	case KindSolution:
		if len(c.Steps) == 0 {
			return fmt.Errorf("%w: solution needs at least one step", ErrMissingText)
		}
		return nil

	case KindTable:
		return c.validateTable()

	case KindBarChart:
		return validateSeries(len(c.Categories), len(c.Values))
	case KindLineChart, KindScatterChart:
		return validateSeries(len(c.X), len(c.Y))
	case KindPieChart:
		return validateSeries(len(c.Labels), len(c.Values))

	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind)
	}
}

// validateTable enforces the pinned column policy: every row must carry
// exactly as many cells as there are headers. No padding.
func (c *ContentItem) validateTable() error {
	if len(c.Headers) == 0 {
		return ErrEmptyTableHeaders
	}
	for i, row := range c.Rows {
		if len(row) != len(c.Headers) {
			return fmt.Errorf("%w: row %d has %d columns, headers have %d",
				ErrTableColumnMismatch, i+1, len(row), len(c.Headers))
		}
	}
	return nil
}

// validateSeries checks that paired chart series are non-empty and equal length.
func validateSeries(a, b int) error {
	if a == 0 || b == 0 {
		return ErrEmptyChartSeries
	}
	if a != b {
		return fmt.Errorf("%w: %d vs %d", ErrChartSeriesMismatch, a, b)
	}
	return nil
}
