package deckgen

// Notes:
// - Topic.Validate: required titles, unknown kinds, table shape, chart series
// - ContentItem unmarshaling: scalar bullets vs mapping items
// - Error messages name the offending slide and item

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestTopic_Validate - Topic Validation
// ---------------------------------------------------------------------------

func TestTopic_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		topic   *Topic
		wantErr error
	}{
		{
			name:    "valid minimal topic",
			topic:   &Topic{Title: "Physics", Slides: []Slide{{Title: "Intro"}}},
			wantErr: nil,
		},
		{
			name:    "valid topic with no slides",
			topic:   &Topic{Title: "Physics"},
			wantErr: nil,
		},
		{
			name:    "missing topic title",
			topic:   &Topic{Slides: []Slide{{Title: "Intro"}}},
			wantErr: ErrMissingTitle,
		},
		{
			name:    "missing slide title",
			topic:   &Topic{Title: "Physics", Slides: []Slide{{Title: ""}}},
			wantErr: ErrMissingSlideTitle,
		},
		{
			name: "bullet without text",
			topic: &Topic{Title: "Physics", Slides: []Slide{
				{Title: "Intro", Content: []ContentItem{{Kind: KindBullet}}},
			}},
			wantErr: ErrMissingText,
		},
		{
			name: "note without text",
			topic: &Topic{Title: "Physics", Slides: []Slide{
				{Title: "Intro", Content: []ContentItem{{Kind: KindNote}}},
			}},
			wantErr: ErrMissingText,
		},
		{
			name: "unknown kind",
			topic: &Topic{Title: "Physics", Slides: []Slide{
				{Title: "Intro", Content: []ContentItem{{Kind: "sidebar", Text: "x"}}},
			}},
			wantErr: ErrUnknownKind,
		},
		{
			name: "components without items",
			topic: &Topic{Title: "Physics", Slides: []Slide{
				{Title: "Intro", Content: []ContentItem{{Kind: KindComponents}}},
			}},
			wantErr: ErrMissingText,
		},
		{
			name: "solution without steps",
			topic: &Topic{Title: "Physics", Slides: []Slide{
				{Title: "Intro", Content: []ContentItem{{Kind: KindSolution}}},
			}},
			wantErr: ErrMissingText,
		},
		{
			name: "table without headers",
			topic: &Topic{Title: "Physics", Slides: []Slide{
				{Title: "Intro", Content: []ContentItem{{Kind: KindTable, Rows: [][]string{{"a"}}}}},
			}},
			wantErr: ErrEmptyTableHeaders,
		},
		{
			name: "table row column mismatch",
			topic: &Topic{Title: "Physics", Slides: []Slide{
				{Title: "Intro", Content: []ContentItem{{
					Kind:    KindTable,
					Headers: []string{"a", "b"},
					Rows:    [][]string{{"1", "2"}, {"3"}},
				}}},
			}},
			wantErr: ErrTableColumnMismatch,
		},
		{
			name: "valid table",
			topic: &Topic{Title: "Physics", Slides: []Slide{
				{Title: "Intro", Content: []ContentItem{{
					Kind:    KindTable,
					Headers: []string{"a", "b"},
					Rows:    [][]string{{"1", "2"}},
				}}},
			}},
			wantErr: nil,
		},
		{
			name: "bar chart empty series",
			topic: &Topic{Title: "Physics", Slides: []Slide{
				{Title: "Intro", Content: []ContentItem{{Kind: KindBarChart}}},
			}},
			wantErr: ErrEmptyChartSeries,
		},
		{
			name: "bar chart length mismatch",
			topic: &Topic{Title: "Physics", Slides: []Slide{
				{Title: "Intro", Content: []ContentItem{{
					Kind:       KindBarChart,
					Categories: []string{"a", "b"},
					Values:     []float64{1},
				}}},
			}},
			wantErr: ErrChartSeriesMismatch,
		},
		{
			name: "line chart length mismatch",
			topic: &Topic{Title: "Physics", Slides: []Slide{
				{Title: "Intro", Content: []ContentItem{{
					Kind: KindLineChart,
					X:    []float64{1, 2},
					Y:    []float64{1},
				}}},
			}},
			wantErr: ErrChartSeriesMismatch,
		},
		{
			name: "valid pie chart",
			topic: &Topic{Title: "Physics", Slides: []Slide{
				{Title: "Intro", Content: []ContentItem{{
					Kind:   KindPieChart,
					Labels: []string{"a", "b"},
					Values: []float64{1, 2},
				}}},
			}},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.topic.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTopic_Validate_NamesOffendingSlide(t *testing.T) {
	t.Parallel()

	topic := &Topic{Title: "Physics", Slides: []Slide{
		{Title: "Good", Content: []ContentItem{{Text: "fine"}}},
		{Title: "Bad", Content: []ContentItem{{Kind: "mystery", Text: "x"}}},
	}}

	err := topic.Validate()
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("Validate() = %v, want ErrUnknownKind", err)
	}
	if !strings.Contains(err.Error(), "Bad") {
		t.Errorf("error %q should name the slide", err)
	}
	if !strings.Contains(err.Error(), "mystery") {
		t.Errorf("error %q should name the kind", err)
	}
}

// ---------------------------------------------------------------------------
// TestContentItem_Unmarshal - Scalar and Mapping Forms
// ---------------------------------------------------------------------------

func TestContentItem_Unmarshal(t *testing.T) {
	t.Parallel()

	yaml := `
title: Waves
slides:
  - title: Basics
    content:
      - A plain bullet
      - kind: note
        text: Remember this
      - kind: components
        items: [one, two]
      - kind: solution
        steps: [first, second]
`
	topic, err := ParseTopic([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseTopic() error = %v", err)
	}

	content := topic.Slides[0].Content
	if len(content) != 4 {
		t.Fatalf("got %d content items, want 4", len(content))
	}
	if content[0].Kind != KindBullet || content[0].Text != "A plain bullet" {
		t.Errorf("scalar item = %+v, want bullet", content[0])
	}
	if content[1].Kind != KindNote || content[1].Text != "Remember this" {
		t.Errorf("note item = %+v", content[1])
	}
	if len(content[2].Items) != 2 {
		t.Errorf("components items = %v, want 2", content[2].Items)
	}
	if len(content[3].Steps) != 2 {
		t.Errorf("solution steps = %v, want 2", content[3].Steps)
	}
}

func TestContentItem_IsGraphic(t *testing.T) {
	t.Parallel()

	graphic := []string{KindTable, KindBarChart, KindLineChart, KindPieChart, KindScatterChart}
	for _, kind := range graphic {
		item := ContentItem{Kind: kind}
		if !item.IsGraphic() {
			t.Errorf("IsGraphic(%q) = false, want true", kind)
		}
	}
	for _, kind := range []string{KindBullet, KindNote, KindComponents, KindSolution} {
		item := ContentItem{Kind: kind}
		if item.IsGraphic() {
			t.Errorf("IsGraphic(%q) = true, want false", kind)
		}
	}
}
