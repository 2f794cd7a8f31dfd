package deckgen

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func testTopic() *Topic {
	return &Topic{
		Title: "Chemistry",
		Slides: []Slide{
			{Title: "Bonds", Content: []ContentItem{{Text: "Covalent"}, {Text: "Ionic"}}},
		},
	}
}

func TestService_Generate_AllFormats(t *testing.T) {
	t.Parallel()

	svc, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	artifacts, err := svc.Generate(context.Background(), testTopic())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if artifacts.Deck == nil {
		t.Error("Deck should be rendered by default")
	}
	if artifacts.TexSource == nil {
		t.Error("TexSource should be rendered by default")
	}
	if !strings.Contains(string(artifacts.TexSource), `\begin{document}`) {
		t.Error("TexSource is not a LaTeX document")
	}
}

func TestService_Generate_FormatSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		formats  []string
		wantDeck bool
		wantTex  bool
	}{
		{"deck only", []string{FormatDeck}, true, false},
		{"latex only", []string{FormatTex}, false, true},
		{"both explicit", []string{FormatDeck, FormatTex}, true, true},
		{"case insensitive", []string{"PPTX"}, true, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, err := New(WithFormats(tt.formats...))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			artifacts, err := svc.Generate(context.Background(), testTopic())
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if (artifacts.Deck != nil) != tt.wantDeck {
				t.Errorf("Deck rendered = %v, want %v", artifacts.Deck != nil, tt.wantDeck)
			}
			if (artifacts.TexSource != nil) != tt.wantTex {
				t.Errorf("TexSource rendered = %v, want %v", artifacts.TexSource != nil, tt.wantTex)
			}
		})
	}
}

func TestService_New_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := New(WithFormats("keynote"))
	if err == nil || !strings.Contains(err.Error(), "keynote") {
		t.Fatalf("New() = %v, want unknown format error naming it", err)
	}
}

func TestService_New_MissingTemplate(t *testing.T) {
	t.Parallel()

	_, err := New(WithTemplate("nonexistent"))
	if err == nil {
		t.Fatal("New() with missing template should fail")
	}
}

func TestService_Generate_ContextCancelled(t *testing.T) {
	t.Parallel()

	svc, err := New()
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.Generate(ctx, testTopic())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Generate() = %v, want context.Canceled", err)
	}
}

func TestService_Generate_InvalidTopic(t *testing.T) {
	t.Parallel()

	svc, err := New()
	if err != nil {
		t.Fatal(err)
	}
	_, err = svc.Generate(context.Background(), &Topic{Subtitle: "no title"})
	if !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("Generate() = %v, want ErrMissingTitle", err)
	}
}

func TestService_Reuse(t *testing.T) {
	t.Parallel()

	svc, err := New(WithFormats(FormatTex))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := svc.Generate(context.Background(), testTopic()); err != nil {
			t.Fatalf("Generate() run %d error = %v", i, err)
		}
	}
}
