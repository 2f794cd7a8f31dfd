package deckgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-deckgen/internal/assets"
)

// Output format names.
const (
	FormatDeck = "pptx"
	FormatTex  = "latex"
)

// DefaultTemplate is the bundled document template name.
const DefaultTemplate = "beamer"

// Artifacts holds everything Generate produced for one topic. Fields for
// disabled formats stay nil.
type Artifacts struct {
	Deck      []byte            // the .pptx container
	TexSource []byte            // the .tex document
	TexAssets map[string][]byte // chart PNGs, keyed by path relative to the .tex file
}

// Service turns topics into presentation artifacts. A Service is safe for
// reuse across topics.
type Service struct {
	theme        Theme
	formats      []string
	templateName string
	loader       assets.Loader

	deck *DeckRenderer
	tex  *TexRenderer
}

// Option configures a Service.
type Option func(*Service)

// WithTheme overrides the default color theme.
func WithTheme(theme Theme) Option {
	return func(s *Service) { s.theme = theme }
}

// WithFormats restricts output to the named formats. An empty list (the
// default) enables every format.
func WithFormats(formats ...string) Option {
	return func(s *Service) { s.formats = formats }
}

// WithTemplate selects the LaTeX document template by name.
func WithTemplate(name string) Option {
	return func(s *Service) { s.templateName = name }
}

// WithAssetLoader overrides where LaTeX templates are loaded from.
func WithAssetLoader(loader assets.Loader) Option {
	return func(s *Service) { s.loader = loader }
}

// New creates a Service with the given options. The LaTeX template is parsed
// eagerly so template errors surface at startup, not per topic.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		theme:        DefaultTheme(),
		templateName: DefaultTemplate,
		loader:       assets.NewEmbeddedLoader(),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, f := range s.formats {
		switch strings.ToLower(f) {
		case FormatDeck, FormatTex:
		default:
			return nil, fmt.Errorf("unknown output format %q", f)
		}
	}

	s.deck = NewDeckRenderer(s.theme)
	if s.wants(FormatTex) {
		tmplText, err := s.loader.LoadTemplate(s.templateName)
		if err != nil {
			return nil, err
		}
		tex, err := NewTexRenderer(s.theme, tmplText)
		if err != nil {
			return nil, err
		}
		s.tex = tex
	}
	return s, nil
}

// wants reports whether the named format is enabled.
func (s *Service) wants(format string) bool {
	if len(s.formats) == 0 {
		return true
	}
	for _, f := range s.formats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

// Generate renders every enabled format for the topic.
func (s *Service) Generate(ctx context.Context, topic *Topic) (*Artifacts, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := topic.Validate(); err != nil {
		return nil, err
	}

	out := &Artifacts{}
	if s.wants(FormatDeck) {
		deck, err := s.deck.Render(topic)
		if err != nil {
			return nil, err
		}
		out.Deck = deck
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.tex != nil && s.wants(FormatTex) {
		tex, err := s.tex.Render(topic)
		if err != nil {
			return nil, err
		}
		out.TexSource = tex.Source
		out.TexAssets = tex.Assets
	}
	return out, nil
}
