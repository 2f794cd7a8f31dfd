package deckgen

import (
	"fmt"
	"strings"
	"text/template"
)

// TexOutput is the LaTeX rendering of a topic: the .tex source plus the
// chart images it references, keyed by path relative to the .tex file.
type TexOutput struct {
	Source []byte
	Assets map[string][]byte
}

// TexRenderer builds Beamer source for a topic. The document skeleton comes
// from a template; the frames are generated per slide.
type TexRenderer struct {
	theme Theme
	tmpl  *template.Template
}

// texDelims are the template action delimiters. The defaults clash with
// LaTeX's braces, so the templates use guillemet-style markers instead.
const (
	texDelimLeft  = "<<"
	texDelimRight = ">>"
)

// NewTexRenderer parses the document template and returns a renderer.
func NewTexRenderer(theme Theme, tmplText string) (*TexRenderer, error) {
	tmpl, err := template.New("document").Delims(texDelimLeft, texDelimRight).Parse(tmplText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return &TexRenderer{theme: theme, tmpl: tmpl}, nil
}

// texColor is one \definecolor entry in the document preamble.
type texColor struct {
	Name    string
	R, G, B uint8
}

// texData is the document template's input.
type texData struct {
	Title    string
	Subtitle string
	Colors   []texColor
	Body     string
}

// Render produces the Beamer source and chart assets for the topic.
func (r *TexRenderer) Render(topic *Topic) (*TexOutput, error) {
	if err := topic.Validate(); err != nil {
		return nil, err
	}

	out := &TexOutput{Assets: make(map[string][]byte)}
	body, err := r.renderFrames(topic, out.Assets)
	if err != nil {
		return nil, err
	}

	data := texData{
		Title:    escapeLaTeX(topic.Title),
		Subtitle: escapeLaTeX(topic.Subtitle),
		Colors:   r.colorList(),
		Body:     body,
	}
	var b strings.Builder
	if err := r.tmpl.Execute(&b, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	out.Source = []byte(b.String())
	return out, nil
}

// colorList maps the theme onto the preamble color names the templates use.
func (r *TexRenderer) colorList() []texColor {
	entries := []struct {
		name string
		c    Color
	}{
		{"primary", r.theme.Primary},
		{"secondary", r.theme.Secondary},
		{"accent", r.theme.Accent},
		{"warning", r.theme.Warning},
		{"purple", r.theme.Purple},
		{"orange", r.theme.Orange},
		{"darktext", r.theme.Text},
		{"lightbg", r.theme.LightBG},
	}
	colors := make([]texColor, 0, len(entries))
	for _, e := range entries {
		colors = append(colors, texColor{Name: e.name, R: e.c.R, G: e.c.G, B: e.c.B})
	}
	return colors
}

// latexEscaper rewrites the characters LaTeX treats specially. A Replacer
// scans the input once, so the backslash replacement is not itself rescanned.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// escapeLaTeX escapes s for use in LaTeX text mode. Formula and computation
// text skips this; it is authored as math markup.
func escapeLaTeX(s string) string {
	return latexEscaper.Replace(s)
}
