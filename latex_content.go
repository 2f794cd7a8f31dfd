package deckgen

import (
	"fmt"
	"strings"
	"unicode"
)

// renderFrames builds one Beamer frame per slide, accumulating chart PNGs
// into assets as it goes.
func (r *TexRenderer) renderFrames(topic *Topic, assets map[string][]byte) (string, error) {
	slug := slugify(topic.Title)
	var b strings.Builder
	for i, slide := range topic.Slides {
		if err := r.renderFrame(&b, slide, slug, i+1, assets); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// renderFrame writes one frame. Consecutive bullets share an itemize
// environment; every other kind closes it and emits its own block.
func (r *TexRenderer) renderFrame(b *strings.Builder, slide Slide, slug string, num int, assets map[string][]byte) error {
	fmt.Fprintf(b, "\\begin{frame}{%s}\n", escapeLaTeX(slide.Title))

	inItemize := false
	closeItemize := func() {
		if inItemize {
			b.WriteString("\\end{itemize}\n")
			inItemize = false
		}
	}

	for j, item := range slide.Content {
		switch item.Kind {
		case KindBullet:
			if !inItemize {
				b.WriteString("\\begin{itemize}\n")
				inItemize = true
			}
			fmt.Fprintf(b, "  \\item %s\n", escapeLaTeX(item.Text))

		case KindComponents:
			closeItemize()
			b.WriteString("\\begin{itemize}\n")
			for _, sub := range item.Items {
				fmt.Fprintf(b, "  \\item %s\n", escapeLaTeX(sub))
			}
			b.WriteString("\\end{itemize}\n")

		case KindSolution:
			closeItemize()
			b.WriteString("\\begin{enumerate}\n")
			for _, step := range item.Steps {
				fmt.Fprintf(b, "  \\item %s\n", escapeLaTeX(step))
			}
			b.WriteString("\\end{enumerate}\n")

		case KindNote, KindExample, KindProblem, KindFormula, KindComputation:
			closeItemize()
			writeBlock(b, item)

		case KindTable:
			closeItemize()
			writeTable(b, item)

		case KindBarChart, KindLineChart, KindPieChart, KindScatterChart:
			closeItemize()
			png, err := chartPNG(r.theme, item)
			if err != nil {
				return fmt.Errorf("slide %q: %w", slide.Title, err)
			}
			path := fmt.Sprintf("assets/%s-s%02d-c%02d.png", slug, num, j+1)
			assets[path] = png
			fmt.Fprintf(b, "\\begin{center}\n\\includegraphics[width=0.85\\textwidth]{%s}\n\\end{center}\n", path)

		default:
			return fmt.Errorf("slide %q: %w: %q", slide.Title, ErrUnknownKind, item.Kind)
		}
	}
	closeItemize()

	b.WriteString("\\end{frame}\n\n")
	return nil
}

// writeBlock emits a Beamer block for a highlighted item. Formula and
// computation text is math markup and passes through unescaped.
func writeBlock(b *strings.Builder, item ContentItem) {
	switch item.Kind {
	case KindNote:
		fmt.Fprintf(b, "\\begin{block}{Note}\n%s\n\\end{block}\n", escapeLaTeX(item.Text))
	case KindExample:
		fmt.Fprintf(b, "\\begin{exampleblock}{Example}\n%s\n\\end{exampleblock}\n", escapeLaTeX(item.Text))
	case KindProblem:
		fmt.Fprintf(b, "\\begin{alertblock}{Problem}\n%s\n\\end{alertblock}\n", escapeLaTeX(item.Text))
	case KindFormula:
		fmt.Fprintf(b, "\\begin{block}{Formula}\n\\[ %s \\]\n\\end{block}\n", item.Text)
	case KindComputation:
		fmt.Fprintf(b, "\\begin{block}{Computation}\n\\[ %s \\]\n\\end{block}\n", item.Text)
	}
}

// writeTable emits a booktabs tabular with one centered column per header.
func writeTable(b *strings.Builder, item ContentItem) {
	b.WriteString("\\begin{center}\n")
	fmt.Fprintf(b, "\\begin{tabular}{%s}\n", strings.Repeat("c", len(item.Headers)))
	b.WriteString("\\toprule\n")
	b.WriteString(texRow(item.Headers, true))
	b.WriteString("\\midrule\n")
	for _, row := range item.Rows {
		b.WriteString(texRow(row, false))
	}
	b.WriteString("\\bottomrule\n")
	b.WriteString("\\end{tabular}\n\\end{center}\n")
}

// texRow serializes one tabular row, bolding header cells.
func texRow(cells []string, header bool) string {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		if header {
			escaped[i] = "\\textbf{" + escapeLaTeX(cell) + "}"
		} else {
			escaped[i] = escapeLaTeX(cell)
		}
	}
	return strings.Join(escaped, " & ") + " \\\\\n"
}

// slugify lowercases s and collapses runs of non-alphanumerics to hyphens,
// yielding a filesystem-safe stem for asset names.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) && r < 128 || unicode.IsDigit(r) && r < 128 {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "topic"
	}
	return out
}
