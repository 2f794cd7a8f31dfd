package deckgen

import (
	"fmt"
	"strings"

	"github.com/alnah/go-deckgen/internal/ooxml"
)

// textRun is one styled run inside a paragraph.
type textRun struct {
	text   string
	sizePt float64
	bold   bool
	italic bool
	color  Color
}

// textPara is one paragraph of a text box. level indents nested items.
type textPara struct {
	runs   []textRun
	level  int
	center bool
}

// contentSlideXML builds one content slide: title, accent rule, one text box
// holding every textual item in input order, and a separate shape per table
// or chart. imageSeq numbers chart PNGs across the whole deck.
func (r *DeckRenderer) contentSlideXML(slide Slide, imageSeq *int) ([]byte, []slideImage, error) {
	var shapes strings.Builder
	var images []slideImage
	id := 2

	title := []textPara{{runs: []textRun{{text: slide.Title, sizePt: 32, bold: true, color: r.theme.Primary}}}}
	shapes.WriteString(textBoxXML(id, "Title", 0.5, 0.3, 9, 1.2, title))
	id++
	shapes.WriteString(rectXML(id, 0.5, 1.4, 9, 0.03, r.theme.Accent))
	id++

	var paras []textPara
	hasGraphic := false
	for _, item := range slide.Content {
		if item.IsGraphic() {
			hasGraphic = true
		}
	}

	for _, item := range slide.Content {
		switch item.Kind {
		case KindBullet:
			paras = append(paras, textPara{runs: []textRun{{text: item.Text, sizePt: 18, color: r.theme.Text}}})
		case KindNote, KindExample, KindProblem, KindFormula, KindComputation:
			paras = append(paras, r.blockPara(item))
		case KindComponents:
			for _, sub := range item.Items {
				paras = append(paras, textPara{
					level: 1,
					runs:  []textRun{{text: sub, sizePt: 18, color: r.theme.Text}},
				})
			}
		case KindSolution:
			for _, step := range item.Steps {
				paras = append(paras, textPara{
					level: 1,
					runs:  []textRun{{text: step, sizePt: 18, color: r.theme.Accent}},
				})
			}
		case KindTable:
			x, y, w, h := 1.0, 2.0, 8.0, 4.0
			if len(paras) > 0 {
				y, h = 3.0, 3.0
			}
			shapes.WriteString(r.tableXML(id, item, x, y, w, h))
			id++
		case KindBarChart, KindLineChart, KindPieChart, KindScatterChart:
			png, err := chartPNG(r.theme, item)
			if err != nil {
				return nil, nil, fmt.Errorf("slide %q: %w", slide.Title, err)
			}
			*imageSeq++
			img := slideImage{
				relID: fmt.Sprintf("rId%d", len(images)+2), // rId1 is the layout
				name:  fmt.Sprintf("ppt/media/image%d.png", *imageSeq),
				data:  png,
			}
			images = append(images, img)
			x, y, w, h := 1.5, 2.0, 7.0, 4.5
			if item.Kind == KindPieChart {
				x, y, w, h = 2.0, 1.5, 6.0, 5.0
			}
			shapes.WriteString(picXML(id, img.relID, x, y, w, h))
			id++
		default:
			return nil, nil, fmt.Errorf("slide %q: %w: %q", slide.Title, ErrUnknownKind, item.Kind)
		}
	}

	if len(paras) > 0 {
		y, h := 1.8, 5.0
		if hasGraphic {
			h = 1.1
		}
		shapes.WriteString(textBoxXML(id, "Body", 0.5, y, 9, h, paras))
	}

	return slideXML("", shapes.String()), images, nil
}

// blockPara styles a highlighted block (note, example, problem, formula,
// computation) as an icon-prefixed italic paragraph in the block color.
func (r *DeckRenderer) blockPara(item ContentItem) textPara {
	var icon string
	var c Color
	switch item.Kind {
	case KindNote:
		icon, c = "\U0001F4A1", r.theme.Warning
	case KindExample:
		icon, c = "\U0001F4DD", r.theme.Accent
	case KindProblem:
		icon, c = "❓", r.theme.Secondary
	case KindFormula:
		icon, c = "\U0001F4D0", r.theme.Purple
	case KindComputation:
		icon, c = "\U0001F522", r.theme.Primary
	}
	return textPara{runs: []textRun{
		{text: icon + " ", sizePt: 16, color: r.theme.Text},
		{text: item.Text, sizePt: 16, italic: true, color: c},
	}}
}

// textBoxXML builds a p:sp text box at the given position (inches) holding
// the paragraphs.
func textBoxXML(id int, name string, x, y, w, h float64, paras []textPara) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`,
		id, ooxml.EscapeText(name))
	b.WriteString(`<p:spPr>`)
	b.WriteString(xfrmXML(x, y, w, h))
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>`)
	b.WriteString(`</p:spPr>`)
	b.WriteString(`<p:txBody><a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr><a:lstStyle/>`)
	for _, p := range paras {
		b.WriteString(paragraphXML(p))
	}
	b.WriteString(`</p:txBody></p:sp>`)
	return b.String()
}

// paragraphXML serializes one paragraph with its runs.
func paragraphXML(p textPara) string {
	var b strings.Builder
	b.WriteString(`<a:p>`)
	if p.level > 0 || p.center {
		b.WriteString(`<a:pPr`)
		if p.level > 0 {
			fmt.Fprintf(&b, ` lvl="%d"`, p.level)
		}
		if p.center {
			b.WriteString(` algn="ctr"`)
		}
		b.WriteString(`/>`)
	}
	for _, run := range p.runs {
		b.WriteString(`<a:r><a:rPr lang="en-US"`)
		fmt.Fprintf(&b, ` sz="%d"`, int(run.sizePt*100))
		if run.bold {
			b.WriteString(` b="1"`)
		}
		if run.italic {
			b.WriteString(` i="1"`)
		}
		b.WriteString(` dirty="0">`)
		fmt.Fprintf(&b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, run.color.Hex())
		b.WriteString(`</a:rPr>`)
		fmt.Fprintf(&b, `<a:t>%s</a:t></a:r>`, ooxml.EscapeText(run.text))
	}
	b.WriteString(`</a:p>`)
	return b.String()
}

// rectXML builds a filled rectangle, used for the accent rule under titles.
func rectXML(id int, x, y, w, h float64, fill Color) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Rule"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`, id)
	b.WriteString(`<p:spPr>`)
	b.WriteString(xfrmXML(x, y, w, h))
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>`)
	fmt.Fprintf(&b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, fill.Hex())
	b.WriteString(`<a:ln><a:noFill/></a:ln>`)
	b.WriteString(`</p:spPr>`)
	b.WriteString(`<p:txBody><a:bodyPr/><a:lstStyle/><a:p/></p:txBody></p:sp>`)
	return b.String()
}

// tableXML builds a p:graphicFrame holding an a:tbl. Header cells get the
// primary fill with white bold text; data rows alternate the light fill.
func (r *DeckRenderer) tableXML(id int, item ContentItem, x, y, w, h float64) string {
	cols := len(item.Headers)
	rows := len(item.Rows) + 1
	colW := emu(w) / int64(cols)
	rowH := emu(h) / int64(rows)

	var b strings.Builder
	fmt.Fprintf(&b, `<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="%d" name="Table"/>`+
		`<p:cNvGraphicFramePr/><p:nvPr/></p:nvGraphicFramePr>`, id)
	fmt.Fprintf(&b, `<p:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></p:xfrm>`,
		emu(x), emu(y), emu(w), emu(h))
	b.WriteString(`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table">`)
	b.WriteString(`<a:tbl><a:tblPr firstRow="1" bandRow="1"/><a:tblGrid>`)
	for i := 0; i < cols; i++ {
		fmt.Fprintf(&b, `<a:gridCol w="%d"/>`, colW)
	}
	b.WriteString(`</a:tblGrid>`)

	b.WriteString(tableRowXML(item.Headers, rowH, 14, true, white, &r.theme.Primary))
	for i, row := range item.Rows {
		var fill *Color
		if i%2 == 1 {
			fill = &r.theme.LightBG
		}
		b.WriteString(tableRowXML(row, rowH, 12, false, r.theme.Text, fill))
	}

	b.WriteString(`</a:tbl></a:graphicData></a:graphic></p:graphicFrame>`)
	return b.String()
}

// tableRowXML serializes one table row. fill is nil for unfilled cells.
func tableRowXML(cells []string, rowH int64, sizePt float64, bold bool, textC Color, fill *Color) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<a:tr h="%d">`, rowH)
	for _, cell := range cells {
		b.WriteString(`<a:tc><a:txBody><a:bodyPr/><a:lstStyle/>`)
		b.WriteString(paragraphXML(textPara{
			center: true,
			runs:   []textRun{{text: cell, sizePt: sizePt, bold: bold, color: textC}},
		}))
		b.WriteString(`</a:txBody><a:tcPr anchor="ctr">`)
		if fill != nil {
			fmt.Fprintf(&b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, fill.Hex())
		}
		b.WriteString(`</a:tcPr></a:tc>`)
	}
	b.WriteString(`</a:tr>`)
	return b.String()
}

// picXML builds a p:pic referencing an image relationship.
func picXML(id int, relID string, x, y, w, h float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<p:pic><p:nvPicPr><p:cNvPr id="%d" name="Chart"/>`+
		`<p:cNvPicPr><a:picLocks noChangeAspect="1"/></p:cNvPicPr><p:nvPr/></p:nvPicPr>`, id)
	fmt.Fprintf(&b, `<p:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>`, relID)
	b.WriteString(`<p:spPr>`)
	b.WriteString(xfrmXML(x, y, w, h))
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>`)
	b.WriteString(`</p:spPr></p:pic>`)
	return b.String()
}

// xfrmXML serializes a shape transform from inches.
func xfrmXML(x, y, w, h float64) string {
	return fmt.Sprintf(`<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`,
		emu(x), emu(y), emu(w), emu(h))
}
