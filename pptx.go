package deckgen

import (
	"fmt"
	"strings"

	"github.com/alnah/go-deckgen/internal/ooxml"
)

// EMU (English Metric Units) per inch, the coordinate unit of PresentationML.
const emuPerInch = 914400

// Slide canvas: 10 x 7.5 inches (4:3).
const (
	slideWidthIn  = 10.0
	slideHeightIn = 7.5
)

// emu converts inches to EMU.
func emu(inches float64) int64 {
	return int64(inches * emuPerInch)
}

// DeckRenderer builds the binary slide deck (.pptx) for a topic.
type DeckRenderer struct {
	theme Theme
}

// NewDeckRenderer creates a deck renderer with the given theme.
func NewDeckRenderer(theme Theme) *DeckRenderer {
	return &DeckRenderer{theme: theme}
}

// Render produces the .pptx bytes for the topic: one cover slide followed by
// one slide per topic slide, each content item rendered in input order.
func (r *DeckRenderer) Render(topic *Topic) ([]byte, error) {
	if err := topic.Validate(); err != nil {
		return nil, err
	}

	pkg := ooxml.NewPackage()

	// Package root: main document plus document properties.
	pkg.Relate("", ooxml.Relationship{ID: "rId1", Type: ooxml.RelTypeOfficeDocument, Target: "ppt/presentation.xml"})
	pkg.Relate("", ooxml.Relationship{ID: "rId2", Type: ooxml.RelTypeCoreProps, Target: "docProps/core.xml"})
	pkg.Relate("", ooxml.Relationship{ID: "rId3", Type: ooxml.RelTypeExtendedProps, Target: "docProps/app.xml"})

	slideCount := len(topic.Slides) + 1 // cover
	if err := pkg.AddPart("ppt/presentation.xml", ooxml.ContentTypePresentation, presentationXML(slideCount)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeckRender, err)
	}
	pkg.Relate("ppt/presentation.xml", ooxml.Relationship{ID: "rId1", Type: ooxml.RelTypeSlideMaster, Target: "slideMasters/slideMaster1.xml"})
	for i := 0; i < slideCount; i++ {
		pkg.Relate("ppt/presentation.xml", ooxml.Relationship{
			ID:     fmt.Sprintf("rId%d", i+2),
			Type:   ooxml.RelTypeSlide,
			Target: fmt.Sprintf("slides/slide%d.xml", i+1),
		})
	}

	// Master, blank layout, theme: fixed scaffolding shared by every deck.
	if err := pkg.AddPart("ppt/slideMasters/slideMaster1.xml", ooxml.ContentTypeSlideMaster, slideMasterXML()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeckRender, err)
	}
	pkg.Relate("ppt/slideMasters/slideMaster1.xml", ooxml.Relationship{ID: "rId1", Type: ooxml.RelTypeSlideLayout, Target: "../slideLayouts/slideLayout1.xml"})
	pkg.Relate("ppt/slideMasters/slideMaster1.xml", ooxml.Relationship{ID: "rId2", Type: ooxml.RelTypeTheme, Target: "../theme/theme1.xml"})

	if err := pkg.AddPart("ppt/slideLayouts/slideLayout1.xml", ooxml.ContentTypeSlideLayout, slideLayoutXML()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeckRender, err)
	}
	pkg.Relate("ppt/slideLayouts/slideLayout1.xml", ooxml.Relationship{ID: "rId1", Type: ooxml.RelTypeSlideMaster, Target: "../slideMasters/slideMaster1.xml"})

	if err := pkg.AddPart("ppt/theme/theme1.xml", ooxml.ContentTypeTheme, themeXML(r.theme)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeckRender, err)
	}

	// Cover slide.
	if err := r.addSlide(pkg, 1, r.coverSlideXML(topic), nil); err != nil {
		return nil, err
	}

	// Content slides. Chart images are numbered across the whole deck.
	imageSeq := 0
	for i, slide := range topic.Slides {
		slideXML, images, err := r.contentSlideXML(slide, &imageSeq)
		if err != nil {
			return nil, err
		}
		if err := r.addSlide(pkg, i+2, slideXML, images); err != nil {
			return nil, err
		}
	}

	if err := pkg.AddPart("docProps/core.xml", ooxml.ContentTypeCoreProps, corePropsXML(topic)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeckRender, err)
	}
	if err := pkg.AddPart("docProps/app.xml", ooxml.ContentTypeExtProps, appPropsXML(slideCount)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeckRender, err)
	}

	data, err := pkg.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeckRender, err)
	}
	return data, nil
}

// slideImage is a chart PNG referenced from one slide.
type slideImage struct {
	relID string // relationship ID inside the slide
	name  string // part name, e.g. "ppt/media/image1.png"
	data  []byte
}

// addSlide registers a slide part, its layout relationship, and its images.
func (r *DeckRenderer) addSlide(pkg *ooxml.Package, num int, xml []byte, images []slideImage) error {
	partName := fmt.Sprintf("ppt/slides/slide%d.xml", num)
	if err := pkg.AddPart(partName, ooxml.ContentTypeSlide, xml); err != nil {
		return fmt.Errorf("%w: %v", ErrDeckRender, err)
	}
	pkg.Relate(partName, ooxml.Relationship{ID: "rId1", Type: ooxml.RelTypeSlideLayout, Target: "../slideLayouts/slideLayout1.xml"})
	for _, img := range images {
		if err := pkg.AddPart(img.name, "", img.data); err != nil {
			return fmt.Errorf("%w: %v", ErrDeckRender, err)
		}
		pkg.Relate(partName, ooxml.Relationship{
			ID:     img.relID,
			Type:   ooxml.RelTypeImage,
			Target: "../media/" + img.name[len("ppt/media/"):],
		})
	}
	return nil
}

// coverSlideXML builds the title slide: theme-colored background, centered
// white title and subtitle.
func (r *DeckRenderer) coverSlideXML(topic *Topic) []byte {
	var shapes strings.Builder
	id := 2

	title := []textPara{{
		center: true,
		runs:   []textRun{{text: topic.Title, sizePt: 44, bold: true, color: white}},
	}}
	shapes.WriteString(textBoxXML(id, "Title", 0.5, 2.5, 9, 1.5, title))
	id++

	if topic.Subtitle != "" {
		subtitle := []textPara{{
			center: true,
			runs:   []textRun{{text: topic.Subtitle, sizePt: 24, color: white}},
		}}
		shapes.WriteString(textBoxXML(id, "Subtitle", 0.5, 4.2, 9, 0.8, subtitle))
	}

	bg := fmt.Sprintf(`<p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`, r.theme.Primary.Hex())
	return slideXML(bg, shapes.String())
}

// slideXML wraps shapes in the slide envelope. bg may be empty.
func slideXML(bg, shapes string) []byte {
	var b strings.Builder
	b.WriteString(ooxml.Header())
	b.WriteString(`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
		` xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	b.WriteString(`<p:cSld>`)
	b.WriteString(bg)
	b.WriteString(spTreeOpen)
	b.WriteString(shapes)
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sld>`)
	return []byte(b.String())
}

// spTreeOpen is the mandatory group-shape preamble of every shape tree.
const spTreeOpen = `<p:spTree>` +
	`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr/>`

// presentationXML builds ppt/presentation.xml for n slides.
func presentationXML(n int) []byte {
	var b strings.Builder
	b.WriteString(ooxml.Header())
	b.WriteString(`<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
		` xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+2)
	}
	b.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, emu(slideWidthIn), emu(slideHeightIn))
	fmt.Fprintf(&b, `<p:notesSz cx="%d" cy="%d"/>`, emu(slideHeightIn), emu(slideWidthIn))
	b.WriteString(`</p:presentation>`)
	return []byte(b.String())
}

// slideMasterXML builds the minimal slide master referencing the blank layout.
func slideMasterXML() []byte {
	var b strings.Builder
	b.WriteString(ooxml.Header())
	b.WriteString(`<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
		` xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	b.WriteString(`<p:cSld>`)
	b.WriteString(spTreeOpen)
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2"` +
		` accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>`)
	b.WriteString(`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>`)
	b.WriteString(`</p:sldMaster>`)
	return []byte(b.String())
}

// slideLayoutXML builds the single blank layout every slide uses.
func slideLayoutXML() []byte {
	var b strings.Builder
	b.WriteString(ooxml.Header())
	b.WriteString(`<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
		` xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" type="blank" preserve="1">`)
	b.WriteString(`<p:cSld name="Blank">`)
	b.WriteString(spTreeOpen)
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sldLayout>`)
	return []byte(b.String())
}

// themeXML builds the DrawingML theme with the deck palette in the accent
// slots. The format scheme entries are the minimum a reader accepts.
func themeXML(t Theme) []byte {
	var b strings.Builder
	b.WriteString(ooxml.Header())
	b.WriteString(`<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="deckgen">`)
	b.WriteString(`<a:themeElements>`)
	b.WriteString(`<a:clrScheme name="deckgen">`)
	fmt.Fprintf(&b, `<a:dk1><a:srgbClr val="%s"/></a:dk1>`, t.Text.Hex())
	b.WriteString(`<a:lt1><a:srgbClr val="FFFFFF"/></a:lt1>`)
	fmt.Fprintf(&b, `<a:dk2><a:srgbClr val="%s"/></a:dk2>`, t.Text.Hex())
	fmt.Fprintf(&b, `<a:lt2><a:srgbClr val="%s"/></a:lt2>`, t.LightBG.Hex())
	fmt.Fprintf(&b, `<a:accent1><a:srgbClr val="%s"/></a:accent1>`, t.Primary.Hex())
	fmt.Fprintf(&b, `<a:accent2><a:srgbClr val="%s"/></a:accent2>`, t.Secondary.Hex())
	fmt.Fprintf(&b, `<a:accent3><a:srgbClr val="%s"/></a:accent3>`, t.Accent.Hex())
	fmt.Fprintf(&b, `<a:accent4><a:srgbClr val="%s"/></a:accent4>`, t.Warning.Hex())
	fmt.Fprintf(&b, `<a:accent5><a:srgbClr val="%s"/></a:accent5>`, t.Purple.Hex())
	fmt.Fprintf(&b, `<a:accent6><a:srgbClr val="%s"/></a:accent6>`, t.Orange.Hex())
	b.WriteString(`<a:hlink><a:srgbClr val="0563C1"/></a:hlink>`)
	b.WriteString(`<a:folHlink><a:srgbClr val="954F72"/></a:folHlink>`)
	b.WriteString(`</a:clrScheme>`)
	b.WriteString(`<a:fontScheme name="deckgen">`)
	b.WriteString(`<a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>`)
	b.WriteString(`<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>`)
	b.WriteString(`</a:fontScheme>`)
	b.WriteString(`<a:fmtScheme name="deckgen">`)
	b.WriteString(`<a:fillStyleLst>` + solidPhFill + solidPhFill + solidPhFill + `</a:fillStyleLst>`)
	b.WriteString(`<a:lnStyleLst>` + phLine + phLine + phLine + `</a:lnStyleLst>`)
	b.WriteString(`<a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle>` +
		`<a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst>`)
	b.WriteString(`<a:bgFillStyleLst>` + solidPhFill + solidPhFill + solidPhFill + `</a:bgFillStyleLst>`)
	b.WriteString(`</a:fmtScheme>`)
	b.WriteString(`</a:themeElements>`)
	b.WriteString(`</a:theme>`)
	return []byte(b.String())
}

// Placeholder-color fill and line used to pad the theme format scheme.
const (
	solidPhFill = `<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>`
	phLine      = `<a:ln w="9525" cap="flat" cmpd="sng" algn="ctr">` + solidPhFill + `</a:ln>`
)

// corePropsXML builds docProps/core.xml with the topic title.
func corePropsXML(topic *Topic) []byte {
	var b strings.Builder
	b.WriteString(ooxml.Header())
	b.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/">`)
	fmt.Fprintf(&b, `<dc:title>%s</dc:title>`, ooxml.EscapeText(topic.Title))
	b.WriteString(`<dc:creator>deckgen</dc:creator>`)
	b.WriteString(`</cp:coreProperties>`)
	return []byte(b.String())
}

// appPropsXML builds docProps/app.xml.
func appPropsXML(slides int) []byte {
	var b strings.Builder
	b.WriteString(ooxml.Header())
	b.WriteString(`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">`)
	b.WriteString(`<Application>deckgen</Application>`)
	fmt.Fprintf(&b, `<Slides>%d</Slides>`, slides)
	b.WriteString(`</Properties>`)
	return []byte(b.String())
}
