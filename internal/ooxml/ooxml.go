// Package ooxml writes Open Packaging Convention containers: the zip of XML
// parts, content types, and relationships that .pptx files are made of.
//
// The package is deliberately dumb about PresentationML itself; callers hand
// it fully serialized parts and declare the relationships between them. It
// owns only the container-level conventions: [Content_Types].xml, _rels
// placement, and deterministic part ordering inside the archive.
package ooxml

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// Relationship type URIs used by PresentationML packages.
const (
	RelTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	RelTypeSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	RelTypeSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	RelTypeTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	RelTypeImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	RelTypeCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelTypeExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
)

// Content types for the parts deckgen emits.
const (
	ContentTypePresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ContentTypeSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ContentTypeSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ContentTypeSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ContentTypeTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ContentTypeCoreProps    = "application/vnd.openxmlformats-package.core-properties+xml"
	ContentTypeExtProps     = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// Sentinel errors for package assembly.
var (
	ErrDuplicatePart = errors.New("ooxml: part already added")
	ErrEmptyPartName = errors.New("ooxml: part name cannot be empty")
)

// Relationship links a source part to a target part or resource.
type Relationship struct {
	ID     string // e.g. "rId1"
	Type   string // one of the RelType constants
	Target string // target path relative to the source part's directory
}

// part is a named payload inside the container.
type part struct {
	name        string // zip path, e.g. "ppt/slides/slide1.xml"
	contentType string // "" for parts covered by a default (e.g. .png)
	data        []byte
}

// Package accumulates parts and relationships and serializes them as a zip.
// Parts appear in the archive in insertion order, so output is deterministic.
type Package struct {
	parts    []part
	partSet  map[string]bool
	rels     map[string][]Relationship // source part name; "" is the package root
	relOrder []string
}

// NewPackage creates an empty container.
func NewPackage() *Package {
	return &Package{
		partSet: make(map[string]bool),
		rels:    make(map[string][]Relationship),
	}
}

// AddPart registers a part. contentType may be empty when the extension is
// covered by a default mapping (png, jpeg).
func (p *Package) AddPart(name, contentType string, data []byte) error {
	if name == "" {
		return ErrEmptyPartName
	}
	if p.partSet[name] {
		return fmt.Errorf("%w: %s", ErrDuplicatePart, name)
	}
	p.partSet[name] = true
	p.parts = append(p.parts, part{name: name, contentType: contentType, data: data})
	return nil
}

// Relate declares a relationship originating at source ("" for the package
// root). Relationship files are generated at write time.
func (p *Package) Relate(source string, rel Relationship) {
	if _, seen := p.rels[source]; !seen {
		p.relOrder = append(p.relOrder, source)
	}
	p.rels[source] = append(p.rels[source], rel)
}

// Bytes serializes the container.
func (p *Package) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo serializes the container to w as a zip archive.
func (p *Package) WriteTo(w io.Writer) error {
	zw := zip.NewWriter(w)

	if err := writeZipFile(zw, "[Content_Types].xml", p.contentTypesXML()); err != nil {
		return err
	}
	for _, source := range p.relOrder {
		name := relsPath(source)
		if err := writeZipFile(zw, name, relationshipsXML(p.rels[source])); err != nil {
			return err
		}
	}
	for _, pt := range p.parts {
		if err := writeZipFile(zw, pt.name, pt.data); err != nil {
			return err
		}
	}
	return zw.Close()
}

func writeZipFile(zw *zip.Writer, name string, data []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("creating zip entry %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing zip entry %s: %w", name, err)
	}
	return nil
}

// relsPath maps a source part to its relationship file location.
// "" (package root) -> "_rels/.rels"; "ppt/presentation.xml" ->
// "ppt/_rels/presentation.xml.rels".
func relsPath(source string) string {
	if source == "" {
		return "_rels/.rels"
	}
	dir, base := path.Split(source)
	return dir + "_rels/" + base + ".rels"
}

// contentTypesXML builds [Content_Types].xml: extension defaults for rels and
// images, explicit overrides for every typed XML part.
func (p *Package) contentTypesXML() []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
	b.WriteString(`<Default Extension="jpeg" ContentType="image/jpeg"/>`)
	for _, pt := range p.parts {
		if pt.contentType == "" {
			continue
		}
		fmt.Fprintf(&b, `<Override PartName="/%s" ContentType="%s"/>`, pt.name, pt.contentType)
	}
	b.WriteString(`</Types>`)
	return []byte(b.String())
}

// relationshipsXML builds a .rels part for the given relationships.
func relationshipsXML(rels []Relationship) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for _, r := range rels {
		fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="%s"/>`,
			EscapeText(r.ID), EscapeText(r.Type), EscapeText(r.Target))
	}
	b.WriteString(`</Relationships>`)
	return []byte(b.String())
}

// xmlHeader is the standard declaration every OOXML part starts with.
const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Header returns the XML declaration for callers building their own parts.
func Header() string { return xmlHeader }

// xmlEscaper covers the five characters that must never appear raw in
// attribute or element content.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeText escapes s for use in XML element or attribute content.
func EscapeText(s string) string {
	return xmlEscaper.Replace(s)
}
