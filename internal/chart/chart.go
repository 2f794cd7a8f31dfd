// Package chart renders topic chart data as PNG images with fogleman/gg.
//
// Both output formats embed the same raster charts: the deck renderer places
// them as pictures on the slide, and the LaTeX renderer references them via
// \includegraphics. Keeping one rasterizer means a bar chart looks the same
// in the .pptx and the compiled PDF.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Sentinel errors for chart rendering.
var (
	ErrEmptySeries    = errors.New("chart: series cannot be empty")
	ErrSeriesMismatch = errors.New("chart: series lengths do not match")
	ErrNegativeValue  = errors.New("chart: pie values cannot be negative")
)

// Canvas dimensions in pixels. 1120x720 keeps text crisp when the image is
// scaled to the 7x4.5in slide region.
const (
	defaultWidth  = 1120
	defaultHeight = 720
)

// Plot margins in pixels.
const (
	marginLeft   = 90.0
	marginRight  = 40.0
	marginTop    = 70.0
	marginBottom = 90.0
)

// Options configures a single chart rendering.
type Options struct {
	Width   int    // pixels; 0 = default
	Height  int    // pixels; 0 = default
	Title   string // series title drawn above the plot
	XLabel  string
	YLabel  string
	Palette []color.RGBA // series colors; nil = built-in palette
}

// defaultPalette mirrors the deck theme accents.
var defaultPalette = []color.RGBA{
	{R: 41, G: 128, B: 185, A: 255},
	{R: 231, G: 76, B: 60, A: 255},
	{R: 46, G: 204, B: 113, A: 255},
	{R: 241, G: 196, B: 15, A: 255},
	{R: 155, G: 89, B: 182, A: 255},
	{R: 230, G: 126, B: 34, A: 255},
}

var (
	axisColor = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	gridColor = color.RGBA{R: 225, G: 228, B: 230, A: 255}
	textColor = color.RGBA{R: 44, G: 62, B: 80, A: 255}
)

// parsedFont caches the embedded Go font so each face is a cheap derivation.
var (
	fontOnce   sync.Once
	parsedFont *truetype.Font
	fontErr    error
)

// face returns a font face at the given point size.
func face(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		parsedFont, fontErr = truetype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("chart: parsing font: %w", fontErr)
	}
	return truetype.NewFace(parsedFont, &truetype.Options{Size: size}), nil
}

// canvas bundles the drawing context with the resolved options.
type canvas struct {
	dc  *gg.Context
	opt Options
	w   float64
	h   float64
}

// newCanvas creates a white canvas and draws the title and axis labels.
func newCanvas(opt Options) (*canvas, error) {
	if opt.Width <= 0 {
		opt.Width = defaultWidth
	}
	if opt.Height <= 0 {
		opt.Height = defaultHeight
	}
	if len(opt.Palette) == 0 {
		opt.Palette = defaultPalette
	}

	dc := gg.NewContext(opt.Width, opt.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	c := &canvas{dc: dc, opt: opt, w: float64(opt.Width), h: float64(opt.Height)}

	if opt.Title != "" {
		f, err := face(26)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(f)
		dc.SetColor(textColor)
		dc.DrawStringAnchored(opt.Title, c.w/2, marginTop/2, 0.5, 0.5)
	}
	if opt.XLabel != "" {
		f, err := face(17)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(f)
		dc.SetColor(textColor)
		dc.DrawStringAnchored(opt.XLabel, c.w/2, c.h-20, 0.5, 0.5)
	}
	if opt.YLabel != "" {
		f, err := face(17)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(f)
		dc.SetColor(textColor)
		dc.Push()
		dc.RotateAbout(-math.Pi/2, 24, c.h/2)
		dc.DrawStringAnchored(opt.YLabel, 24, c.h/2, 0.5, 0.5)
		dc.Pop()
	}
	return c, nil
}

// plotRect returns the drawable plot area.
func (c *canvas) plotRect() (x, y, w, h float64) {
	return marginLeft, marginTop, c.w - marginLeft - marginRight, c.h - marginTop - marginBottom
}

// drawAxes draws the x/y axis lines around the plot area.
func (c *canvas) drawAxes() {
	px, py, pw, ph := c.plotRect()
	c.dc.SetColor(axisColor)
	c.dc.SetLineWidth(2)
	c.dc.DrawLine(px, py+ph, px+pw, py+ph)
	c.dc.DrawLine(px, py, px, py+ph)
	c.dc.Stroke()
}

// drawYTicks draws n horizontal grid lines with value labels from lo to hi.
func (c *canvas) drawYTicks(lo, hi float64, n int) error {
	px, py, pw, ph := c.plotRect()
	f, err := face(15)
	if err != nil {
		return err
	}
	c.dc.SetFontFace(f)
	for i := 0; i <= n; i++ {
		frac := float64(i) / float64(n)
		y := py + ph - frac*ph
		v := lo + frac*(hi-lo)
		if i > 0 {
			c.dc.SetColor(gridColor)
			c.dc.SetLineWidth(1)
			c.dc.DrawLine(px, y, px+pw, y)
			c.dc.Stroke()
		}
		c.dc.SetColor(textColor)
		c.dc.DrawStringAnchored(fmtNum(v), px-10, y, 1, 0.5)
	}
	return nil
}

// encode serializes the canvas as PNG.
func (c *canvas) encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("chart: encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// fmtNum formats a tick or legend value compactly.
func fmtNum(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e9 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// span returns the min and max of vs.
func span(vs []float64) (lo, hi float64) {
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// valueRange widens a data span into a drawable axis range. The range always
// includes zero for magnitude charts and never collapses to a point.
func valueRange(lo, hi float64) (float64, float64) {
	lo = math.Min(lo, 0)
	hi = math.Max(hi, 0)
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi + 0.08*(hi-lo)
}
