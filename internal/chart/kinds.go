package chart

import (
	"fmt"
	"math"
)

// Bar renders a clustered bar chart with one bar per category.
func Bar(categories []string, values []float64, opt Options) ([]byte, error) {
	if len(categories) == 0 || len(values) == 0 {
		return nil, ErrEmptySeries
	}
	if len(categories) != len(values) {
		return nil, fmt.Errorf("%w: %d categories, %d values", ErrSeriesMismatch, len(categories), len(values))
	}

	c, err := newCanvas(opt)
	if err != nil {
		return nil, err
	}
	lo, hi := span(values)
	lo, hi = valueRange(lo, hi)
	if err := c.drawYTicks(lo, hi, 5); err != nil {
		return nil, err
	}
	c.drawAxes()

	px, py, pw, ph := c.plotRect()
	slot := pw / float64(len(values))
	barW := slot * 0.62
	zeroY := py + ph - (0-lo)/(hi-lo)*ph

	c.dc.SetColor(c.opt.Palette[0])
	for i, v := range values {
		x := px + float64(i)*slot + (slot-barW)/2
		y := py + ph - (v-lo)/(hi-lo)*ph
		c.dc.DrawRectangle(x, math.Min(y, zeroY), barW, math.Abs(zeroY-y))
		c.dc.Fill()
	}

	f, err := face(15)
	if err != nil {
		return nil, err
	}
	c.dc.SetFontFace(f)
	c.dc.SetColor(textColor)
	for i, cat := range categories {
		x := px + float64(i)*slot + slot/2
		c.dc.DrawStringAnchored(cat, x, py+ph+18, 0.5, 0.5)
	}

	return c.encode()
}

// Line renders a line chart through the (x, y) points in input order.
func Line(x, y []float64, opt Options) ([]byte, error) {
	return polyline(x, y, opt, true)
}

// Scatter renders the (x, y) points without a connecting line.
func Scatter(x, y []float64, opt Options) ([]byte, error) {
	return polyline(x, y, opt, false)
}

// polyline shares the point layout between line and scatter charts.
func polyline(x, y []float64, opt Options, connect bool) ([]byte, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, ErrEmptySeries
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x, %d y", ErrSeriesMismatch, len(x), len(y))
	}

	c, err := newCanvas(opt)
	if err != nil {
		return nil, err
	}
	xlo, xhi := span(x)
	if xhi == xlo {
		xhi = xlo + 1
	}
	ylo, yhi := span(y)
	ylo, yhi = valueRange(ylo, yhi)
	if err := c.drawYTicks(ylo, yhi, 5); err != nil {
		return nil, err
	}
	c.drawAxes()

	px, py, pw, ph := c.plotRect()
	toX := func(v float64) float64 { return px + (v-xlo)/(xhi-xlo)*pw }
	toY := func(v float64) float64 { return py + ph - (v-ylo)/(yhi-ylo)*ph }

	// x tick labels at the data points (charts here are small series)
	f, err := face(15)
	if err != nil {
		return nil, err
	}
	c.dc.SetFontFace(f)
	c.dc.SetColor(textColor)
	for i := range x {
		c.dc.DrawStringAnchored(fmtNum(x[i]), toX(x[i]), py+ph+18, 0.5, 0.5)
	}

	seriesColor := c.opt.Palette[1%len(c.opt.Palette)]
	if !connect {
		seriesColor = c.opt.Palette[2%len(c.opt.Palette)]
	}
	if connect {
		c.dc.SetColor(seriesColor)
		c.dc.SetLineWidth(4)
		for i := range x {
			c.dc.LineTo(toX(x[i]), toY(y[i]))
		}
		c.dc.Stroke()
	}
	c.dc.SetColor(seriesColor)
	for i := range x {
		c.dc.DrawCircle(toX(x[i]), toY(y[i]), 6)
		c.dc.Fill()
	}

	return c.encode()
}

// Pie renders a pie chart with a legend on the right. Values must be
// non-negative and sum to a positive total.
func Pie(labels []string, values []float64, opt Options) ([]byte, error) {
	if len(labels) == 0 || len(values) == 0 {
		return nil, ErrEmptySeries
	}
	if len(labels) != len(values) {
		return nil, fmt.Errorf("%w: %d labels, %d values", ErrSeriesMismatch, len(labels), len(values))
	}
	var total float64
	for _, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("%w: %v", ErrNegativeValue, v)
		}
		total += v
	}
	if total == 0 {
		return nil, ErrEmptySeries
	}

	c, err := newCanvas(opt)
	if err != nil {
		return nil, err
	}

	// Pie on the left two-thirds, legend on the right.
	cx := c.w * 0.36
	cy := (c.h + marginTop) / 2.2
	r := math.Min(c.w*0.28, c.h*0.34)

	angle := -math.Pi / 2
	for i, v := range values {
		sweep := v / total * 2 * math.Pi
		c.dc.SetColor(c.opt.Palette[i%len(c.opt.Palette)])
		c.dc.MoveTo(cx, cy)
		c.dc.DrawArc(cx, cy, r, angle, angle+sweep)
		c.dc.ClosePath()
		c.dc.Fill()
		angle += sweep
	}

	f, err := face(17)
	if err != nil {
		return nil, err
	}
	c.dc.SetFontFace(f)
	legendX := c.w * 0.70
	legendY := cy - float64(len(labels)-1)*16
	for i, label := range labels {
		y := legendY + float64(i)*32
		c.dc.SetColor(c.opt.Palette[i%len(c.opt.Palette)])
		c.dc.DrawRectangle(legendX, y-9, 18, 18)
		c.dc.Fill()
		c.dc.SetColor(textColor)
		pct := values[i] / total * 100
		c.dc.DrawStringAnchored(fmt.Sprintf("%s (%.1f%%)", label, pct), legendX+28, y, 0, 0.5)
	}

	return c.encode()
}
